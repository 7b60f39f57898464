package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
)

var (
	editContent string
	editFormat  *formatFlags
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note's content or formatting",
	Long: `Edit replaces the content (--content) and/or formatting of a note.
Flags that are not given keep their stored value. The ID and creation time never change.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		nb := openNotebook(ctx)
		defer nb.Close()

		c := scribe.NewComposer(nb.Store)
		if err := c.StartEdit(args[0]); err != nil {
			fatal("Failed to open note", err)
		}
		if cmd.Flags().Changed("content") {
			if err := c.EditContent(editContent); err != nil {
				fatal("Failed to edit note", err)
			}
		}
		if err := editFormat.apply(c.SetAxis); err != nil {
			fatal("Invalid formatting", err)
		}

		note, err := c.Save(ctx)
		if err != nil {
			fatal("Failed to save note", err)
		}
		fmt.Printf("Note saved: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editContent, "content", "", "Replacement content")
	editFormat = newFormatFlags(editCmd)
}
