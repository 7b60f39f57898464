package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
)

var addFormat *formatFlags

var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a note",
	Long:  `Add a note at the top of the list. Text longer than 500 characters is cut.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		nb := openNotebook(ctx)
		defer nb.Close()

		c := scribe.NewComposer(nb.Store)
		if err := addFormat.apply(c.SetAxis); err != nil {
			fatal("Invalid formatting", err)
		}
		if err := c.Compose(strings.Join(args, " ")); err != nil {
			fatal("Failed to compose note", err)
		}

		note, err := c.Submit(ctx)
		if err != nil {
			fatal("Failed to add note", err)
		}
		fmt.Printf("Note added: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addFormat = newFormatFlags(addCmd)
}
