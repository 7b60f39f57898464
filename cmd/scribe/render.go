package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
	"github.com/aretw0/scribe/pkg/render"
)

var (
	renderHTML  bool
	renderWidth int
)

var renderCmd = &cobra.Command{
	Use:   "render [id]",
	Short: "Render notes with their formatting",
	Long:  `Render one note, or all of them, styled for the terminal or as HTML (--html).`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb := openNotebook(context.Background())
		defer nb.Close()

		notes := nb.Store.List("")
		if len(args) == 1 {
			note, err := nb.Store.Get(args[0])
			if err != nil {
				fatal("Failed to read note", err)
			}
			notes = []core.Note{note}
		}

		if renderHTML {
			if err := render.NewHTML().RenderAll(os.Stdout, notes); err != nil {
				fatal("Failed to render HTML", err)
			}
			return
		}

		term := render.NewTerminal(os.Stdout, renderWidth)
		header := term.Style(core.DefaultFormatting()).Faint(true)
		for i, n := range notes {
			out, err := term.Render(n)
			if err != nil {
				fatal("Failed to render note", err)
			}
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(header.Render(n.ID + " · " + n.CreatedAt.Local().Format("2006-01-02 15:04")))
			fmt.Println(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().BoolVar(&renderHTML, "html", false, "Output HTML instead of terminal text")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", render.DefaultWidth, "Column width for terminal output")
}
