package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
)

var (
	listJSON   bool
	listSearch string
)

const previewLength = 60

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		nb := openNotebook(context.Background())
		defer nb.Close()

		res := nb.Store.Search(listSearch)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(res.Notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if empty := res.EmptyState(); empty != core.EmptyNone {
			fmt.Println(empty)
			return
		}
		for _, n := range res.Notes {
			fmt.Printf("%s  %s  %s\n", n.ID, n.CreatedAt.Local().Format("2006-01-02 15:04"), preview(n.Content))
		}
	},
}

// preview returns the first line of s, cut to previewLength characters.
func preview(s string) string {
	line, _, cut := strings.Cut(s, "\n")
	r := []rune(line)
	if len(r) > previewLength {
		return string(r[:previewLength-1]) + "…"
	}
	if cut {
		return line + " …"
	}
	return line
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only notes containing this text (case-insensitive)")
}
