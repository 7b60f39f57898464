package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// keyLister is implemented by adapters that can enumerate their keys.
type keyLister interface {
	Keys(pattern string) ([]string, error)
}

var keysCmd = &cobra.Command{
	Use:   "keys [pattern]",
	Short: "List the collections stored by the fs adapter",
	Long: `Keys lists the blob keys (collections) in the data directory, optionally
filtered by a glob pattern such as "work-*" or "{notes,journal}". Select one with --key in the config.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb := openNotebook(context.Background())
		defer nb.Close()

		lister, ok := nb.Blobs.(keyLister)
		if !ok {
			fatal("Cannot list keys", errors.New("the configured adapter does not support listing"))
		}

		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}
		keys, err := lister.Keys(pattern)
		if err != nil {
			fatal("Failed to list keys", err)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
