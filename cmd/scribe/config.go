package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := loadConfig().YAML()
		if err != nil {
			fatal("Failed to encode config", err)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
