package main

import (
	"context"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe"
	"github.com/aretw0/scribe/internal/mcp"
	scribelifecycle "github.com/aretw0/scribe/pkg/adapters/lifecycle"
)

var mcpWatch bool

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the notes as MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing tools to create,
list, read, edit and delete notes. With --watch (fs adapter), the server reloads
the notes when another process rewrites them.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		nb := openNotebook(ctx)
		defer nb.Close()

		srv := mcp.NewServer(nb.Store, strings.TrimSpace(scribe.Version), slog.Default())

		if mcpWatch {
			changes, err := nb.Watch(ctx)
			if err != nil {
				fatal("Failed to watch notes", err)
			}
			if err := srv.ReloadOn(ctx, scribelifecycle.NewSource(nb.Store.Key(), changes)); err != nil {
				fatal("Failed to watch notes", err)
			}
		}

		if err := srv.ServeStdio(); err != nil {
			fatal("MCP server stopped", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().BoolVar(&mcpWatch, "watch", false, "Reload when the notes change on disk")
}
