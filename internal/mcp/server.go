// Package mcp exposes a note store as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/lifecycle"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/scribe/pkg/core"
)

// Server serializes tool calls onto a single core.Store.
type Server struct {
	mu     sync.Mutex
	store  *core.Store
	logger *slog.Logger
	mcp    *server.MCPServer
}

// ListResult is the payload of list_notes.
type ListResult struct {
	Search  string      `json:"search,omitempty"`
	Total   int         `json:"total"`
	Matched int         `json:"matched"`
	Empty   string      `json:"empty,omitempty"`
	Notes   []core.Note `json:"notes"`
}

// NewServer registers the note tools for store.
func NewServer(store *core.Store, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{store: store, logger: logger}

	s.mcp = server.NewMCPServer(
		"Scribe",
		version,
		server.WithToolCapabilities(true),
	)

	s.mcp.AddTool(
		mcp.NewTool("create_note",
			append([]mcp.ToolOption{
				mcp.WithDescription("Create a note. It is added at the top of the collection. Content longer than 500 characters is cut."),
				mcp.WithString("content",
					mcp.Required(),
					mcp.Description("Note text; must not be blank"),
				),
			}, formattingParams()...)...,
		),
		s.handleCreate,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_notes",
			mcp.WithDescription("List notes, newest first, optionally filtered by a case-insensitive search term."),
			mcp.WithString("search",
				mcp.Description("Optional: only notes whose content contains this text"),
			),
		),
		s.handleList,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a single note by its ID."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		s.handleGet,
	)

	s.mcp.AddTool(
		mcp.NewTool("update_note",
			append([]mcp.ToolOption{
				mcp.WithDescription("Edit a note's content and/or formatting. Omitted fields keep their stored value; ID and creation time never change."),
				mcp.WithString("id",
					mcp.Required(),
					mcp.Description("The note ID"),
				),
				mcp.WithString("content",
					mcp.Description("Optional: replacement text"),
				),
			}, formattingParams()...)...,
		),
		s.handleUpdate,
	)

	s.mcp.AddTool(
		mcp.NewTool("delete_note",
			mcp.WithDescription("Delete a note by its ID. Deleting an unknown ID succeeds without changes."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		s.handleDelete,
	)

	s.mcp.AddTool(
		mcp.NewTool("formatting_options",
			mcp.WithDescription("List the allowed values and defaults of every formatting axis."),
		),
		s.handleFormattingOptions,
	)

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// ReloadOn starts src and reloads the store on every event it emits, until
// ctx ends or the source closes.
func (s *Server) ReloadOn(ctx context.Context, src lifecycle.Source) error {
	if err := src.Start(ctx); err != nil {
		return fmt.Errorf("failed to start change source: %w", err)
	}
	events := src.Events()

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				s.logger.Debug("reloading", "event", e.String())
				if err := s.reload(ctx); err != nil {
					s.logger.Error("reload failed", "error", err)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("reload loop panic", "error", err)
	}))
	return nil
}

func (s *Server) reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Reload(ctx); err != nil {
		return err
	}
	s.logger.Debug("store reloaded", "notes", s.store.Len())
	return nil
}

func formattingParams() []mcp.ToolOption {
	var opts []mcp.ToolOption
	for _, axis := range core.Axes() {
		opts = append(opts, mcp.WithString(string(axis),
			mcp.Description(fmt.Sprintf("Optional: %s", axis)),
			mcp.Enum(core.AxisValues(axis)...),
		))
	}
	return opts
}

func (s *Server) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}
	f, err := formattingFrom(req, core.DefaultFormatting())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.store.Create(ctx, content, f)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create note: %v", err)), nil
	}
	return jsonResult(n)
}

func (s *Server) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	res := s.store.Search(req.GetString("search", ""))
	s.mu.Unlock()

	out := ListResult{
		Search:  res.Term,
		Total:   res.Total,
		Matched: res.Matched,
		Empty:   res.EmptyState().String(),
		Notes:   res.Notes,
	}
	if out.Notes == nil {
		out.Notes = []core.Note{}
	}
	return jsonResult(out)
}

func (s *Server) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	s.mu.Lock()
	n, err := s.store.Get(id)
	s.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(n)
}

// handleUpdate runs a whole edit session: start, apply changes, save.
func (s *Server) handleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := core.NewComposer(s.store)
	if err := c.StartEdit(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	if content, ok := args["content"].(string); ok {
		if err := c.EditContent(content); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	for _, axis := range core.Axes() {
		value := req.GetString(string(axis), "")
		if value == "" {
			continue
		}
		if err := c.SetAxis(axis, value); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	n, err := c.Save(ctx)
	if err != nil {
		_ = c.Cancel()
		return mcp.NewToolResultError(fmt.Sprintf("failed to save note: %v", err)), nil
	}
	return jsonResult(n)
}

func (s *Server) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete note: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted %s", id)), nil
}

func (s *Server) handleFormattingOptions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defaults := core.DefaultFormatting()
	type axisResult struct {
		Values  []string `json:"values"`
		Default string   `json:"default"`
	}
	out := make(map[string]axisResult, len(core.Axes()))
	for _, axis := range core.Axes() {
		out[string(axis)] = axisResult{
			Values:  core.AxisValues(axis),
			Default: defaults.Get(axis),
		}
	}
	return jsonResult(out)
}

// formattingFrom overlays the axis arguments present in req onto base.
func formattingFrom(req mcp.CallToolRequest, base core.Formatting) (core.Formatting, error) {
	f := base
	for _, axis := range core.Axes() {
		value := req.GetString(string(axis), "")
		if value == "" {
			continue
		}
		next, err := f.With(axis, value)
		if err != nil {
			return core.Formatting{}, err
		}
		f = next
	}
	return f, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
