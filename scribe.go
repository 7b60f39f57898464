package scribe

import (
	"context"
	"log/slog"

	"github.com/aretw0/scribe/internal/platform"
	"github.com/aretw0/scribe/pkg/core"
)

// --- Types ---

// Notebook is a loaded note store together with its storage adapter.
type Notebook = platform.Notebook

// Config is the YAML configuration file.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring a Notebook.
type Option = platform.Option

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAdapter selects the storage adapter by name: "memory", "fs" (default), "sqlite" or "mongo".
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithPath sets the adapter-specific location (directory for fs, file or directory for sqlite).
func WithPath(path string) Option {
	return platform.WithPath(path)
}

// WithKey sets the blob entry the collection lives under. Defaults to "notes".
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithMustExist makes the fs adapter fail when its directory does not exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithBlobStore injects a custom storage adapter (e.g. a mock).
// If provided, the adapter name is ignored.
func WithBlobStore(blobs core.BlobStore) Option {
	return platform.WithBlobStore(blobs)
}

// WithClock replaces the clock used for creation timestamps.
func WithClock(c core.Clock) Option {
	return platform.WithClock(c)
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g core.IDGenerator) Option {
	return platform.WithIDGenerator(g)
}

// WithMongo sets the connection string and database for the mongo adapter.
func WithMongo(uri, database string) Option {
	return platform.WithMongo(uri, database)
}

// --- Constructors ---

// Open builds the configured storage adapter, wires a Store on top of it and
// loads the persisted collection. Close the Notebook when done.
func Open(ctx context.Context, opts ...Option) (*Notebook, error) {
	return platform.New(ctx, opts...)
}

// LoadConfig reads the YAML config at path (the default location when empty)
// and applies SCRIBE_* environment overrides.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// NewComposer returns an idle Composer committing into store.
func NewComposer(store *core.Store) *core.Composer {
	return core.NewComposer(store)
}
