package platform

import (
	"log/slog"

	"github.com/aretw0/scribe/pkg/core"
)

// Adapter names accepted by WithAdapter and the config file.
const (
	AdapterMemory = "memory"
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
	AdapterMongo  = "mongo"
)

// Adapters lists the known adapter names.
func Adapters() []string {
	return []string{AdapterMemory, AdapterFS, AdapterSQLite, AdapterMongo}
}

// options holds the internal configuration for a notebook.
type options struct {
	blobs     core.BlobStore
	logger    *slog.Logger
	adapter   string
	path      string
	key       string
	mustExist bool
	clock     core.Clock
	ids       core.IDGenerator

	mongoURI      string
	mongoDatabase string
}

// Option defines a functional option for configuring a notebook.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:       AdapterFS,
		key:           core.DefaultKey,
		mongoDatabase: DefaultMongoDatabase,
	}
}

// WithLogger sets the logger handed to the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdapter selects the storage adapter by name (memory, fs, sqlite, mongo).
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithPath sets the data location: a directory for fs, a directory or .db file for sqlite.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithKey sets the blob entry the collection lives under. Defaults to "notes".
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithMustExist makes the fs adapter fail instead of creating a missing directory.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithBlobStore injects a ready BlobStore (e.g. a mock). The adapter name is then ignored.
func WithBlobStore(blobs core.BlobStore) Option {
	return func(o *options) {
		o.blobs = blobs
	}
}

// WithClock replaces the wall clock used for creation timestamps.
func WithClock(c core.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(g core.IDGenerator) Option {
	return func(o *options) {
		o.ids = g
	}
}

// WithMongo sets the connection string and database for the mongo adapter.
func WithMongo(uri, database string) Option {
	return func(o *options) {
		o.mongoURI = uri
		if database != "" {
			o.mongoDatabase = database
		}
	}
}
