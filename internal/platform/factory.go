package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/scribe/pkg/adapters/fs"
	"github.com/aretw0/scribe/pkg/adapters/memory"
	"github.com/aretw0/scribe/pkg/adapters/mongo"
	"github.com/aretw0/scribe/pkg/adapters/sqlite"
	"github.com/aretw0/scribe/pkg/core"
)

// ErrWatchUnsupported is returned by Notebook.Watch when the adapter cannot observe external writes.
var ErrWatchUnsupported = errors.New("adapter does not support watching")

// sqliteFile is the database file created inside a directory path.
const sqliteFile = "scribe.db"

// Watcher is implemented by blob stores that can signal external writes to a key.
type Watcher interface {
	Watch(ctx context.Context, key string) (<-chan struct{}, error)
}

// Notebook bundles a loaded Store with the BlobStore behind it.
type Notebook struct {
	Store *core.Store
	Blobs core.BlobStore

	logger *slog.Logger
}

// Init builds the BlobStore selected by the options.
// The path argument of WithPath is adapter-specific (directory for fs, file or directory for sqlite).
func Init(ctx context.Context, opts ...Option) (core.BlobStore, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initBlobs(ctx, o)
}

func initBlobs(ctx context.Context, o *options) (core.BlobStore, error) {
	if o.blobs != nil {
		return o.blobs, nil
	}

	switch o.adapter {
	case AdapterMemory:
		return memory.New(), nil
	case AdapterFS:
		return initFS(ctx, o)
	case AdapterSQLite:
		return initSQLite(ctx, o)
	case AdapterMongo:
		if o.mongoURI == "" {
			return nil, errors.New("mongo adapter requires a connection uri")
		}
		return mongo.Connect(ctx, o.mongoURI, o.mongoDatabase)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

func initFS(ctx context.Context, o *options) (core.BlobStore, error) {
	path, err := resolvePath(o.path)
	if err != nil {
		return nil, err
	}
	store := fs.New(fs.Config{
		Dir:       path,
		MustExist: o.mustExist,
		Logger:    o.logger,
	})
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func initSQLite(ctx context.Context, o *options) (core.BlobStore, error) {
	path, err := resolvePath(o.path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) != ".db" {
		path = filepath.Join(path, sqliteFile)
	}
	return sqlite.Open(ctx, path)
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return filepath.Abs(path)
	}
	return DataDir()
}

// New builds the BlobStore, wires a Store on top of it and loads the collection.
func New(ctx context.Context, opts ...Option) (*Notebook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	blobs, err := initBlobs(ctx, o)
	if err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	store := core.NewStore(blobs,
		core.WithKey(o.key),
		core.WithClock(o.clock),
		core.WithIDGenerator(o.ids),
		core.WithStoreLogger(logger),
	)
	nb := &Notebook{Store: store, Blobs: blobs, logger: logger}

	if err := store.Load(ctx); err != nil {
		nb.Close()
		return nil, err
	}
	logger.Debug("notebook opened", "adapter", o.adapter, "key", store.Key(), "notes", store.Len())
	return nb, nil
}

// Composer returns a fresh Composer on the notebook's store.
func (n *Notebook) Composer() *core.Composer {
	return core.NewComposer(n.Store)
}

// Watch signals whenever the persisted collection is rewritten by someone else.
func (n *Notebook) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, ok := n.Blobs.(Watcher)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx, n.Store.Key())
}

// Close releases the adapter's resources, if it holds any.
func (n *Notebook) Close() error {
	if c, ok := n.Blobs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
