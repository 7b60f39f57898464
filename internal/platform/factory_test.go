package platform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/internal/platform"
	"github.com/aretw0/scribe/pkg/adapters/fs"
	"github.com/aretw0/scribe/pkg/adapters/memory"
	"github.com/aretw0/scribe/pkg/adapters/sqlite"
	"github.com/aretw0/scribe/pkg/core"
)

func counter() core.IDFunc {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

func TestNew_Adapters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		opts     func(dir string) []platform.Option
		wantType any
	}{
		{
			name:     "Memory",
			opts:     func(string) []platform.Option { return []platform.Option{platform.WithAdapter("memory")} },
			wantType: &memory.Store{},
		},
		{
			name:     "FS",
			opts:     func(dir string) []platform.Option { return []platform.Option{platform.WithPath(dir)} },
			wantType: &fs.Store{},
		},
		{
			name: "SQLite Directory",
			opts: func(dir string) []platform.Option {
				return []platform.Option{platform.WithAdapter("sqlite"), platform.WithPath(dir)}
			},
			wantType: &sqlite.Store{},
		},
		{
			name: "SQLite File",
			opts: func(dir string) []platform.Option {
				return []platform.Option{platform.WithAdapter("sqlite"), platform.WithPath(filepath.Join(dir, "custom.db"))}
			},
			wantType: &sqlite.Store{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nb, err := platform.New(ctx, tt.opts(t.TempDir())...)
			require.NoError(t, err)
			t.Cleanup(func() { nb.Close() })

			assert.IsType(t, tt.wantType, nb.Blobs)
			assert.Equal(t, 0, nb.Store.Len())

			_, err = nb.Store.Create(ctx, "Buy milk", core.DefaultFormatting())
			require.NoError(t, err)
		})
	}
}

func TestNew_ReopenSeesPersistedNotes(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	nb, err := platform.New(ctx,
		platform.WithPath(dir),
		platform.WithKey("journal"),
		platform.WithIDGenerator(counter()),
		platform.WithClock(core.ClockFunc(func() time.Time { return at })),
	)
	require.NoError(t, err)
	created, err := nb.Store.Create(ctx, "Call mom", core.DefaultFormatting())
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.FileExists(t, filepath.Join(dir, "journal.json"))

	again, err := platform.New(ctx, platform.WithPath(dir), platform.WithKey("journal"))
	require.NoError(t, err)
	assert.Equal(t, []core.Note{created}, again.Store.List(""))
}

func TestNew_InjectedBlobStore(t *testing.T) {
	blobs := memory.New()
	nb, err := platform.New(context.Background(), platform.WithBlobStore(blobs), platform.WithAdapter("does-not-matter"))
	require.NoError(t, err)
	assert.Same(t, blobs, nb.Blobs)
}

func TestNew_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := platform.New(ctx, platform.WithAdapter("s3"))
	assert.ErrorContains(t, err, "unknown adapter")

	_, err = platform.New(ctx, platform.WithAdapter("mongo"))
	assert.ErrorContains(t, err, "uri")

	_, err = platform.New(ctx, platform.WithPath(filepath.Join(t.TempDir(), "missing")), platform.WithMustExist(true))
	assert.Error(t, err)

	blobs := memory.New()
	blobs.FailGet = func(string) error { return errors.New("disk on fire") }
	_, err = platform.New(ctx, platform.WithBlobStore(blobs))
	assert.ErrorContains(t, err, "disk on fire")
}

func TestNotebook_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mem, err := platform.New(ctx, platform.WithAdapter("memory"))
	require.NoError(t, err)
	_, err = mem.Watch(ctx)
	assert.ErrorIs(t, err, platform.ErrWatchUnsupported)

	dir := t.TempDir()
	nb, err := platform.New(ctx, platform.WithPath(dir))
	require.NoError(t, err)

	changes, err := nb.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("[]"), 0o600))
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}
}
