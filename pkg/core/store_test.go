package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/aretw0/scribe/pkg/adapters/memory"
	"github.com/aretw0/scribe/pkg/core"
)

func TestStore_Scenario(t *testing.T) {
	store, blobs := newStore(t)
	ctx := context.Background()

	milk, err := store.Create(ctx, "Buy milk", core.DefaultFormatting())
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk"}, contents(store.List("")))

	_, err = store.Create(ctx, "Call mom", core.DefaultFormatting())
	require.NoError(t, err)
	assert.Equal(t, []string{"Call mom", "Buy milk"}, contents(store.List("")))

	assert.Equal(t, []string{"Call mom"}, contents(store.List("call")))

	require.NoError(t, store.Delete(ctx, milk.ID))
	assert.Equal(t, []string{"Call mom"}, contents(store.List("")))
	assert.Equal(t, []string{"Call mom"}, contents(persisted(t, blobs)))
}

func TestStore_Create(t *testing.T) {
	t.Run("Prepends And Persists", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			blobs := memory.New()
			store := core.NewStore(blobs, core.WithIDGenerator(sequence()), core.WithClock(ticker()))
			ctx := context.Background()

			prior := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z ]{0,20}`), 0, 5).Draw(t, "prior")
			for _, c := range prior {
				_, err := store.Create(ctx, c, core.DefaultFormatting())
				require.NoError(t, err)
			}
			before := store.List("")

			content := rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 .,!?]{0,120}`).Draw(t, "content")
			f := formattingGen().Draw(t, "formatting")
			n, err := store.Create(ctx, content, f)
			require.NoError(t, err)

			after := store.List("")
			require.Len(t, after, len(before)+1)
			assert.Equal(t, n, after[0])
			assert.Equal(t, content, after[0].Content)
			assert.Equal(t, f, after[0].Formatting)
			assert.Equal(t, before, after[1:])
			assert.Equal(t, after, persisted(t, blobs))
		})
	})

	t.Run("Blank Content Is A No-Op", func(t *testing.T) {
		store, blobs := newStore(t)
		ctx := context.Background()
		_, err := store.Create(ctx, "keep", core.DefaultFormatting())
		require.NoError(t, err)
		before, _, _ := blobs.Get(ctx, core.DefaultKey)
		writes := blobs.Writes()

		for _, content := range []string{"", "   ", "\n\t "} {
			_, err := store.Create(ctx, content, core.DefaultFormatting())
			assert.ErrorIs(t, err, core.ErrEmptyContent)
			assert.ErrorIs(t, err, core.ErrValidation)
		}

		after, _, _ := blobs.Get(ctx, core.DefaultKey)
		assert.Equal(t, 1, store.Len())
		assert.Equal(t, before, after)
		assert.Equal(t, writes, blobs.Writes())
	})

	t.Run("Truncates To Limit", func(t *testing.T) {
		store, _ := newStore(t)
		n, err := store.Create(context.Background(), strings.Repeat("é", core.MaxContentLength+40), core.DefaultFormatting())
		require.NoError(t, err)
		assert.Equal(t, core.MaxContentLength, len([]rune(n.Content)))
	})

	t.Run("Blank After Truncation", func(t *testing.T) {
		store, blobs := newStore(t)
		content := strings.Repeat(" ", core.MaxContentLength) + "x"

		_, err := store.Create(context.Background(), content, core.DefaultFormatting())
		assert.ErrorIs(t, err, core.ErrEmptyContent)
		assert.Zero(t, store.Len())
		assert.Zero(t, blobs.Writes())
	})

	t.Run("Invalid UTF-8 Survives Reload", func(t *testing.T) {
		store, blobs := newStore(t)
		ctx := context.Background()

		n, err := store.Create(ctx, "caf\xe9 au lait", core.DefaultFormatting())
		require.NoError(t, err)
		assert.Equal(t, "caf\uFFFD au lait", n.Content)

		reloaded := core.NewStore(blobs)
		require.NoError(t, reloaded.Load(ctx))
		got, err := reloaded.Get(n.ID)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	})

	t.Run("Rejects Invalid Formatting", func(t *testing.T) {
		store, blobs := newStore(t)
		f := core.DefaultFormatting()
		f.TextAlign = "middle"
		_, err := store.Create(context.Background(), "hello", f)
		assert.ErrorIs(t, err, core.ErrInvalidFormatting)
		assert.Zero(t, store.Len())
		assert.Zero(t, blobs.Writes())
	})

	t.Run("Captures ID And Timestamp", func(t *testing.T) {
		store, _ := newStore(t)
		n, err := store.Create(context.Background(), "hello", core.DefaultFormatting())
		require.NoError(t, err)
		assert.Equal(t, "n-1", n.ID)
		assert.True(t, n.CreatedAt.After(epoch))
	})

	t.Run("Rejects Duplicate Generated ID", func(t *testing.T) {
		blobs := memory.New()
		store := core.NewStore(blobs, core.WithIDGenerator(core.IDFunc(func() string { return "same" })))
		ctx := context.Background()
		_, err := store.Create(ctx, "one", core.DefaultFormatting())
		require.NoError(t, err)
		_, err = store.Create(ctx, "two", core.DefaultFormatting())
		assert.Error(t, err)
		assert.Equal(t, 1, store.Len())
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("Replaces Content And Formatting In Place", func(t *testing.T) {
		store, blobs := newStore(t)
		ctx := context.Background()
		first, _ := store.Create(ctx, "first", core.DefaultFormatting())
		_, _ = store.Create(ctx, "second", core.DefaultFormatting())

		f := core.DefaultFormatting()
		f.FontFamily = core.FontMono
		got, err := store.Update(ctx, first.ID, "first, revised", f)
		require.NoError(t, err)

		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, first.CreatedAt, got.CreatedAt)
		assert.Equal(t, "first, revised", got.Content)
		assert.Equal(t, f, got.Formatting)
		assert.Equal(t, []string{"second", "first, revised"}, contents(store.List("")))
		assert.Equal(t, store.List(""), persisted(t, blobs))
	})

	t.Run("Unknown ID", func(t *testing.T) {
		store, blobs := newStore(t)
		_, err := store.Update(context.Background(), "missing", "x", core.DefaultFormatting())
		assert.ErrorIs(t, err, core.ErrNotFound)
		assert.Zero(t, blobs.Writes())
	})

	t.Run("Truncates To Limit", func(t *testing.T) {
		store, _ := newStore(t)
		ctx := context.Background()
		n, _ := store.Create(ctx, "short", core.DefaultFormatting())
		got, err := store.Update(ctx, n.ID, strings.Repeat("x", 900), core.DefaultFormatting())
		require.NoError(t, err)
		assert.Len(t, got.Content, core.MaxContentLength)
	})
}

func TestStore_Delete(t *testing.T) {
	store, blobs := newStore(t)
	ctx := context.Background()
	_, _ = store.Create(ctx, "one", core.DefaultFormatting())
	writes := blobs.Writes()

	require.NoError(t, store.Delete(ctx, "missing"))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, writes, blobs.Writes())
}

func TestStore_PersistenceFailureRollsBack(t *testing.T) {
	store, blobs := newStore(t)
	ctx := context.Background()
	n, err := store.Create(ctx, "stable", core.DefaultFormatting())
	require.NoError(t, err)

	disk := errors.New("disk full")
	blobs.Fail = func(string) error { return disk }

	_, err = store.Create(ctx, "lost", core.DefaultFormatting())
	assert.ErrorIs(t, err, core.ErrPersistence)
	assert.ErrorIs(t, err, disk)

	_, err = store.Update(ctx, n.ID, "changed", core.DefaultFormatting())
	assert.ErrorIs(t, err, core.ErrPersistence)

	err = store.Delete(ctx, n.ID)
	assert.ErrorIs(t, err, core.ErrPersistence)

	assert.Equal(t, []core.Note{n}, store.List(""))
	assert.Equal(t, []core.Note{n}, persisted(t, blobs))
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores Persisted Collection", func(t *testing.T) {
		store, blobs := newStore(t)
		_, _ = store.Create(ctx, "a", core.DefaultFormatting())
		_, _ = store.Create(ctx, "b", core.DefaultFormatting())

		reopened := core.NewStore(blobs)
		require.NoError(t, reopened.Load(ctx))
		assert.Equal(t, store.List(""), reopened.List(""))
	})

	t.Run("Unparseable Value Is Empty", func(t *testing.T) {
		blobs := memory.New()
		require.NoError(t, blobs.Set(ctx, core.DefaultKey, "{garbage"))
		store := core.NewStore(blobs)
		require.NoError(t, store.Load(ctx))
		assert.Zero(t, store.Len())
	})

	t.Run("Custom Key", func(t *testing.T) {
		blobs := memory.New()
		store := core.NewStore(blobs, core.WithKey("work"))
		require.NoError(t, store.Load(ctx))
		_, err := store.Create(ctx, "meeting", core.DefaultFormatting())
		require.NoError(t, err)

		_, ok, _ := blobs.Get(ctx, core.DefaultKey)
		assert.False(t, ok)
		_, ok, _ = blobs.Get(ctx, "work")
		assert.True(t, ok)
	})

	t.Run("Read Failure Is Reported", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		store := core.NewStore(memory.New())
		assert.Error(t, store.Load(cctx))
	})
}

func TestStore_Get(t *testing.T) {
	store, _ := newStore(t)
	n, _ := store.Create(context.Background(), "find me", core.DefaultFormatting())

	got, err := store.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got)

	_, err = store.Get("nope")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestStore_State(t *testing.T) {
	store, _ := newStore(t)
	_, _ = store.Create(context.Background(), "x", core.DefaultFormatting())

	state, ok := store.State().(core.StoreState)
	require.True(t, ok)
	assert.Equal(t, core.StoreState{Key: core.DefaultKey, NoteCount: 1, BlobStore: "memory"}, state)
	assert.Equal(t, "note_store", store.ComponentType())
}
