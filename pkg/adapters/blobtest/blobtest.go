// Package blobtest holds the behaviour every core.BlobStore adapter must share.
package blobtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/pkg/core"
)

// Run exercises a fresh store returned by open for each subtest.
func Run(t *testing.T, open func(t *testing.T) core.BlobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Missing Key Is Absent", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Get(ctx, "notes")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("Set Then Get", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "notes", `[{"id":"a"}]`))
		v, ok, err := s.Get(ctx, "notes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"a"}]`, v)
	})

	t.Run("Set Replaces Whole Value", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "notes", "a much longer first value"))
		require.NoError(t, s.Set(ctx, "notes", "[]"))
		v, _, err := s.Get(ctx, "notes")
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "notes", "one"))
		require.NoError(t, s.Set(ctx, "archive", "two"))
		v, _, _ := s.Get(ctx, "notes")
		assert.Equal(t, "one", v)
		v, _, _ = s.Get(ctx, "archive")
		assert.Equal(t, "two", v)
	})

	t.Run("Empty Value Is Present", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "notes", ""))
		_, ok, err := s.Get(ctx, "notes")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Backs A Note Store", func(t *testing.T) {
		s := open(t)
		store := core.NewStore(s)
		require.NoError(t, store.Load(ctx))
		n, err := store.Create(ctx, "Hello World", core.DefaultFormatting())
		require.NoError(t, err)

		reopened := core.NewStore(s)
		require.NoError(t, reopened.Load(ctx))
		assert.Equal(t, []core.Note{n}, reopened.List(""))
	})
}
