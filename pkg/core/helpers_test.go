package core_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/pkg/adapters/memory"
	"github.com/aretw0/scribe/pkg/core"
)

var epoch = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// sequence yields n-1, n-2, ... so tests can predict ids.
func sequence() core.IDGenerator {
	i := 0
	return core.IDFunc(func() string {
		i++
		return fmt.Sprintf("n-%d", i)
	})
}

// ticker advances one second per call.
func ticker() core.Clock {
	now := epoch
	return core.ClockFunc(func() time.Time {
		now = now.Add(time.Second)
		return now
	})
}

func newStore(t testing.TB) (*core.Store, *memory.Store) {
	t.Helper()
	blobs := memory.New()
	store := core.NewStore(blobs, core.WithIDGenerator(sequence()), core.WithClock(ticker()))
	require.NoError(t, store.Load(context.Background()))
	return store, blobs
}

func persisted(t testing.TB, blobs *memory.Store) []core.Note {
	t.Helper()
	data, ok, err := blobs.Get(context.Background(), core.DefaultKey)
	require.NoError(t, err)
	if !ok {
		return nil
	}
	notes, err := core.Decode(data)
	require.NoError(t, err)
	return notes
}

func contents(notes []core.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Content
	}
	return out
}
