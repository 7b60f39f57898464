package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultKey is the blob store entry holding the serialized note collection.
const DefaultKey = "notes"

// BlobStore defines the contract for the key-value medium the notes are persisted to.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism (memory, filesystem, SQLite, MongoDB).
type BlobStore interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the whole value stored under key.
	Set(ctx context.Context, key, value string) error
}

// IDGenerator produces identifiers unique within the process lifetime.
type IDGenerator interface {
	NewID() string
}

// Clock supplies creation timestamps.
type Clock interface {
	Now() time.Time
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// UUIDGenerator returns random (version 4) UUIDs.
func UUIDGenerator() IDGenerator {
	return IDFunc(uuid.NewString)
}

// SystemClock reads the wall clock.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
