package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Key       string `json:"key"`
	NoteCount int    `json:"note_count"`
	BlobStore string `json:"blob_store"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	blobType := "blob_store"
	if comp, ok := s.blobs.(introspection.Component); ok {
		blobType = comp.ComponentType()
	}

	return StoreState{
		Key:       s.key,
		NoteCount: len(s.notes),
		BlobStore: blobType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "note_store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
