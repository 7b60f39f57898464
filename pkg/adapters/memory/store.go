// Package memory provides a BlobStore that keeps values in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/introspection"
)

// Store implements core.BlobStore with a map.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	writes int

	// Fail, when set, is consulted before every Set; a non-nil result aborts the write.
	Fail func(key string) error
	// FailGet, when set, is consulted before every Get.
	FailGet func(key string) error
}

// New returns an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailGet != nil {
		if err := s.FailGet(key); err != nil {
			return "", false, err
		}
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		if err := s.Fail(key); err != nil {
			return err
		}
	}
	s.values[key] = value
	s.writes++
	return nil
}

// Writes returns how many Set calls succeeded.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Keys   int `json:"keys"`
	Writes int `json:"writes"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{Keys: len(s.values), Writes: s.writes}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
