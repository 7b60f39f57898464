package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Store owns the ordered note collection (newest first) and writes the whole
// collection to its BlobStore after every successful mutation.
//
// A Store is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
type Store struct {
	blobs  BlobStore
	key    string
	ids    IDGenerator
	clock  Clock
	logger *slog.Logger

	notes []Note
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKey sets the blob store entry the collection lives under.
func WithKey(key string) StoreOption {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithStoreLogger sets the logger for the store.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates an empty Store backed by blobs. Call Load to read the persisted collection.
func NewStore(blobs BlobStore, opts ...StoreOption) *Store {
	s := &Store{
		blobs:  blobs,
		key:    DefaultKey,
		ids:    UUIDGenerator(),
		clock:  SystemClock(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the blob store entry this store persists to.
func (s *Store) Key() string {
	return s.key
}

// Load replaces the in-memory collection with the persisted one.
// A missing or unparseable value yields an empty collection; only a failing
// blob store read is reported.
func (s *Store) Load(ctx context.Context) error {
	data, ok, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", s.key, err)
	}
	if !ok {
		s.notes = nil
		s.logger.Debug("no persisted notes", "key", s.key)
		return nil
	}

	notes, err := Decode(data)
	if err != nil {
		s.logger.Warn("discarding unreadable notes", "key", s.key, "error", err)
		s.notes = nil
		return nil
	}
	s.notes = notes
	s.logger.Debug("notes loaded", "key", s.key, "count", len(notes))
	return nil
}

// Reload is Load under a name that reads well at call sites reacting to external writes.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Create prepends a new note. Content is cut to MaxContentLength first; if
// what remains is whitespace only it is rejected with ErrEmptyContent and
// nothing changes.
func (s *Store) Create(ctx context.Context, content string, f Formatting) (Note, error) {
	content = TruncateContent(content)
	if strings.TrimSpace(content) == "" {
		return Note{}, ErrEmptyContent
	}
	if err := f.Validate(); err != nil {
		return Note{}, err
	}

	n := Note{
		ID:         s.ids.NewID(),
		Content:    content,
		CreatedAt:  s.clock.Now().UTC().Round(0),
		Formatting: f,
	}
	if _, err := s.indexOf(n.ID); err == nil {
		return Note{}, fmt.Errorf("id generator returned duplicate id %q", n.ID)
	}

	next := make([]Note, 0, len(s.notes)+1)
	next = append(next, n)
	next = append(next, s.notes...)
	if err := s.commit(ctx, next); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note created", "id", n.ID)
	return n, nil
}

// Update replaces content and formatting of the note with id, keeping its
// ID, CreatedAt and position. It returns ErrNotFound when no such note exists.
func (s *Store) Update(ctx context.Context, id, content string, f Formatting) (Note, error) {
	i, err := s.indexOf(id)
	if err != nil {
		return Note{}, err
	}
	if err := f.Validate(); err != nil {
		return Note{}, err
	}

	next := s.snapshot()
	next[i].Content = TruncateContent(content)
	next[i].Formatting = f
	if err := s.commit(ctx, next); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note updated", "id", id)
	return next[i], nil
}

// Delete removes the note with id. Deleting an absent id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	i, err := s.indexOf(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}

	next := make([]Note, 0, len(s.notes)-1)
	next = append(next, s.notes[:i]...)
	next = append(next, s.notes[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.logger.Debug("note deleted", "id", id)
	return nil
}

// Get returns the note with id.
func (s *Store) Get(id string) (Note, error) {
	i, err := s.indexOf(id)
	if err != nil {
		return Note{}, err
	}
	return s.notes[i], nil
}

// List returns the notes whose content contains term, ignoring case.
// An empty term returns the whole collection. The result is a copy.
func (s *Store) List(term string) []Note {
	return Filter(s.notes, term)
}

// Search is List plus the counts needed to tell "no notes yet" from "no matches".
func (s *Store) Search(term string) SearchResult {
	return Search(s.notes, term)
}

// Len returns the size of the collection.
func (s *Store) Len() int {
	return len(s.notes)
}

// commit persists next and adopts it. On failure the previous collection is kept.
func (s *Store) commit(ctx context.Context, next []Note) error {
	data, err := Encode(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := s.blobs.Set(ctx, s.key, data); err != nil {
		s.logger.Error("failed to persist notes", "key", s.key, "error", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.notes = next
	return nil
}

func (s *Store) snapshot() []Note {
	return append([]Note(nil), s.notes...)
}

func (s *Store) indexOf(id string) (int, error) {
	for i, n := range s.notes {
		if n.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
}
