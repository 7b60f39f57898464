package core

import (
	"context"
	"errors"
	"fmt"
)

// ComposerState is one of Idle, Composing or Editing.
// Only one context can hold the formatting selection at a time, so creating a
// note and editing another are mutually exclusive by construction.
type ComposerState interface {
	composerState()
}

// Idle means nothing is being composed or edited.
type Idle struct{}

// Composing holds the draft of a note that does not exist yet.
type Composing struct {
	Content    string
	Formatting Formatting
}

// Editing holds a private working copy of a stored note.
type Editing struct {
	TargetID   string
	Content    string
	Formatting Formatting
}

func (Idle) composerState()      {}
func (Composing) composerState() {}
func (Editing) composerState()   {}

// Composer drives the compose and edit flows on top of a Store.
// Like Store, it is meant for a single caller at a time.
type Composer struct {
	store   *Store
	session *FormattingSession

	mode    ComposerState // Idle, Composing or Editing; Formatting fields unused
	content string
}

// NewComposer returns an idle Composer committing into store.
func NewComposer(store *Store) *Composer {
	return &Composer{
		store:   store,
		session: NewFormattingSession(),
		mode:    Idle{},
	}
}

// State returns a snapshot of the current state, formatting included.
func (c *Composer) State() ComposerState {
	switch m := c.mode.(type) {
	case Composing:
		return Composing{Content: c.content, Formatting: c.session.Selection()}
	case Editing:
		return Editing{TargetID: m.TargetID, Content: c.content, Formatting: c.session.Selection()}
	default:
		return Idle{}
	}
}

// Selection returns the formatting currently selected.
func (c *Composer) Selection() Formatting {
	return c.session.Selection()
}

// SetAxis changes one formatting axis of the active context. From Idle it
// starts composing a new note.
func (c *Composer) SetAxis(axis Axis, value string) error {
	if err := c.session.SetAxis(axis, value); err != nil {
		return err
	}
	if _, idle := c.mode.(Idle); idle {
		c.mode = Composing{}
	}
	return nil
}

// Compose replaces the draft of the new note, cut to MaxContentLength.
// It is rejected with ErrEditInProgress while an edit is open.
func (c *Composer) Compose(text string) error {
	if _, editing := c.mode.(Editing); editing {
		return ErrEditInProgress
	}
	c.mode = Composing{}
	c.content = TruncateContent(text)
	return nil
}

// Submit creates the drafted note and returns to Idle.
// An empty draft is rejected with ErrEmptyContent and the draft is kept.
func (c *Composer) Submit(ctx context.Context) (Note, error) {
	switch c.mode.(type) {
	case Editing:
		return Note{}, ErrEditInProgress
	case Idle:
		return Note{}, ErrEmptyContent
	}

	n, err := c.store.Create(ctx, c.content, c.session.Selection())
	if err != nil {
		return Note{}, err
	}
	c.toIdle()
	return n, nil
}

// Discard drops the draft and returns to Idle.
func (c *Composer) Discard() error {
	if _, composing := c.mode.(Composing); !composing {
		return ErrNotComposing
	}
	c.toIdle()
	return nil
}

// StartEdit opens an edit session on the stored note id, seeding the working
// copy and the formatting selection from it. An edit already open is
// cancelled first; a draft being composed is discarded.
func (c *Composer) StartEdit(id string) error {
	n, err := c.store.Get(id)
	if err != nil {
		return err
	}
	if err := c.session.Seed(n.Formatting); err != nil {
		return fmt.Errorf("stored note %s: %w", id, err)
	}
	c.mode = Editing{TargetID: n.ID}
	c.content = n.Content
	return nil
}

// EditContent replaces the working copy, cut to MaxContentLength.
// The stored note is not touched until Save.
func (c *Composer) EditContent(text string) error {
	if _, editing := c.mode.(Editing); !editing {
		return ErrNotEditing
	}
	c.content = TruncateContent(text)
	return nil
}

// Save commits the working copy and the current selection to the stored note.
//
// On success, or when the target no longer exists (ErrNotFound), the session
// ends. On a persistence failure the session stays open so the caller can
// retry or Cancel.
func (c *Composer) Save(ctx context.Context) (Note, error) {
	m, editing := c.mode.(Editing)
	if !editing {
		return Note{}, ErrNotEditing
	}

	n, err := c.store.Update(ctx, m.TargetID, c.content, c.session.Selection())
	if errors.Is(err, ErrNotFound) {
		c.toIdle()
		return Note{}, err
	}
	if err != nil {
		return Note{}, err
	}
	c.toIdle()
	return n, nil
}

// Cancel discards the working copy without touching the stored note.
func (c *Composer) Cancel() error {
	if _, editing := c.mode.(Editing); !editing {
		return ErrNotEditing
	}
	c.toIdle()
	return nil
}

func (c *Composer) toIdle() {
	c.mode = Idle{}
	c.content = ""
	c.session.Reset()
}
