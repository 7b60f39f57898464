// Package lifecycle bridges blob store change signals into lifecycle events.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"
)

// ChangeEvent reports that the collection stored under Key was rewritten.
type ChangeEvent struct {
	Key string
}

func (e ChangeEvent) String() string {
	return fmt.Sprintf("notes changed: %s", e.Key)
}

type changeSource struct {
	key     string
	changes <-chan struct{}
	out     chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits a ChangeEvent for every
// signal on changes, such as the channel returned by fs.Store.Watch.
func NewSource(key string, changes <-chan struct{}) lifecycle.Source {
	return &changeSource{
		key:     key,
		changes: changes,
		out:     make(chan lifecycle.Event),
	}
}

func (s *changeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *changeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-s.changes:
				if !ok {
					return nil
				}
				select {
				case s.out <- ChangeEvent{Key: s.key}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
