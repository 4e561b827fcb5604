// Package store holds the authoritative, ordered, in-memory collection of
// todo items. Nothing here touches the disk or the terminal.
package store

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/crimson/internal/model"
)

// maxIDAttempts bounds how often Add asks the generator for a fresh id.
const maxIDAttempts = 8

// Store owns the todo items. Items keep insertion order; the only ways to
// change them are Add, Toggle, Remove and Clear. A failed call leaves the
// collection untouched.
//
// Store is not safe for concurrent use: it is driven from the single UI
// event loop.
type Store struct {
	items  []model.Item
	index  map[string]int      // id -> position in items
	issued map[string]struct{} // every id ever handed out, removed or not
	ids    IDGenerator
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		index:  map[string]int{},
		issued: map[string]struct{}{},
		ids:    UUIDGenerator{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewWithItems returns a store seeded with items, in order. Seed items keep
// their ids; an item without an id gets a generated one. Text is trimmed.
func NewWithItems(items []model.Item, opts ...Option) (*Store, error) {
	s := New(opts...)
	for i, it := range items {
		text := strings.TrimSpace(it.Text)
		if text == "" {
			return nil, fmt.Errorf("seed item %d: %w", i+1, &ValidationError{Field: "text", Err: ErrEmptyText})
		}
		id := it.ID
		if id == "" {
			var err error
			if id, err = s.freshID(); err != nil {
				return nil, fmt.Errorf("seed item %d: %w", i+1, err)
			}
		} else {
			if _, dup := s.issued[id]; dup {
				return nil, fmt.Errorf("seed item %d: %w: %q", i+1, ErrDuplicateID, id)
			}
			s.issued[id] = struct{}{}
		}
		s.index[id] = len(s.items)
		s.items = append(s.items, model.Item{ID: id, Text: text, Completed: it.Completed})
	}
	return s, nil
}

// Add appends a new, not yet completed item and returns it.
func (s *Store) Add(text string) (model.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Item{}, &ValidationError{Field: "text", Err: ErrEmptyText}
	}
	id, err := s.freshID()
	if err != nil {
		return model.Item{}, err
	}
	it := model.Item{ID: id, Text: text}
	s.index[id] = len(s.items)
	s.items = append(s.items, it)
	return it, nil
}

// Toggle flips the completed flag of the item with the given id.
// An unknown id is an error, never a silent no-op.
func (s *Store) Toggle(id string) error {
	i, ok := s.index[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	s.items[i].Completed = !s.items[i].Completed
	return nil
}

// Remove deletes the item with the given id.
func (s *Store) Remove(id string) error {
	i, ok := s.index[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return nil
}

// Clear deletes every item. Clearing an empty store reports
// ErrEmptyCollection so the caller can tell the user there was nothing to do.
func (s *Store) Clear() error {
	if len(s.items) == 0 {
		return ErrEmptyCollection
	}
	s.items = nil
	s.index = map[string]int{}
	return nil
}

// Items returns a copy of the items in insertion order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Get looks an item up by id.
func (s *Store) Get(id string) (model.Item, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Stats counts completed and pending items.
func (s *Store) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// freshID asks the generator for an id this store has never handed out.
func (s *Store) freshID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if id == "" {
			continue
		}
		if _, used := s.issued[id]; !used {
			s.issued[id] = struct{}{}
			return id, nil
		}
	}
	return "", ErrIDExhausted
}
