package journal

import (
	"fmt"
	"sync"
)

// Store is the in-memory, newest-first collection of entries for one session.
// It keeps no backing storage; see package archive for durability.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	ids     map[string]struct{}
}

func NewStore() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Insert puts entry at the front of the store. Ordering follows insertion,
// not the entry's Date.
func (s *Store) Insert(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[entry.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, entry.ID)
	}

	s.ids[entry.ID] = struct{}{}
	s.entries = append([]Entry{entry.clone()}, s.entries...)
	return nil
}

// List returns a copy of the entries, newest first.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}
	return out
}

func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.ids[id]; !ok {
		return Entry{}, false
	}
	for _, e := range s.entries {
		if e.ID == id {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
