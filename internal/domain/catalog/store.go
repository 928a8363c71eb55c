package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrNotLoaded reports that no snapshot has been loaded yet.
	ErrNotLoaded = errors.New("catalog not loaded")
)

// Store holds the current catalog snapshot. The whole catalog is small and
// loaded in one piece; a failed load keeps the previous (empty) snapshot and
// stays retryable via Load.
type Store struct {
	mu      sync.RWMutex
	source  Source
	cats    []Cat
	loaded  bool
	loadErr error
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Load fetches a fresh snapshot from the source. On failure the current
// snapshot is left untouched and the error is kept for LoadErr.
func (s *Store) Load(ctx context.Context) error {
	cats, err := s.source.Fetch(ctx)
	if err == nil {
		err = checkUniqueIDs(cats)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.loadErr = err
		return err
	}

	s.cats = cats
	s.loaded = true
	s.loadErr = nil
	return nil
}

func checkUniqueIDs(cats []Cat) error {
	seen := make(map[int]struct{}, len(cats))
	for _, c := range cats {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate cat id %d in catalog", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// Loaded reports whether a snapshot is available.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LoadErr returns the error from the last failed Load, or nil.
func (s *Store) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loaded {
		return nil
	}
	if s.loadErr != nil {
		return s.loadErr
	}
	return ErrNotLoaded
}

// All returns a copy of the current snapshot in catalog order.
func (s *Store) All() []Cat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Cat, len(s.cats))
	copy(out, s.cats)
	return out
}

// Find resolves an id against the snapshot.
func (s *Store) Find(id int) (Cat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.cats {
		if c.ID == id {
			return c, true
		}
	}
	return Cat{}, false
}

// Filter returns the cats matching the category and the search text:
// category "all" matches everything, the search is a case-insensitive
// substring over name, breed and color. Catalog order is preserved.
func (s *Store) Filter(category Category, search string) []Cat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]Cat, 0, len(s.cats))
	for _, c := range s.cats {
		if category != "" && category != CategoryAll && c.Category != category {
			continue
		}
		if q != "" && !matchesSearch(c, q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesSearch(c Cat, q string) bool {
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Breed), q) ||
		strings.Contains(strings.ToLower(c.Color), q)
}
