package memory

import "sync"

// CartStore keeps the cart list in memory. Used by tests and as the
// fallback when no cart file path is available.
type CartStore struct {
	mu  sync.Mutex
	ids []int
	set bool
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

func (s *CartStore) Load() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		return nil, nil
	}
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out, nil
}

func (s *CartStore) Save(ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make([]int, len(ids))
	copy(s.ids, ids)
	s.set = true
	return nil
}
