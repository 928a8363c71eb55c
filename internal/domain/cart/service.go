package cart

import (
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/platform/logger"
)

// Service owns the cart: an ordered, duplicate-free list of cat ids.
// Every mutation persists the full list through the store; persistence is
// best-effort and never fails a cart operation.
type Service struct {
	store Store
	log   logger.Logger
	ids   []int
}

// New restores the cart from the store. Absent or unreadable state means an
// empty cart, never an error.
func New(store Store, log logger.Logger) *Service {
	s := &Service{
		store: store,
		log:   log,
		ids:   []int{},
	}

	if store == nil {
		return s
	}

	saved, err := store.Load()
	if err != nil {
		log.Warn("cart restore failed, starting empty", map[string]any{"error": err.Error()})
		return s
	}
	if len(saved) > 0 {
		// Drop duplicates defensively; the saved list should not have any.
		seen := make(map[int]struct{}, len(saved))
		for _, id := range saved {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Add appends id unless it is already present. Reports whether the cart changed.
func (s *Service) Add(id int) bool {
	if s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	s.persist()
	return true
}

// Remove deletes every occurrence of id.
func (s *Service) Remove(id int) {
	out := s.ids[:0]
	for _, v := range s.ids {
		if v != id {
			out = append(out, v)
		}
	}
	s.ids = out
	s.persist()
}

// Clear empties the cart.
func (s *Service) Clear() {
	s.ids = s.ids[:0]
	s.persist()
}

func (s *Service) Contains(id int) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns the cart contents in insertion order.
func (s *Service) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count is the badge number.
func (s *Service) Count() int {
	return len(s.ids)
}

// Resolve maps the cart against the catalog snapshot, silently dropping ids
// that no longer resolve (stale entries after a reload).
func (s *Service) Resolve(store *catalog.Store) []catalog.Cat {
	out := make([]catalog.Cat, 0, len(s.ids))
	for _, id := range s.ids {
		if c, ok := store.Find(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// Total sums the prices of the resolvable items.
func (s *Service) Total(store *catalog.Store) int {
	total := 0
	for _, c := range s.Resolve(store) {
		total += c.Price
	}
	return total
}

func (s *Service) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.IDs()); err != nil {
		// Storage unavailable or full: the in-memory cart stays correct
		// for the session, so this is only worth a log line.
		s.log.Warn("cart persist failed", map[string]any{"error": err.Error()})
	}
}
