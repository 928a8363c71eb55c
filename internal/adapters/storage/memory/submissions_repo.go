package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"kitten-shop/internal/domain/orders"
)

// SubmissionsRepo stores received orders and feedback in memory, for dev
// runs without a database and for the router tests.
type SubmissionsRepo struct {
	mu        sync.RWMutex
	orders    map[string]orders.OrderRecord
	feedbacks map[string]orders.FeedbackRecord
}

func NewSubmissionsRepo() *SubmissionsRepo {
	return &SubmissionsRepo{
		orders:    make(map[string]orders.OrderRecord),
		feedbacks: make(map[string]orders.FeedbackRecord),
	}
}

func (r *SubmissionsRepo) SaveOrder(ctx context.Context, rec orders.OrderRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("order record id required")
	}
	if _, exists := r.orders[rec.ID]; exists {
		return errors.New("order record already exists")
	}
	r.orders[rec.ID] = rec
	return nil
}

func (r *SubmissionsRepo) SaveFeedback(ctx context.Context, rec orders.FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("feedback record id required")
	}
	if _, exists := r.feedbacks[rec.ID]; exists {
		return errors.New("feedback record already exists")
	}
	r.feedbacks[rec.ID] = rec
	return nil
}

// OrderCount reports stored orders (for tests).
func (r *SubmissionsRepo) OrderCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// FeedbackCount reports stored feedback messages (for tests).
func (r *SubmissionsRepo) FeedbackCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.feedbacks)
}
