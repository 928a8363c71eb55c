package orders

import (
	"context"
	"time"
)

// OrderRecord is a received order as the backend stores it.
type OrderRecord struct {
	ID         string
	ReceivedAt time.Time
	Order      Order
}

// FeedbackRecord is a received feedback message as the backend stores it.
type FeedbackRecord struct {
	ID         string
	ReceivedAt time.Time
	Feedback   Feedback
}

// Repository persists received submissions on the backend side.
type Repository interface {
	SaveOrder(ctx context.Context, rec OrderRecord) error
	SaveFeedback(ctx context.Context, rec FeedbackRecord) error
}

// AdminNotifier forwards a received submission to the nursery staff.
// The Telegram adapter implements it; a nil notifier is allowed in dev.
type AdminNotifier interface {
	NotifyOrder(ctx context.Context, o Order) error
	NotifyFeedback(ctx context.Context, f Feedback) error
}
