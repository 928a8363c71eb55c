package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kitten-shop/internal/platform/logger"
)

// Service is the backend intake: it stores a received submission and
// forwards it to the admin chat. Notification failures are logged but never
// fail the intake, same as the original bot.
type Service struct {
	repo     Repository
	notifier AdminNotifier
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, notifier AdminNotifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// AcceptOrder records an incoming order and notifies staff.
func (s *Service) AcceptOrder(ctx context.Context, o Order) (OrderRecord, error) {
	rec := OrderRecord{
		ID:         uuid.NewString(),
		ReceivedAt: s.now(),
		Order:      o,
	}
	if err := s.repo.SaveOrder(ctx, rec); err != nil {
		return OrderRecord{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyOrder(ctx, o); err != nil {
			s.log.Error("order notification failed", map[string]any{
				"order_id": rec.ID,
				"error":    err.Error(),
			})
		}
	}

	return rec, nil
}

// AcceptFeedback records an incoming feedback message and notifies staff.
func (s *Service) AcceptFeedback(ctx context.Context, f Feedback) (FeedbackRecord, error) {
	rec := FeedbackRecord{
		ID:         uuid.NewString(),
		ReceivedAt: s.now(),
		Feedback:   f,
	}
	if err := s.repo.SaveFeedback(ctx, rec); err != nil {
		return FeedbackRecord{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyFeedback(ctx, f); err != nil {
			s.log.Error("feedback notification failed", map[string]any{
				"feedback_id": rec.ID,
				"error":       err.Error(),
			})
		}
	}

	return rec, nil
}
