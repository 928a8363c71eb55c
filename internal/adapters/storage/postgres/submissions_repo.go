package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"kitten-shop/internal/domain/orders"
)

// SubmissionsRepo persists received submissions. The item snapshot is kept
// as jsonb next to the flat contact columns.
//
// Schema:
//
//	CREATE TABLE order_submissions (
//	    id          uuid PRIMARY KEY,
//	    received_at timestamptz NOT NULL,
//	    name        text NOT NULL,
//	    phone       text NOT NULL,
//	    address     text NOT NULL DEFAULT '',
//	    comment     text NOT NULL DEFAULT '',
//	    items       jsonb NOT NULL,
//	    total       integer NOT NULL,
//	    submitted_at timestamptz NOT NULL
//	);
//
//	CREATE TABLE feedback_submissions (
//	    id          uuid PRIMARY KEY,
//	    received_at timestamptz NOT NULL,
//	    name        text NOT NULL,
//	    contact     text NOT NULL DEFAULT '',
//	    subject     text NOT NULL,
//	    message     text NOT NULL,
//	    submitted_at timestamptz NOT NULL
//	);
type SubmissionsRepo struct {
	db *sql.DB
}

func NewSubmissionsRepo(db *sql.DB) *SubmissionsRepo {
	return &SubmissionsRepo{db: db}
}

func (r *SubmissionsRepo) SaveOrder(ctx context.Context, rec orders.OrderRecord) error {
	items, err := json.Marshal(rec.Order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO order_submissions (
			id, received_at,
			name, phone, address, comment,
			items, total, submitted_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.ReceivedAt,
		rec.Order.Name,
		rec.Order.Phone,
		rec.Order.Address,
		rec.Order.Comment,
		items,
		rec.Order.Total,
		rec.Order.TS,
	)
	return err
}

func (r *SubmissionsRepo) SaveFeedback(ctx context.Context, rec orders.FeedbackRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedback_submissions (
			id, received_at,
			name, contact, subject, message,
			submitted_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rec.ID,
		rec.ReceivedAt,
		rec.Feedback.Name,
		rec.Feedback.Contact,
		rec.Feedback.Subject,
		rec.Feedback.Message,
		rec.Feedback.TS,
	)
	return err
}
