package orders

import (
	"errors"
	"strings"
	"time"

	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/ports/gateway"
)

var (
	// ErrCartEmpty guards order building: no resolvable items, no order.
	ErrCartEmpty = errors.New("cart is empty")
)

// OrderForm carries the raw field values of the order form.
type OrderForm struct {
	Name    string
	Phone   string
	Address string
	Comment string
}

// FeedbackForm carries the raw field values of the feedback form.
type FeedbackForm struct {
	Name    string
	Contact string
	Subject string // subject code; mapped to a label at build time
	Message string
}

// BuildOrder snapshots the resolved cart items into a submission. Field
// values are trimmed; the total is computed over the snapshot.
func BuildOrder(form OrderForm, items []catalog.Cat, now time.Time) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrCartEmpty
	}

	snapshot := make([]Item, 0, len(items))
	total := 0
	for _, c := range items {
		snapshot = append(snapshot, Item{
			ID:    c.ID,
			Name:  c.Name,
			Breed: c.Breed,
			Price: c.Price,
		})
		total += c.Price
	}

	return Order{
		Type:    string(gateway.KindOrder),
		Name:    strings.TrimSpace(form.Name),
		Phone:   strings.TrimSpace(form.Phone),
		Address: strings.TrimSpace(form.Address),
		Comment: strings.TrimSpace(form.Comment),
		Items:   snapshot,
		Total:   total,
		TS:      now,
	}, nil
}

// BuildFeedback maps the subject code to its label and trims the fields.
func BuildFeedback(form FeedbackForm, now time.Time) Feedback {
	return Feedback{
		Type:    string(gateway.KindFeedback),
		Name:    strings.TrimSpace(form.Name),
		Contact: strings.TrimSpace(form.Contact),
		Subject: SubjectLabel(form.Subject),
		Message: strings.TrimSpace(form.Message),
		TS:      now,
	}
}
