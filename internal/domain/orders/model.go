package orders

import (
	"time"

	"kitten-shop/internal/ports/gateway"
)

// Item is the cart snapshot line embedded in an order.
type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Price int    `json:"price"`
}

// Order is the submission sent to the bot when the buyer confirms the cart.
type Order struct {
	Type    string    `json:"type"` // always "order"
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
	Comment string    `json:"comment"`
	Items   []Item    `json:"items"`
	Total   int       `json:"total"`
	TS      time.Time `json:"ts"`
}

func (Order) Kind() gateway.Kind { return gateway.KindOrder }

// Feedback is the contact-form submission.
type Feedback struct {
	Type    string    `json:"type"` // always "feedback"
	Name    string    `json:"name"`
	Contact string    `json:"contact"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	TS      time.Time `json:"ts"`
}

func (Feedback) Kind() gateway.Kind { return gateway.KindFeedback }

// Feedback subject codes offered by the form.
const (
	SubjectQuestion = "question"
	SubjectBooking  = "booking"
	SubjectReview   = "review"
	SubjectDelivery = "delivery"
	SubjectOther    = "other"
)

// SubjectLabelDefault is used for any unrecognized subject code.
const SubjectLabelDefault = "Другое"

var subjectLabels = map[string]string{
	SubjectQuestion: "Вопрос о котах",
	SubjectBooking:  "Запись на просмотр",
	SubjectReview:   "Отзыв о питомнике",
	SubjectDelivery: "Вопрос о доставке",
	SubjectOther:    SubjectLabelDefault,
}

// SubjectLabel maps a subject code to its display label.
func SubjectLabel(code string) string {
	if label, ok := subjectLabels[code]; ok {
		return label
	}
	return SubjectLabelDefault
}
