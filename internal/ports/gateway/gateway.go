// Package gateway defines the boundary that forwards completed submissions
// to the shop's bot. Delivery strategies live under
// internal/adapters/gateway and are picked at configuration time.
package gateway

import "context"

// Kind tells a delivery strategy which submission it is carrying.
type Kind string

const (
	KindOrder    Kind = "order"
	KindFeedback Kind = "feedback"
)

// Payload is a JSON-serializable submission.
type Payload interface {
	Kind() Kind
}

// Gateway delivers a payload to the external collaborator. Fire-and-forget
// with an outcome: a nil error means the payload was handed off.
type Gateway interface {
	Send(ctx context.Context, p Payload) error
}
