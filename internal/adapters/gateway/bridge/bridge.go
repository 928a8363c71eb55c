// Package bridge delivers submissions through the surrounding host
// application (Telegram WebApp sendData). The host acknowledges nothing, so
// a successful handoff is a successful delivery.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kitten-shop/internal/ports/gateway"
)

// SendDataFunc is the host-provided send channel.
type SendDataFunc func(data string)

type Gateway struct {
	send SendDataFunc
}

func New(send SendDataFunc) (*Gateway, error) {
	if send == nil {
		return nil, errors.New("bridge gateway requires a send function")
	}
	return &Gateway{send: send}, nil
}

func (g *Gateway) Send(ctx context.Context, p gateway.Payload) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("bridge: encode %s payload: %w", p.Kind(), err)
	}
	g.send(string(b))
	return nil
}
