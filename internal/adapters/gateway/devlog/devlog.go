// Package devlog is the fallback delivery strategy when neither the host
// bridge nor the HTTP backend is configured: the payload is logged and the
// delivery counts as successful.
package devlog

import (
	"context"
	"encoding/json"

	"kitten-shop/internal/platform/logger"
	"kitten-shop/internal/ports/gateway"
)

type Gateway struct {
	log logger.Logger
}

func New(log logger.Logger) *Gateway {
	return &Gateway{log: log}
}

func (g *Gateway) Send(ctx context.Context, p gateway.Payload) error {
	b, _ := json.Marshal(p)
	g.log.Info("bot data (no delivery configured)", map[string]any{
		"kind":    string(p.Kind()),
		"payload": string(b),
	})
	return nil
}
