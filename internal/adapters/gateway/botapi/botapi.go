// Package botapi posts submissions to the shop backend over HTTP with the
// pre-shared secret header.
package botapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kitten-shop/internal/platform/httpclient"
	"kitten-shop/internal/ports/gateway"
)

// SecretHeader carries the shared secret on every submission.
const SecretHeader = "X-Secret"

type Config struct {
	BaseURL string
	Secret  string
	Timeout time.Duration
}

type Gateway struct {
	client *httpclient.Client
	secret string
}

func New(cfg Config) (*Gateway, error) {
	client, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if client.BaseURL == "" {
		return nil, errors.New("botapi gateway requires a base url")
	}
	return &Gateway{client: client, secret: cfg.Secret}, nil
}

// NewWithClient injects a prepared client (for tests).
func NewWithClient(client *httpclient.Client, secret string) *Gateway {
	return &Gateway{client: client, secret: secret}
}

func (g *Gateway) Send(ctx context.Context, p gateway.Payload) error {
	path, err := endpointFor(p.Kind())
	if err != nil {
		return err
	}

	headers := map[string]string{SecretHeader: g.secret}
	if err := g.client.DoJSON(ctx, http.MethodPost, path, headers, p, nil); err != nil {
		return fmt.Errorf("send %s: %w", p.Kind(), err)
	}
	return nil
}

func endpointFor(kind gateway.Kind) (string, error) {
	switch kind {
	case gateway.KindOrder:
		return "/order", nil
	case gateway.KindFeedback:
		return "/feedback", nil
	default:
		return "", fmt.Errorf("unknown payload kind %q", kind)
	}
}
