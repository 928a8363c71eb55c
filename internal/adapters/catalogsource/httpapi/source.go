// Package httpapi loads the catalog from the shop backend
// (GET {base_url}/cats).
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/platform/httpclient"
)

const catsPath = "/cats"

type Source struct {
	client *httpclient.Client
}

// New builds a source rooted at baseURL.
func New(baseURL string, timeout time.Duration) (*Source, error) {
	client, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if client.BaseURL == "" {
		return nil, fmt.Errorf("catalog source requires a base url")
	}
	return &Source{client: client}, nil
}

// NewWithClient injects a prepared client (for tests).
func NewWithClient(client *httpclient.Client) *Source {
	return &Source{client: client}
}

func (s *Source) Fetch(ctx context.Context) ([]catalog.Cat, error) {
	var cats []catalog.Cat
	if err := s.client.DoJSON(ctx, http.MethodGet, catsPath, nil, nil, &cats); err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return cats, nil
}
