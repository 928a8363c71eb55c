// Package static bundles the seed catalog. It backs the API server when no
// other source is configured and keeps the storefront usable offline in dev.
package static

import (
	"context"

	"kitten-shop/internal/domain/catalog"
)

type Source struct {
	cats []catalog.Cat
}

// New returns a source serving the bundled nursery catalog.
func New() *Source {
	return &Source{cats: seed}
}

// NewWith returns a source serving the provided records (for tests).
func NewWith(cats []catalog.Cat) *Source {
	return &Source{cats: cats}
}

func (s *Source) Fetch(ctx context.Context) ([]catalog.Cat, error) {
	out := make([]catalog.Cat, len(s.cats))
	copy(out, s.cats)
	return out, nil
}
