package catalog

import "context"

// Source supplies a full catalog snapshot. Implementations live under
// internal/adapters/catalogsource (bundled seed, remote API).
type Source interface {
	Fetch(ctx context.Context) ([]Cat, error)
}
