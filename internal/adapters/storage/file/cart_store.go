// Package file persists the cart to a small JSON file, the desktop analog of
// the web widget's localStorage entry.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const defaultName = "kitten-shop-cart.json"

type CartStore struct {
	path string
}

// NewCartStore stores the cart at path. An empty path picks a file in the
// user cache dir, falling back to the OS temp dir.
func NewCartStore(path string) *CartStore {
	if path == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		path = filepath.Join(base, defaultName)
	}
	return &CartStore{path: path}
}

func (s *CartStore) Load() ([]int, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("parse cart file: %w", err)
	}
	return ids, nil
}

func (s *CartStore) Save(ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}
