package cart

// Store persists the ordered cart id list between sessions.
// Implementations live under internal/adapters/storage ({file,memory}).
type Store interface {
	// Load returns the previously saved id list. A missing entry is
	// (nil, nil); corrupted content is an error.
	Load() ([]int, error)
	Save(ids []int) error
}
