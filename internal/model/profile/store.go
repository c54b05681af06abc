package profile

import "context"

// Store exposes profile retrieval for the chat pipeline. Implementations may
// be remote; lookup failure must be treated by callers as "no profile", never
// as a request failure.
type Store interface {
	FindByUserID(ctx context.Context, userID string) (Profile, bool, error)
}

// MemoryStore implements Store with an in-memory map, suitable for local
// development and tests.
type MemoryStore struct {
	items map[string]Profile
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied profiles.
func NewMemoryStore(items map[string]Profile) *MemoryStore {
	copied := make(map[string]Profile, len(items))
	for id, p := range items {
		copied[id] = p
	}
	return &MemoryStore{items: copied}
}

// FindByUserID looks up a profile by user identifier.
func (s *MemoryStore) FindByUserID(_ context.Context, userID string) (Profile, bool, error) {
	p, ok := s.items[userID]
	return p, ok, nil
}
