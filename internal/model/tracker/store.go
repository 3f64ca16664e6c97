package tracker

import (
	"context"
	"sync"
)

// Store persists mood entries per user.
type Store interface {
	// Append stores entry and keeps at most limit entries for its user.
	Append(ctx context.Context, entry Entry, limit int) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]Entry, error)
}

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]Entry)}
}

// Append prepends entry and trims the user's history to limit.
func (s *MemoryStore) Append(_ context.Context, entry Entry, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.entries[entry.UserID]
	updated := make([]Entry, 0, len(existing)+1)
	updated = append(updated, entry)
	updated = append(updated, existing...)
	if limit > 0 && len(updated) > limit {
		updated = updated[:limit]
	}
	s.entries[entry.UserID] = updated
	return nil
}

// Recent returns a copy of the newest entries.
func (s *MemoryStore) Recent(_ context.Context, userID string, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries[userID]
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return append([]Entry(nil), entries...), nil
}
