package doctoken

import (
	"context"
	"sync"
	"time"
)

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Put(_ context.Context, token string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = entry

	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]

	return entry, ok, nil
}

// Sweep drops every entry that has expired at now.
func (s *MemoryStore) Sweep(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, entry := range s.entries {
		if !now.Before(entry.ExpiresAt) {
			delete(s.entries, token)
		}
	}

	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
