package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore keeps codes in process memory. Entries are lost on restart and
// not shared across instances; use the Redis store for multi-instance
// deployments.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	now func() time.Time
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.entries[key(email)] = memoryEntry{code: code, expiresAt: s.now().Add(TTL)}
	return nil
}

func (s *MemoryStore) Verify(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(email)
	entry, ok := s.entries[k]
	if !ok {
		return false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, k)
		return false, nil
	}
	if entry.code != code {
		return false, nil
	}
	delete(s.entries, k)
	return true, nil
}

// sweep drops expired entries; called under the lock.
func (s *MemoryStore) sweep() {
	now := s.now()
	for k, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, k)
		}
	}
}
