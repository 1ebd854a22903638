package session

import "sync"

// MemoryStore keeps the session in memory. Used by tests and callers
// that do not want credentials on disk.
type MemoryStore struct {
	mu sync.Mutex
	s  Session
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the stored session.
func (ms *MemoryStore) Get() (Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.s, nil
}

// Set replaces the stored session.
func (ms *MemoryStore) Set(s Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.s = s
	return nil
}

// Clear resets the stored session to zero.
func (ms *MemoryStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.s = Session{}
	return nil
}
