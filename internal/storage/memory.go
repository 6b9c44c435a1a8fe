// internal/storage/memory.go
package storage

import "sync"

// MemoryStore keeps blobs in process memory. It backs tests and throwaway
// environments; nothing survives a restart.
type MemoryStore struct {
	mtx   sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[key] = stored
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.blobs, key)
	return nil
}
