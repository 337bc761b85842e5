package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store for tests and single-instance
// development runs.
type MemoryStore struct {
	mu   sync.RWMutex
	bags map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bags: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.bags[sid]))
	for k, v := range s.bags[sid] {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, sid, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bag, ok := s.bags[sid]
	if !ok {
		bag = make(map[string]string)
		s.bags[sid] = bag
	}
	bag[key] = value
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bags, sid)
	return nil
}
