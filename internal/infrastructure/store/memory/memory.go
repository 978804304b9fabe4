// Package memory provides an in-process key-value store used by tests
// and the standalone demo backend.
package memory

import (
	"context"
	"sync"
)

// Store keeps values in a mutex-guarded map. Values are copied on the
// way in and out so callers cannot alias the stored slices.
type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func New() *Store {
	return &Store{m: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (s *Store) Set(_ context.Context, key string, raw []byte) error {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.mu.Lock()
	s.m[key] = cp
	s.mu.Unlock()
	return nil
}
