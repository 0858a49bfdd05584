// Package cache holds normalized analysis results keyed by a request
// fingerprint, so identical requests within a session skip the model call.
package cache

import (
	"sync"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// Store is a key-value store of analysis results. Reads never fail: a
// backing-store failure is reported as a miss. Writes overwrite.
type Store interface {
	Get(key string) (domain.AnalysisResult, bool)
	Set(key string, result domain.AnalysisResult)
}

// MemoryStore is the session-scoped default Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.AnalysisResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]domain.AnalysisResult)}
}

func (s *MemoryStore) Get(key string) (domain.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.entries[key]
	return r, ok
}

func (s *MemoryStore) Set(key string, result domain.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = result
}

// Len returns the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
