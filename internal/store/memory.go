package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/NQvelo/weather-app/internal/weather"
)

// ErrNotFound is returned when no snapshot is cached for a city.
var ErrNotFound = errors.New("no cached snapshot for city")

// MemoryStore is a concurrency-safe cache holding the latest snapshot
// per city. Older snapshots are overwritten; no history is kept.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]weather.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]weather.Snapshot),
	}
}

// Save replaces the cached snapshot for a city.
func (s *MemoryStore) Save(city string, snapshot weather.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(city)] = snapshot
}

// Latest returns the cached snapshot for a city.
func (s *MemoryStore) Latest(city string) (weather.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[key(city)]
	if !ok {
		return weather.Snapshot{}, ErrNotFound
	}
	return snap, nil
}

func key(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
