package catalog

import (
	"context"
	"fmt"
	"sync"

	"schemesathi/pkg/platform/sentinel"
)

// InMemoryStore holds the catalog snapshot. Replace swaps the whole snapshot
// under the write lock so readers never observe a partially updated catalog.
type InMemoryStore struct {
	mu      sync.RWMutex
	schemes []Scheme
	byID    map[string]int
}

// NewInMemoryStore constructs a store seeded with the given schemes.
func NewInMemoryStore(schemes []Scheme) *InMemoryStore {
	s := &InMemoryStore{}
	s.Replace(context.Background(), schemes)
	return s
}

// Replace atomically swaps the catalog snapshot. Catalog order of the input
// slice is preserved; it drives ranking tie-breaks.
func (s *InMemoryStore) Replace(_ context.Context, schemes []Scheme) {
	snapshot := make([]Scheme, len(schemes))
	copy(snapshot, schemes)

	byID := make(map[string]int, len(snapshot))
	for i, scheme := range snapshot {
		byID[scheme.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemes = snapshot
	s.byID = byID
}

func (s *InMemoryStore) All(_ context.Context) []Scheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Scheme, len(s.schemes))
	copy(out, s.schemes)
	return out
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (Scheme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.byID[id]; ok {
		return s.schemes[i], nil
	}
	return Scheme{}, fmt.Errorf("scheme %q not found: %w", id, sentinel.ErrNotFound)
}

func (s *InMemoryStore) ListByCategory(_ context.Context, category Category) []Scheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Scheme
	for _, scheme := range s.schemes {
		if scheme.Category == category {
			out = append(out, scheme)
		}
	}
	return out
}
