package saved

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"schemesathi/pkg/platform/sentinel"
)

// InMemoryStore is the default bookmark store when no Postgres is configured.
type InMemoryStore struct {
	mu     sync.RWMutex
	byUser map[string]map[string]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byUser: make(map[string]map[string]Record)}
}

func (s *InMemoryStore) Save(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byUser[record.UserID]
	if !ok {
		user = make(map[string]Record)
		s.byUser[record.UserID] = user
	}
	if _, exists := user[record.SchemeID]; exists {
		return nil
	}
	user[record.SchemeID] = record
	return nil
}

func (s *InMemoryStore) Remove(_ context.Context, userID, schemeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.byUser[userID]
	if _, exists := user[schemeID]; !exists {
		return fmt.Errorf("bookmark %s for user %s: %w", schemeID, userID, sentinel.ErrNotFound)
	}
	delete(user, schemeID)
	return nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]Record, 0, len(s.byUser[userID]))
	for _, record := range s.byUser[userID] {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].SavedAt.Equal(records[j].SavedAt) {
			return records[i].SchemeID < records[j].SchemeID
		}
		return records[i].SavedAt.After(records[j].SavedAt)
	})
	return records, nil
}
