package profile

import (
	"context"
	"fmt"
	"sync"

	"schemesathi/pkg/platform/sentinel"
)

// InMemoryStore is the default profile store when no Redis is configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]Record)}
}

func (s *InMemoryStore) Put(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.UserID] = record
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, userID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[userID]
	if !ok {
		return Record{}, fmt.Errorf("profile for user %s: %w", userID, sentinel.ErrNotFound)
	}
	return record, nil
}

func (s *InMemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[userID]; !ok {
		return fmt.Errorf("profile for user %s: %w", userID, sentinel.ErrNotFound)
	}
	delete(s.records, userID)
	return nil
}
