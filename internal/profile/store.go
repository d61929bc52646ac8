package profile

import "context"

// Store persists user profiles keyed by user ID.
// Implementations return sentinel.ErrNotFound when no profile exists.
type Store interface {
	Put(ctx context.Context, record Record) error
	Get(ctx context.Context, userID string) (Record, error)
	Delete(ctx context.Context, userID string) error
}
