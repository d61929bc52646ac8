package saved

import "context"

// Store persists scheme bookmarks. Save is idempotent: bookmarking the same
// scheme twice keeps the original record. Remove returns
// sentinel.ErrNotFound when no bookmark exists.
type Store interface {
	Save(ctx context.Context, record Record) error
	Remove(ctx context.Context, userID, schemeID string) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}
