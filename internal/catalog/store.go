package catalog

import "context"

// Store is interface-driven to keep the decision core testable and to allow
// swapping the in-memory snapshot for external persistence without rewiring
// business code.
//
// Error Contract:
// - FindByID returns an error wrapping sentinel.ErrNotFound for unknown IDs.
// - All and ListByCategory never fail; an empty catalog is a valid state.
type Store interface {
	// All returns every scheme in stable catalog order.
	All(ctx context.Context) []Scheme
	// FindByID returns the scheme with the given identifier.
	FindByID(ctx context.Context, id string) (Scheme, error)
	// ListByCategory returns schemes tagged with the category, in catalog order.
	ListByCategory(ctx context.Context, category Category) []Scheme
}
