package saved

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"schemesathi/internal/analytics"
	"schemesathi/internal/catalog"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/platform/sentinel"
	"schemesathi/pkg/requestcontext"
)

// Item is one bookmark joined with its catalog scheme.
type Item struct {
	Scheme  catalog.Scheme `json:"scheme"`
	SavedAt time.Time      `json:"saved_at"`
}

// Service manages scheme bookmarks. Bookmarks only ever reference schemes
// that exist in the catalog at save time.
type Service struct {
	store     Store
	catalog   catalog.Store
	logger    *slog.Logger
	analytics *analytics.Publisher
}

func NewService(store Store, catalogStore catalog.Store, logger *slog.Logger, a *analytics.Publisher) *Service {
	return &Service{
		store:     store,
		catalog:   catalogStore,
		logger:    logger,
		analytics: a,
	}
}

// Save bookmarks a scheme for the user. Saving an already-bookmarked scheme
// succeeds without changing the original record.
func (s *Service) Save(ctx context.Context, userID, schemeID string) error {
	if _, err := s.catalog.FindByID(ctx, schemeID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "unknown scheme: "+schemeID)
		}
		return dErrors.Wrap(dErrors.CodeInternal, "catalog lookup failed", err)
	}

	record := Record{
		UserID:   userID,
		SchemeID: schemeID,
		SavedAt:  requestcontext.Now(ctx),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "bookmark write failed", err)
	}

	s.emit(ctx, analytics.EventSchemeSaved, schemeID)
	return nil
}

// Remove drops a bookmark.
func (s *Service) Remove(ctx context.Context, userID, schemeID string) error {
	if err := s.store.Remove(ctx, userID, schemeID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "scheme not saved: "+schemeID)
		}
		return dErrors.Wrap(dErrors.CodeInternal, "bookmark delete failed", err)
	}

	s.emit(ctx, analytics.EventSchemeUnsaved, schemeID)
	return nil
}

// List returns the user's bookmarks joined with the catalog, most recent
// first. Bookmarks whose scheme has left the catalog are skipped.
func (s *Service) List(ctx context.Context, userID string) ([]Item, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "bookmark read failed", err)
	}

	items := make([]Item, 0, len(records))
	for _, record := range records {
		scheme, err := s.catalog.FindByID(ctx, record.SchemeID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				continue
			}
			return nil, dErrors.Wrap(dErrors.CodeInternal, "catalog lookup failed", err)
		}
		items = append(items, Item{
			Scheme:  scheme,
			SavedAt: record.SavedAt,
		})
	}
	return items, nil
}

func (s *Service) emit(ctx context.Context, eventType analytics.EventType, schemeID string) {
	if s.analytics == nil {
		return
	}
	s.analytics.Emit(ctx, analytics.Event{
		Type:      eventType,
		UserID:    requestcontext.UserID(ctx),
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx),
		Payload:   map[string]any{"scheme_id": schemeID},
	})
}
