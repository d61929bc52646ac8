package profile

import (
	"context"
	"errors"
	"log/slog"

	"schemesathi/internal/eligibility"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/platform/sentinel"
	"schemesathi/pkg/requestcontext"
)

// Service mediates profile reads and writes between handlers and the store.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Put replaces the caller's profile. The write timestamp comes from the
// request clock so handler tests stay deterministic.
func (s *Service) Put(ctx context.Context, userID string, p eligibility.Profile) (*Record, error) {
	record := Record{
		UserID:    userID,
		Profile:   p,
		UpdatedAt: requestcontext.Now(ctx),
	}

	if err := s.store.Put(ctx, record); err != nil {
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(dErrors.CodeUnavailable, "profile store unavailable", err)
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "profile write failed", err)
	}

	s.logger.InfoContext(ctx, "profile updated",
		"request_id", requestcontext.RequestID(ctx),
		"user_id", userID,
	)

	return &record, nil
}

// Get returns the caller's stored profile.
func (s *Service) Get(ctx context.Context, userID string) (*Record, error) {
	record, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no profile stored")
		}
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(dErrors.CodeUnavailable, "profile store unavailable", err)
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "profile read failed", err)
	}
	return &record, nil
}

// Find returns the caller's profile, or nil when none is stored. Used by
// endpoints where a missing profile is an expected state, not an error.
func (s *Service) Find(ctx context.Context, userID string) (*eligibility.Profile, error) {
	record, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, sentinel.ErrUnavailable) {
			return nil, dErrors.Wrap(dErrors.CodeUnavailable, "profile store unavailable", err)
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "profile read failed", err)
	}
	return &record.Profile, nil
}
