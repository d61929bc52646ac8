package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	eligibilityHandler "schemesathi/internal/eligibility/handler"

	"schemesathi/internal/eligibility"
	"schemesathi/internal/profile"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/platform/httputil"
	"schemesathi/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the profile operations the handler exposes.
type Service interface {
	Put(ctx context.Context, userID string, p eligibility.Profile) (*profile.Record, error)
	Get(ctx context.Context, userID string) (*profile.Record, error)
}

// Handler serves the profile endpoints. All routes require authentication.
type Handler struct {
	logger   *slog.Logger
	profiles Service
}

// New creates a new profile Handler.
func New(profiles Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		profiles: profiles,
	}
}

// Register mounts the profile routes.
func (h *Handler) Register(r chi.Router) {
	r.Put("/v1/profile", h.handlePut)
	r.Get("/v1/profile", h.handleGet)
}

// PutRequest replaces the caller's stored profile.
type PutRequest struct {
	Profile eligibility.Profile `json:"profile"`
}

func (r *PutRequest) Validate() error {
	return eligibilityHandler.ValidateProfile(&r.Profile)
}

func (h *Handler) handlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID := requestcontext.UserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "user ID missing from context despite auth middleware",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[PutRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record, err := h.profiles.Put(ctx, userID, req.Profile)
	if err != nil {
		h.logger.ErrorContext(ctx, "profile update failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID := requestcontext.UserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "user ID missing from context despite auth middleware",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	record, err := h.profiles.Get(ctx, userID)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "profile read failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, record)
}
