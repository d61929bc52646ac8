package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"schemesathi/internal/saved"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/platform/httputil"
	"schemesathi/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the bookmark operations the handler exposes.
type Service interface {
	Save(ctx context.Context, userID, schemeID string) error
	Remove(ctx context.Context, userID, schemeID string) error
	List(ctx context.Context, userID string) ([]saved.Item, error)
}

// Handler serves the bookmark endpoints. All routes require authentication.
type Handler struct {
	logger    *slog.Logger
	bookmarks Service
}

// New creates a new bookmark Handler.
func New(bookmarks Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		bookmarks: bookmarks,
	}
}

// Register mounts the bookmark routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/schemes/{schemeID}/save", h.handleSave)
	r.Delete("/v1/schemes/{schemeID}/save", h.handleRemove)
	r.Get("/v1/me/saved", h.handleList)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.requireUser(w, ctx, requestID)
	if !ok {
		return
	}

	schemeID := chi.URLParam(r, "schemeID")
	if err := h.bookmarks.Save(ctx, userID, schemeID); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "bookmark save failed",
			"request_id", requestID,
			"scheme_id", schemeID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.requireUser(w, ctx, requestID)
	if !ok {
		return
	}

	schemeID := chi.URLParam(r, "schemeID")
	if err := h.bookmarks.Remove(ctx, userID, schemeID); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "bookmark remove failed",
			"request_id", requestID,
			"scheme_id", schemeID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.requireUser(w, ctx, requestID)
	if !ok {
		return
	}

	items, err := h.bookmarks.List(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "bookmark list failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ListResponse{Saved: items})
}

// ListResponse wraps the caller's bookmarks.
type ListResponse struct {
	Saved []saved.Item `json:"saved"`
}

func (h *Handler) requireUser(w http.ResponseWriter, ctx context.Context, requestID string) (string, bool) {
	userID := requestcontext.UserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "user ID missing from context despite auth middleware",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return "", false
	}
	return userID, true
}
