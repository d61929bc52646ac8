package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"schemesathi/internal/eligibility"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/platform/httputil"
	"schemesathi/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the eligibility operations the handler exposes.
type Service interface {
	Evaluate(ctx context.Context, profile eligibility.Profile, schemeID string) (*eligibility.Evaluation, error)
	Recommend(ctx context.Context, profile eligibility.Profile, limit int) ([]eligibility.Evaluation, error)
	Summary(ctx context.Context, profile eligibility.Profile) (*eligibility.Summary, error)
}

// Handler serves the eligibility endpoints.
type Handler struct {
	logger      *slog.Logger
	eligibility Service
}

// New creates a new eligibility Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:      logger,
		eligibility: service,
	}
}

// Register mounts the eligibility routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/eligibility/evaluate", h.handleEvaluate)
	r.Post("/v1/recommendations", h.handleRecommend)
	r.Post("/v1/recommendations/summary", h.handleSummary)
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	eval, err := h.eligibility.Evaluate(ctx, req.Profile, req.SchemeID)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "evaluation failed",
			"request_id", requestID,
			"scheme_id", req.SchemeID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "evaluation failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, eval)
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RecommendRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	evals, err := h.eligibility.Recommend(ctx, req.Profile, req.Limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "recommendation failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "recommendation failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, RecommendResponse{Recommendations: evals})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SummaryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	summary, err := h.eligibility.Summary(ctx, req.Profile)
	if err != nil {
		h.logger.ErrorContext(ctx, "summary failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "summary failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, summary)
}
