package eligibility

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"schemesathi/internal/analytics"
	"schemesathi/internal/catalog"
	"schemesathi/internal/eligibility/metrics"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/platform/sentinel"
	"schemesathi/pkg/requestcontext"
)

// Service wraps the pure evaluator and ranker with catalog access,
// observability, and analytics. All decision logic stays in the pure
// functions; the service only orchestrates.
type Service struct {
	catalog   catalog.Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
	analytics *analytics.Publisher
	tracer    trace.Tracer
}

// NewService constructs the eligibility service with its dependencies.
func NewService(store catalog.Store, logger *slog.Logger, m *metrics.Metrics, a *analytics.Publisher) *Service {
	return &Service{
		catalog:   store,
		logger:    logger,
		metrics:   m,
		analytics: a,
		tracer:    otel.Tracer("schemesathi/eligibility"),
	}
}

// Evaluate scores the profile against a single scheme.
func (s *Service) Evaluate(ctx context.Context, profile Profile, schemeID string) (*Evaluation, error) {
	ctx, span := s.tracer.Start(ctx, "eligibility.Evaluate",
		trace.WithAttributes(attribute.String("scheme.id", schemeID)))
	defer span.End()

	start := time.Now()

	scheme, err := s.catalog.FindByID(ctx, schemeID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "unknown scheme: "+schemeID)
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "catalog lookup failed", err)
	}

	eval := Evaluate(profile, scheme)

	s.metrics.ObserveEvaluateLatency(time.Since(start))
	s.metrics.IncrementOutcome(outcomeLabel(eval))

	s.emit(ctx, analytics.EventEvaluation, map[string]any{
		"scheme_id":   schemeID,
		"eligible":    eval.Eligible,
		"probability": eval.Probability,
	})

	return &eval, nil
}

// Recommend ranks the full catalog for the profile. A limit of 0 returns
// everything; a positive limit truncates to the top-N window.
func (s *Service) Recommend(ctx context.Context, profile Profile, limit int) ([]Evaluation, error) {
	ctx, span := s.tracer.Start(ctx, "eligibility.Recommend")
	defer span.End()

	start := time.Now()

	evals := Rank(profile, s.catalog.All(ctx))
	if limit > 0 && len(evals) > limit {
		evals = evals[:limit]
	}

	s.metrics.ObserveRankLatency(time.Since(start))

	s.emit(ctx, analytics.EventRecommendation, map[string]any{
		"returned": len(evals),
	})

	return evals, nil
}

// Summary derives the aggregate recommendation statistics for the profile.
// An empty catalog produces the zero-valued summary, never an error.
func (s *Service) Summary(ctx context.Context, profile Profile) (*Summary, error) {
	ctx, span := s.tracer.Start(ctx, "eligibility.Summary")
	defer span.End()

	start := time.Now()
	summary := Summarize(profile, s.catalog.All(ctx))
	s.metrics.ObserveRankLatency(time.Since(start))

	s.logger.InfoContext(ctx, "recommendation summary computed",
		"request_id", requestcontext.RequestID(ctx),
		"total_schemes", summary.TotalSchemes,
		"eligible_count", summary.EligibleCount,
		"top_category", summary.TopCategory,
	)

	return &summary, nil
}

// emit publishes an analytics event; analytics is fail-open and optional.
func (s *Service) emit(ctx context.Context, eventType analytics.EventType, payload map[string]any) {
	if s.analytics == nil {
		return
	}
	s.analytics.Emit(ctx, analytics.Event{
		Type:      eventType,
		UserID:    requestcontext.UserID(ctx),
		RequestID: requestcontext.RequestID(ctx),
		Timestamp: requestcontext.Now(ctx),
		Payload:   payload,
	})
}

func outcomeLabel(eval Evaluation) string {
	switch {
	case eval.Eligible:
		return "eligible"
	case eval.Probability > 50:
		return "partial"
	default:
		return "ineligible"
	}
}
