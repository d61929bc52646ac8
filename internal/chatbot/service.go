package chatbot

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"schemesathi/internal/analytics"
	"schemesathi/internal/chatbot/metrics"
	"schemesathi/internal/eligibility"
	"schemesathi/pkg/requestcontext"
)

// Service classifies an utterance and assembles the reply. Classification is
// pure; the service adds observability and analytics around it.
type Service struct {
	responder *Responder
	logger    *slog.Logger
	metrics   *metrics.Metrics
	analytics *analytics.Publisher
	tracer    trace.Tracer
}

// NewService constructs the chatbot service with its dependencies.
func NewService(responder *Responder, logger *slog.Logger, m *metrics.Metrics, a *analytics.Publisher) *Service {
	return &Service{
		responder: responder,
		logger:    logger,
		metrics:   m,
		analytics: a,
		tracer:    otel.Tracer("schemesathi/chatbot"),
	}
}

// HandleMessage classifies the utterance, builds the response, and records
// the interaction. It never fails: unclassifiable input yields the unknown
// fallback response.
func (s *Service) HandleMessage(ctx context.Context, utterance string, profile *eligibility.Profile, lang string) (Classification, Response) {
	ctx, span := s.tracer.Start(ctx, "chatbot.HandleMessage")
	defer span.End()

	start := time.Now()

	cls := Classify(utterance)
	span.SetAttributes(attribute.String("chat.category", string(cls.Category)))

	resp := s.responder.Respond(ctx, cls, utterance, profile, lang)

	s.metrics.ObserveRespondLatency(time.Since(start))
	s.metrics.IncrementCategory(string(cls.Category))

	s.logger.InfoContext(ctx, "chat message handled",
		"request_id", requestcontext.RequestID(ctx),
		"category", cls.Category,
		"scheme_id", cls.SchemeID,
		"has_profile", profile != nil,
	)

	if s.analytics != nil {
		s.analytics.Emit(ctx, analytics.Event{
			Type:      analytics.EventChatMessage,
			UserID:    requestcontext.UserID(ctx),
			RequestID: requestcontext.RequestID(ctx),
			Timestamp: requestcontext.Now(ctx),
			Payload: map[string]any{
				"category":    string(cls.Category),
				"scheme_id":   cls.SchemeID,
				"has_profile": profile != nil,
			},
		})
	}

	return cls, resp
}
