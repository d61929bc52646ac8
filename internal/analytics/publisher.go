package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sink receives analytics events. Implementations: in-memory (dev/tests) and
// Kafka (production dashboards).
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher emits analytics events with fail-open semantics: a sink failure is
// logged and dropped, never propagated to the business operation.
type Publisher struct {
	sink   Sink
	logger *slog.Logger
}

// NewPublisher constructs a publisher over the given sink.
func NewPublisher(sink Sink, logger *slog.Logger) *Publisher {
	return &Publisher{sink: sink, logger: logger}
}

// Emit stamps and appends the event. Safe to call on a nil publisher.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil || p.sink == nil {
		return
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := p.sink.Append(ctx, event); err != nil {
		p.logger.WarnContext(ctx, "analytics event dropped",
			"type", event.Type,
			"error", err,
		)
	}
}

// InMemorySink buffers events in memory for tests and local development.
type InMemorySink struct {
	mu     sync.RWMutex
	events []Event
}

// NewInMemorySink constructs an empty in-memory sink.
func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

func (s *InMemorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *InMemorySink) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
