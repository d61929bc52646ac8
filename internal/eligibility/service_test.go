package eligibility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemesathi/internal/analytics"
	"schemesathi/internal/catalog"
	"schemesathi/internal/platform/logger"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/requestcontext"
)

func newTestService(t *testing.T) (*Service, *analytics.InMemorySink) {
	t.Helper()
	sink := analytics.NewInMemorySink()
	publisher := analytics.NewPublisher(sink, logger.NewNop())
	store := catalog.NewInMemoryStore(catalog.Seed())
	return NewService(store, logger.NewNop(), nil, publisher), sink
}

func TestServiceEvaluate(t *testing.T) {
	ctx := requestcontext.WithUserID(context.Background(), "user-1")

	t.Run("evaluates a known scheme", func(t *testing.T) {
		svc, sink := newTestService(t)

		eval, err := svc.Evaluate(ctx, farmerProfile(), "PM-KISAN")
		require.NoError(t, err)
		assert.True(t, eval.Eligible)

		events := sink.Events()
		require.Len(t, events, 1)
		assert.Equal(t, analytics.EventEvaluation, events[0].Type)
		assert.Equal(t, "user-1", events[0].UserID)
		assert.Equal(t, "PM-KISAN", events[0].Payload["scheme_id"])
	})

	t.Run("unknown scheme maps to not_found", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Evaluate(ctx, farmerProfile(), "NOPE")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func TestServiceRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("zero limit returns everything", func(t *testing.T) {
		svc, _ := newTestService(t)

		evals, err := svc.Recommend(ctx, farmerProfile(), 0)
		require.NoError(t, err)
		assert.Len(t, evals, len(catalog.Seed()))
	})

	t.Run("positive limit truncates", func(t *testing.T) {
		svc, _ := newTestService(t)

		evals, err := svc.Recommend(ctx, farmerProfile(), 3)
		require.NoError(t, err)
		require.Len(t, evals, 3)
		assert.Equal(t, 100, evals[0].Probability)
	})
}

func TestServiceSummary(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.Summary(context.Background(), farmerProfile())
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Seed()), summary.TotalSchemes)
	assert.Greater(t, summary.EligibleCount, 0)
	assert.Equal(t, catalog.CategoryAgriculture, summary.TopCategory)
}
