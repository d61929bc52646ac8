package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemesathi/internal/eligibility"
	"schemesathi/internal/platform/logger"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/requestcontext"
)

func TestService(t *testing.T) {
	now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	p := eligibility.Profile{Age: 28, AnnualIncome: 80000, Occupation: "Student"}

	t.Run("Put stamps the request clock", func(t *testing.T) {
		svc := NewService(NewInMemoryStore(), logger.NewNop())

		record, err := svc.Put(ctx, "user-1", p)
		require.NoError(t, err)
		assert.True(t, record.UpdatedAt.Equal(now))

		got, err := svc.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, p, got.Profile)
	})

	t.Run("Get without a profile is not_found", func(t *testing.T) {
		svc := NewService(NewInMemoryStore(), logger.NewNop())

		_, err := svc.Get(ctx, "user-1")
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})

	t.Run("Find treats a missing profile as nil, not an error", func(t *testing.T) {
		svc := NewService(NewInMemoryStore(), logger.NewNop())

		found, err := svc.Find(ctx, "user-1")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Find returns the stored profile", func(t *testing.T) {
		svc := NewService(NewInMemoryStore(), logger.NewNop())

		_, err := svc.Put(ctx, "user-1", p)
		require.NoError(t, err)

		found, err := svc.Find(ctx, "user-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, p, *found)
	})
}
