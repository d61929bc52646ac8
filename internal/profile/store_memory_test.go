package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemesathi/internal/eligibility"
	"schemesathi/pkg/platform/sentinel"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	record := Record{
		UserID:    "user-1",
		Profile:   eligibility.Profile{Age: 30, Occupation: "Farmer"},
		UpdatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	t.Run("Get before Put returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "user-1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("Put then Get round-trips", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, record))

		got, err := store.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("Put replaces the whole record", func(t *testing.T) {
		updated := record
		updated.Profile.Age = 31
		require.NoError(t, store.Put(ctx, updated))

		got, err := store.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 31, got.Profile.Age)
	})

	t.Run("users are isolated", func(t *testing.T) {
		_, err := store.Get(ctx, "user-2")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "user-1"))
		_, err := store.Get(ctx, "user-1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("Delete of missing record returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, store.Delete(ctx, "user-1"), sentinel.ErrNotFound)
	})
}
