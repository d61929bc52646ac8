package saved

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemesathi/pkg/platform/sentinel"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Save then ListByUser", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, Record{UserID: "u1", SchemeID: "PM-KISAN", SavedAt: base}))
		require.NoError(t, store.Save(ctx, Record{UserID: "u1", SchemeID: "PM-JAY", SavedAt: base.Add(time.Hour)}))

		records, err := store.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, records, 2)
		// Most recent first.
		assert.Equal(t, "PM-JAY", records[0].SchemeID)
		assert.Equal(t, "PM-KISAN", records[1].SchemeID)
	})

	t.Run("Save is idempotent and keeps the original timestamp", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, Record{UserID: "u1", SchemeID: "PM-KISAN", SavedAt: base.Add(48 * time.Hour)}))

		records, err := store.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, base, records[1].SavedAt)
	})

	t.Run("users are isolated", func(t *testing.T) {
		records, err := store.ListByUser(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Remove drops the bookmark", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "u1", "PM-KISAN"))

		records, err := store.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "PM-JAY", records[0].SchemeID)
	})

	t.Run("Remove of missing bookmark returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, store.Remove(ctx, "u1", "PM-KISAN"), sentinel.ErrNotFound)
	})

	t.Run("timestamp ties order by scheme ID", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, Record{UserID: "u3", SchemeID: "B", SavedAt: base}))
		require.NoError(t, store.Save(ctx, Record{UserID: "u3", SchemeID: "A", SavedAt: base}))

		records, err := store.ListByUser(ctx, "u3")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "A", records[0].SchemeID)
	})
}
