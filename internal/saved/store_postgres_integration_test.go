//go:build integration

package saved_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"schemesathi/internal/saved"
	"schemesathi/pkg/platform/sentinel"
	"schemesathi/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *saved.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = saved.NewPostgres(s.pg.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	_, err := s.pg.DB.ExecContext(context.Background(), "TRUNCATE saved_schemes")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestSaveAndList() {
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Save(ctx, saved.Record{UserID: "u1", SchemeID: "PM-KISAN", SavedAt: base}))
	s.Require().NoError(s.store.Save(ctx, saved.Record{UserID: "u1", SchemeID: "PM-JAY", SavedAt: base.Add(time.Hour)}))
	s.Require().NoError(s.store.Save(ctx, saved.Record{UserID: "u2", SchemeID: "APY", SavedAt: base}))

	records, err := s.store.ListByUser(ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("PM-JAY", records[0].SchemeID)
	s.Equal("PM-KISAN", records[1].SchemeID)
}

func (s *PostgresStoreSuite) TestSaveIsIdempotent() {
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Save(ctx, saved.Record{UserID: "u1", SchemeID: "PM-KISAN", SavedAt: base}))
	s.Require().NoError(s.store.Save(ctx, saved.Record{UserID: "u1", SchemeID: "PM-KISAN", SavedAt: base.Add(time.Hour)}))

	records, err := s.store.ListByUser(ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.True(records[0].SavedAt.Equal(base), "original timestamp must survive a re-save")
}

func (s *PostgresStoreSuite) TestRemove() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, saved.Record{UserID: "u1", SchemeID: "PM-KISAN", SavedAt: time.Now().UTC()}))
	s.Require().NoError(s.store.Remove(ctx, "u1", "PM-KISAN"))

	records, err := s.store.ListByUser(ctx, "u1")
	s.Require().NoError(err)
	s.Empty(records)

	s.ErrorIs(s.store.Remove(ctx, "u1", "PM-KISAN"), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListEmpty() {
	records, err := s.store.ListByUser(context.Background(), "nobody")
	s.Require().NoError(err)
	s.Empty(records)
}
