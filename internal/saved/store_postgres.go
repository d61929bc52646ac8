package saved

import (
	"context"
	"database/sql"
	"fmt"

	"schemesathi/pkg/platform/sentinel"
)

// PostgresStore persists bookmarks in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed bookmark store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Schema is the DDL for the bookmark table, applied at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS saved_schemes (
    user_id   TEXT        NOT NULL,
    scheme_id TEXT        NOT NULL,
    saved_at  TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, scheme_id)
)`

// EnsureSchema creates the bookmark table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure saved_schemes schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, record Record) error {
	const query = `
		INSERT INTO saved_schemes (user_id, scheme_id, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, scheme_id) DO NOTHING`
	if _, err := s.db.ExecContext(ctx, query, record.UserID, record.SchemeID, record.SavedAt); err != nil {
		return fmt.Errorf("save bookmark: %w", err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, userID, schemeID string) error {
	const query = `DELETE FROM saved_schemes WHERE user_id = $1 AND scheme_id = $2`
	result, err := s.db.ExecContext(ctx, query, userID, schemeID)
	if err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("bookmark %s for user %s: %w", schemeID, userID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	const query = `
		SELECT user_id, scheme_id, saved_at
		FROM saved_schemes
		WHERE user_id = $1
		ORDER BY saved_at DESC, scheme_id ASC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.UserID, &record.SchemeID, &record.SavedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return records, nil
}
