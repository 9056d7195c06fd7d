package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// Enables efficient title/description search over aggregated events from
// the ops API and ad-hoc queries.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_hot_aggr_events_text_gin
		ON hot_aggr_events USING gin(to_tsvector('simple', title || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create events text GIN index: %w", err)
	}

	return nil
}
