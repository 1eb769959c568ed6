package orderstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

// PostgresStore keeps section order in a single Postgres table, one row per
// section. Saves are upserts, so overwriting the same order is a no-op at the
// database level.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres opens a pool against databaseURL, verifies connectivity,
// and ensures the section_orders table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS section_orders (
			section    TEXT PRIMARY KEY,
			item_ids   TEXT[] NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	)
	if err != nil {
		return fmt.Errorf("failed to create section_orders table: %w", err)
	}
	return nil
}

// Load returns the stored order for every section that has one.
func (s *PostgresStore) Load(ctx context.Context) (map[types.SectionName][]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT section, item_ids FROM section_orders`)
	if err != nil {
		return nil, fmt.Errorf("failed to load section orders: %w", err)
	}
	defer rows.Close()

	out := make(map[types.SectionName][]string)
	for rows.Next() {
		var section string
		var ids []string
		if err := rows.Scan(&section, &ids); err != nil {
			return nil, fmt.Errorf("failed to scan section order: %w", err)
		}
		out[types.SectionName(section)] = ids
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read section orders: %w", err)
	}
	return out, nil
}

// Save upserts each section in the patch.
func (s *PostgresStore) Save(ctx context.Context, patch map[types.SectionName][]string) error {
	for section, ids := range patch {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO section_orders (section, item_ids, updated_at)
			 VALUES ($1, $2, NOW())
			 ON CONFLICT (section)
			 DO UPDATE SET item_ids = EXCLUDED.item_ids, updated_at = NOW()`,
			string(section), ids,
		)
		if err != nil {
			return fmt.Errorf("failed to save order for section %s: %w", section, err)
		}
	}
	return nil
}
