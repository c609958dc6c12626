package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store wraps the Postgres connection for roster and escalation data.
type Store struct {
	db *sql.DB
}

// New wraps an existing connection. Tests hand in a sqlmock db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to Postgres through the pgx stdlib driver and verifies the
// connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema bootstraps the tables. The advisory lock serializes DDL
// across concurrently starting instances.
func (s *Store) EnsureSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS legislators (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	constituency TEXT NOT NULL,
	party TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS unmatched_speakers (
	id UUID PRIMARY KEY,
	document_id UUID NOT NULL,
	name TEXT NOT NULL,
	constituency TEXT NOT NULL DEFAULT '',
	reason TEXT NOT NULL,
	raw_header TEXT NOT NULL DEFAULT '',
	is_mapped BOOLEAN NOT NULL DEFAULT FALSE,
	mapped_to UUID REFERENCES legislators(id),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_unmatched_speakers_document ON unmatched_speakers(document_id);
CREATE INDEX IF NOT EXISTS idx_unmatched_speakers_unmapped ON unmatched_speakers(is_mapped) WHERE NOT is_mapped;

CREATE TABLE IF NOT EXISTS speaker_mappings (
	id UUID PRIMARY KEY,
	unmatched_speaker_id UUID NOT NULL REFERENCES unmatched_speakers(id),
	legislator_id UUID NOT NULL REFERENCES legislators(id),
	confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
