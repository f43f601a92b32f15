package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Open connects to dsn, pings, and makes sure the journal table exists.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db schema: %w", err)
	}
	log.Info().Msg("journal database ready")
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS console_journal (
	id          BIGSERIAL PRIMARY KEY,
	session_id  TEXT        NOT NULL,
	action      TEXT        NOT NULL,
	resource    TEXT        NOT NULL,
	resource_id BIGINT      NOT NULL DEFAULT 0,
	outcome     TEXT        NOT NULL,
	detail      TEXT        NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_console_journal_created ON console_journal (created_at DESC);
`
