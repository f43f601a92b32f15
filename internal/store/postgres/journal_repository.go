package postgres

import (
	"context"

	"shopconsole/internal/domain/journal"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// journalRepository implements JournalRepository on top of pgx
type journalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *pgxpool.Pool) *journalRepository {
	return &journalRepository{db: db}
}

// Save inserts an entry and fills its ID
func (r *journalRepository) Save(ctx context.Context, e *journal.Entry) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO console_journal (session_id, action, resource, resource_id, outcome, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		e.SessionID, string(e.Action), string(e.Resource), e.ResourceID, string(e.Outcome), e.Detail, e.CreatedAt,
	).Scan(&e.ID)
}

// List returns the newest entries first
func (r *journalRepository) List(ctx context.Context, limit, offset int) ([]*journal.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, action, resource, resource_id, outcome, detail, created_at
		FROM console_journal
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

func (r *journalRepository) scanEntries(rows pgx.Rows) ([]*journal.Entry, error) {
	entries := []*journal.Entry{}
	for rows.Next() {
		var (
			e                         journal.Entry
			action, resource, outcome string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &action, &resource, &e.ResourceID, &outcome, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Action = journal.Action(action)
		e.Resource = journal.Resource(resource)
		e.Outcome = journal.Outcome(outcome)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
