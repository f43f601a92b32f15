package repositories

import (
	"context"

	"shopconsole/internal/domain/journal"
)

// JournalRepository defines the contract for journal data access
type JournalRepository interface {
	Save(ctx context.Context, e *journal.Entry) error
	List(ctx context.Context, limit, offset int) ([]*journal.Entry, error)
}

// NoopJournal discards entries. Used when no database is configured.
type NoopJournal struct{}

func (NoopJournal) Save(context.Context, *journal.Entry) error { return nil }

func (NoopJournal) List(context.Context, int, int) ([]*journal.Entry, error) {
	return []*journal.Entry{}, nil
}
