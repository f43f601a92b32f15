package postgres

import (
	"context"
	"os"
	"testing"

	"shopconsole/internal/domain/journal"
)

func TestJournalRepositoryRoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	ctx := context.Background()
	pool, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer pool.Close()

	repo := NewJournalRepository(pool)
	e, err := journal.NewEntry("itest", journal.ActionDelete, journal.ResourceShop, 42, nil)
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("save: %v", err)
	}
	if e.ID == 0 {
		t.Fatal("expected id to be set")
	}
	defer pool.Exec(ctx, `DELETE FROM console_journal WHERE id = $1`, e.ID)

	entries, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := false
	for _, got := range entries {
		if got.ID == e.ID && got.Resource == journal.ResourceShop && got.ResourceID == 42 {
			found = true
		}
	}
	if !found {
		t.Fatalf("saved entry %d not listed", e.ID)
	}
}
