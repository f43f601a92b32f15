package journal

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewEntryOutcome(t *testing.T) {
	ok, err := NewEntry(" s1 ", ActionDelete, ResourceProduct, 4, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.Outcome != OutcomeSuccess || ok.SessionID != "s1" || ok.Detail != "" {
		t.Fatalf("unexpected entry: %+v", ok)
	}

	failed, err := NewEntry("s1", ActionDelete, ResourceProduct, 4, errors.New(strings.Repeat("x", 600)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed.Outcome != OutcomeFailure || len(failed.Detail) != maxDetail {
		t.Fatalf("unexpected failure entry: outcome=%s len=%d", failed.Outcome, len(failed.Detail))
	}
}

func TestNewEntryRequiresActionAndResource(t *testing.T) {
	if _, err := NewEntry("s1", "", ResourceShop, 0, nil); err == nil {
		t.Fatal("expected error for missing action")
	}
	if _, err := NewEntry("s1", ActionCreate, "", 0, nil); err == nil {
		t.Fatal("expected error for missing resource")
	}
}

func TestNewEntryDetailKeepsRunesWhole(t *testing.T) {
	cause := errors.New(strings.Repeat("a", maxDetail-1) + "é boutique fermée")
	e, err := NewEntry("s1", ActionEdit, ResourceShop, 7, cause)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(e.Detail) {
		t.Fatalf("detail is not valid UTF-8: %q", e.Detail[len(e.Detail)-4:])
	}
	if len(e.Detail) != maxDetail-1 {
		t.Fatalf("expected cut before the split rune, got len=%d", len(e.Detail))
	}
}
