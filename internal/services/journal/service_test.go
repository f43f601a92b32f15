package journal

import (
	"context"
	"errors"
	"testing"

	"shopconsole/internal/domain/journal"
)

type fakeRepo struct {
	saved     []*journal.Entry
	saveErr   error
	listErr   error
	gotLimit  int
	gotOffset int
}

func (f *fakeRepo) Save(_ context.Context, e *journal.Entry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	e.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, e)
	return nil
}

func (f *fakeRepo) List(_ context.Context, limit, offset int) ([]*journal.Entry, error) {
	f.gotLimit, f.gotOffset = limit, offset
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.saved, nil
}

func TestListRequestValidate(t *testing.T) {
	tests := []struct {
		in, want ListRequest
	}{
		{ListRequest{}, ListRequest{Limit: 50}},
		{ListRequest{Limit: 500, Offset: -1}, ListRequest{Limit: 200}},
		{ListRequest{Limit: 10, Offset: 20}, ListRequest{Limit: 10, Offset: 20}},
	}
	for _, tt := range tests {
		got := tt.in
		got.Validate()
		if got != tt.want {
			t.Errorf("Validate(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRecordAndList(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	svc.Record(ctx, "s1", journal.ActionDelete, journal.ResourceProduct, 4, nil)
	svc.Record(ctx, "s1", journal.ActionCreate, journal.ResourceShop, 0, errors.New("status 400"))

	resp, err := svc.List(ctx, ListRequest{Limit: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotLimit != 200 || resp.Limit != 200 {
		t.Fatalf("limit not capped: repo=%d resp=%d", repo.gotLimit, resp.Limit)
	}
	if len(resp.Entries) != 2 || resp.Entries[1].Outcome != journal.OutcomeFailure {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}
}

func TestRecordSwallowsRepoErrors(t *testing.T) {
	svc := NewService(&fakeRepo{saveErr: errors.New("db down")})
	svc.Record(context.Background(), "s1", journal.ActionEdit, journal.ResourceCategory, 2, nil)
}

func TestListWrapsErrors(t *testing.T) {
	cause := errors.New("db down")
	svc := NewService(&fakeRepo{listErr: cause})

	_, err := svc.List(context.Background(), ListRequest{})
	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) || !errors.Is(err, cause) {
		t.Fatalf("expected wrapped ServiceError, got %v", err)
	}
}

func TestNilRepoIsNoop(t *testing.T) {
	svc := NewService(nil)
	svc.Record(context.Background(), "s1", journal.ActionCreate, journal.ResourceShop, 1, nil)
	resp, err := svc.List(context.Background(), ListRequest{})
	if err != nil || len(resp.Entries) != 0 {
		t.Fatalf("expected empty noop listing, got %v %v", resp, err)
	}
}
