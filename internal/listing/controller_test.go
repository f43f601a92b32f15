package listing

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shopconsole/internal/domain/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingSource struct {
	mu   sync.Mutex
	reqs []Request
	resp func(Request) (*page.Page[int], error)
}

func (s *recordingSource) Fetch(_ context.Context, req Request) (*page.Page[int], error) {
	s.mu.Lock()
	s.reqs = append(s.reqs, req)
	s.mu.Unlock()
	return s.resp(req)
}

func (s *recordingSource) last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reqs[len(s.reqs)-1]
}

func pageOf(n, totalPages, pageNumber int) *page.Page[int] {
	content := make([]int, n)
	for i := range content {
		content[i] = i
	}
	return &page.Page[int]{Content: content, TotalPages: totalPages, Pageable: page.Pageable{PageNumber: pageNumber}}
}

func TestControllerPlainScenario(t *testing.T) {
	src := &recordingSource{resp: func(Request) (*page.Page[int], error) { return pageOf(9, 3, 0), nil }}
	c := NewController[int](src, Options{PageSize: 9, EmptyMessage: "no shop"})

	view, err := c.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 3, view.Count)
	assert.Len(t, view.Items, 9)
	assert.False(t, view.Empty)
	assert.Equal(t, "/shops?page=0&size=9", src.last().URL())
}

func TestControllerDisplayPageFollowsResponse(t *testing.T) {
	src := &recordingSource{resp: func(req Request) (*page.Page[int], error) { return pageOf(2, 5, req.Page), nil }}
	c := NewController[int](src, Options{})

	view, err := c.SelectPage(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 3, src.last().Page)
	assert.Equal(t, 4, view.Page)

	_, err = c.SelectPage(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, src.last().Page)
}

func TestControllerEmptyState(t *testing.T) {
	src := &recordingSource{resp: func(Request) (*page.Page[int], error) { return &page.Page[int]{}, nil }}
	c := NewController[int](src, Options{EmptyMessage: "Aucune boutique correspondante"})

	view, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Equal(t, "Aucune boutique correspondante", view.EmptyMessage)
	assert.NotNil(t, view.Items)
}

func TestControllerSortClearsSearch(t *testing.T) {
	src := &recordingSource{resp: func(Request) (*page.Page[int], error) { return pageOf(1, 1, 0), nil }}
	c := NewController[int](src, Options{})
	ctx := context.Background()

	_, err := c.Search(ctx, "bio")
	require.NoError(t, err)
	assert.Equal(t, ModeSearched, src.last().Mode)

	_, err = c.SetSort(ctx, "name")
	require.NoError(t, err)
	assert.Equal(t, "", c.State().Search)
	assert.Equal(t, ModeSorted, src.last().Mode)
	assert.Equal(t, "name", src.last().Sort)
}

func TestControllerSearchResetsPage(t *testing.T) {
	src := &recordingSource{resp: func(req Request) (*page.Page[int], error) { return pageOf(1, 4, req.Page), nil }}
	c := NewController[int](src, Options{})
	ctx := context.Background()

	_, err := c.SelectPage(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 2, c.State().Page)

	view, err := c.Search(ctx, "épicerie")
	require.NoError(t, err)
	assert.Equal(t, 0, c.State().Page)
	assert.Equal(t, 0, src.last().Search.Page)
	assert.Equal(t, 1, view.Page)
}

func TestControllerSearchUsesFilterParams(t *testing.T) {
	src := &recordingSource{resp: func(Request) (*page.Page[int], error) { return pageOf(1, 1, 0), nil }}
	c := NewController[int](src, Options{})
	ctx := context.Background()

	_, err := c.SetFilters(ctx, "&inVacations=true&createdBefore=2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, ModeFiltered, src.last().Mode)

	_, err = c.Search(ctx, "bio")
	require.NoError(t, err)
	req := src.last()
	require.NotNil(t, req.Search.InVacations)
	assert.True(t, *req.Search.InVacations)
	assert.Equal(t, "2024-05-01", req.Search.CreatedBefore)
}

func TestControllerFailureKeepsViewAndClearsBusy(t *testing.T) {
	fail := false
	src := &recordingSource{resp: func(Request) (*page.Page[int], error) {
		if fail {
			return nil, errors.New("boom")
		}
		return pageOf(3, 2, 0), nil
	}}
	c := NewController[int](src, Options{})
	ctx := context.Background()

	before, err := c.Refresh(ctx)
	require.NoError(t, err)

	fail = true
	after, err := c.SelectPage(ctx, 2)
	require.Error(t, err)
	assert.Equal(t, before, after)
	assert.False(t, c.Busy().Loading())
}

func TestControllerDropsStaleResponse(t *testing.T) {
	defer goleak.VerifyNone(t)

	slowStarted := make(chan struct{})
	unblock := make(chan struct{})
	src := &recordingSource{resp: func(req Request) (*page.Page[int], error) {
		if req.Page == 0 {
			close(slowStarted)
			<-unblock
			return pageOf(1, 10, 0), nil
		}
		return pageOf(2, 10, req.Page), nil
	}}
	c := NewController[int](src, Options{})
	ctx := context.Background()

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = c.Refresh(ctx)
	}()

	<-slowStarted
	assert.True(t, c.Busy().Loading())

	view, err := c.SelectPage(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Page)
	assert.True(t, c.Busy().Loading(), "slow request still in flight")

	close(unblock)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrStale)
	assert.Equal(t, 5, c.View().Page)
	assert.Equal(t, int64(0), c.Busy().InFlight())
}

func TestBusyReleaseIdempotent(t *testing.T) {
	var b Busy
	r1 := b.Acquire()
	r2 := b.Acquire()
	r1()
	r1()
	assert.True(t, b.Loading())
	r2()
	assert.False(t, b.Loading())
}

func TestControllerRestore(t *testing.T) {
	src := &recordingSource{resp: func(Request) (*page.Page[int], error) { return pageOf(1, 1, 0), nil }}
	c := NewController[int](src, Options{})

	c.Restore(State{Page: -1, Sort: "nbProducts"})
	_, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/shops?page=0&size=9&sortBy=nbProducts", src.last().URL())
}
