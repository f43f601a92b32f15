package listing

import (
	"context"
	"errors"
	"sync"

	"shopconsole/internal/domain/page"

	"github.com/rs/zerolog/log"
)

// ErrStale is returned when a response arrives after a newer request was
// issued. The response is dropped and the view is left untouched.
var ErrStale = errors.New("listing: stale response dropped")

// DefaultPageSize matches the grid of the console pages.
const DefaultPageSize = 9

// Source fetches one page for a request.
type Source[T any] interface {
	Fetch(ctx context.Context, req Request) (*page.Page[T], error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context, req Request) (*page.Page[T], error)

func (f SourceFunc[T]) Fetch(ctx context.Context, req Request) (*page.Page[T], error) {
	return f(ctx, req)
}

// View is what a listing page renders.
type View[T any] struct {
	Items        []T    `json:"items"`
	Count        int    `json:"count"`
	Page         int    `json:"page"`
	Empty        bool   `json:"empty"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
	Loaded       bool   `json:"loaded"`
}

// Options configure a Controller.
type Options struct {
	Name         string // used in logs
	PageSize     int
	EmptyMessage string
	Busy         *Busy
}

// Controller holds the state of one listing and turns UI events into
// backend requests. It is safe for concurrent use.
type Controller[T any] struct {
	src  Source[T]
	opts Options

	mu    sync.Mutex
	state State
	view  View[T]
	seq   uint64
}

// NewController creates a controller starting at the first page in plain mode.
func NewController[T any](src Source[T], opts Options) *Controller[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Busy == nil {
		opts.Busy = &Busy{}
	}
	if opts.Name == "" {
		opts.Name = "listing"
	}
	return &Controller[T]{src: src, opts: opts}
}

// State returns a copy of the current selections.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns a copy of the last applied view.
func (c *Controller[T]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Busy exposes the loading flag shared by this controller.
func (c *Controller[T]) Busy() *Busy { return c.opts.Busy }

// Restore replaces the selections without fetching.
func (c *Controller[T]) Restore(s State) {
	c.mu.Lock()
	if s.Page < 0 {
		s.Page = 0
	}
	c.state = s
	c.mu.Unlock()
}

// Refresh fetches with the current selections.
func (c *Controller[T]) Refresh(ctx context.Context) (View[T], error) {
	return c.apply(ctx, func(*State) {})
}

// SelectPage moves to a 1-based display page.
func (c *Controller[T]) SelectPage(ctx context.Context, displayPage int) (View[T], error) {
	return c.apply(ctx, func(s *State) {
		s.Page = displayPage - 1
		if s.Page < 0 {
			s.Page = 0
		}
	})
}

// SetSort changes the sort field and clears any active search text.
func (c *Controller[T]) SetSort(ctx context.Context, field string) (View[T], error) {
	return c.apply(ctx, func(s *State) {
		s.Sort = field
		s.Search = ""
	})
}

// SetFilters replaces the raw filter string.
func (c *Controller[T]) SetFilters(ctx context.Context, filters string) (View[T], error) {
	return c.apply(ctx, func(s *State) {
		s.Filters = filters
	})
}

// Search submits a free-text search and goes back to the first page.
func (c *Controller[T]) Search(ctx context.Context, text string) (View[T], error) {
	return c.apply(ctx, func(s *State) {
		s.Search = text
		s.Page = 0
	})
}

func (c *Controller[T]) apply(ctx context.Context, mutate func(*State)) (View[T], error) {
	c.mu.Lock()
	mutate(&c.state)
	req := c.state.Request(c.opts.PageSize)
	c.seq++
	gen := c.seq
	c.mu.Unlock()

	release := c.opts.Busy.Acquire()
	defer release()

	log.Debug().
		Str("listing", c.opts.Name).
		Str("mode", req.Mode.String()).
		Int("page", req.Page).
		Uint64("generation", gen).
		Msg("fetching listing page")

	p, err := c.src.Fetch(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Error().Err(err).Str("listing", c.opts.Name).Uint64("generation", gen).Msg("listing fetch failed")
		return c.view, err
	}
	if gen != c.seq {
		log.Debug().Str("listing", c.opts.Name).Uint64("generation", gen).Uint64("latest", c.seq).Msg("dropping stale listing response")
		return c.view, ErrStale
	}
	c.view = c.toView(p)
	return c.view, nil
}

func (c *Controller[T]) toView(p *page.Page[T]) View[T] {
	return ViewOf(p, c.opts.EmptyMessage)
}

// ViewOf maps a page envelope onto a view. An empty page yields the
// empty-state message instead of pagination data.
func ViewOf[T any](p *page.Page[T], emptyMessage string) View[T] {
	v := View[T]{
		Items:  p.Content,
		Count:  p.TotalPages,
		Page:   p.DisplayPage(),
		Loaded: true,
	}
	if v.Items == nil {
		v.Items = []T{}
	}
	if p.IsEmpty() {
		v.Empty = true
		v.EmptyMessage = emptyMessage
	}
	return v
}
