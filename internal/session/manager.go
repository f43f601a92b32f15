package session

import (
	"context"
	"sync"
	"time"

	"shopconsole/internal/domain/category"
	"shopconsole/internal/domain/product"
	"shopconsole/internal/domain/shop"
	"shopconsole/internal/listing"
)

// Sources are the backend listings a session drives.
type Sources struct {
	Shops      listing.Source[shop.Shop]
	Products   listing.Source[product.Product]
	Categories listing.Source[category.Category]
}

// Options configure a Manager.
type Options struct {
	PageSize        int
	IdleTTL         time.Duration
	ShopsEmpty      string
	ProductsEmpty   string
	CategoriesEmpty string
}

// Session is the live listing state of one browser session.
type Session struct {
	ID         string
	Shops      *listing.Controller[shop.Shop]
	Products   *listing.Controller[product.Product]
	Categories *listing.Controller[category.Category]

	lastSeen time.Time
}

// State snapshots the selections of every listing.
func (s *Session) State() State {
	return State{
		Shops:      s.Shops.State(),
		Products:   s.Products.State(),
		Categories: s.Categories.State(),
	}
}

// Manager keeps live sessions in memory and persists their state in a Store.
type Manager struct {
	store   Store
	sources Sources
	opts    Options
	busy    *listing.Busy
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(store Store, sources Sources, opts Options) *Manager {
	if opts.PageSize <= 0 {
		opts.PageSize = listing.DefaultPageSize
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 30 * time.Minute
	}
	return &Manager{
		store:    store,
		sources:  sources,
		opts:     opts,
		busy:     &listing.Busy{},
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Busy is the loading flag shared by every listing of every session.
func (m *Manager) Busy() *listing.Busy { return m.busy }

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Get returns the live session for id, restoring it from the store when it
// is not in memory.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[id]; ok {
		s.lastSeen = m.now()
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	st, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	fresh := m.newSession(id, st)

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.lastSeen = m.now()
		return s, nil
	}
	fresh.lastSeen = m.now()
	m.sessions[id] = fresh
	return fresh, nil
}

// Save persists the current selections of s.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.store.Save(ctx, s.ID, s.State())
}

// EvictIdle drops sessions not seen for longer than the idle TTL. Their
// state stays in the store.
func (m *Manager) EvictIdle() int {
	cutoff := m.now().Add(-m.opts.IdleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *Manager) newSession(id string, st State) *Session {
	s := &Session{
		ID: id,
		Shops: listing.NewController(m.sources.Shops, listing.Options{
			Name: "shops", PageSize: m.opts.PageSize, EmptyMessage: m.opts.ShopsEmpty, Busy: m.busy,
		}),
		Products: listing.NewController(m.sources.Products, listing.Options{
			Name: "products", PageSize: m.opts.PageSize, EmptyMessage: m.opts.ProductsEmpty, Busy: m.busy,
		}),
		Categories: listing.NewController(m.sources.Categories, listing.Options{
			Name: "categories", PageSize: m.opts.PageSize, EmptyMessage: m.opts.CategoriesEmpty, Busy: m.busy,
		}),
	}
	s.Shops.Restore(st.Shops)
	s.Products.Restore(st.Products)
	s.Categories.Restore(st.Categories)
	return s
}
