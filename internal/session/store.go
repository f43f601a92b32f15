package session

import (
	"context"
	"sync"

	"shopconsole/internal/listing"
)

// State is everything persisted for one console session.
type State struct {
	Shops      listing.State `json:"shops"`
	Products   listing.State `json:"products"`
	Categories listing.State `json:"categories"`
}

// Store persists session state. Load returns the zero State for unknown ids.
type Store interface {
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, st State) error
	Delete(ctx context.Context, id string) error
}

// StoreError wraps a failing store operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "session store " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// MemoryStore keeps state in process. Used when no redis is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]State)}
}

func (m *MemoryStore) Load(_ context.Context, id string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[id], nil
}

func (m *MemoryStore) Save(_ context.Context, id string, st State) error {
	m.mu.Lock()
	m.data[id] = st
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
	return nil
}
