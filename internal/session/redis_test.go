package session

import (
	"context"
	"os"
	"testing"
	"time"

	"shopconsole/internal/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb, err := OpenRedis(ctx, addr)
	require.NoError(t, err)
	defer rdb.Close()

	store := NewRedisStore(rdb, time.Minute)
	id := "test-" + time.Now().Format("150405.000000")
	defer store.Delete(ctx, id)

	empty, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, State{}, empty)

	want := State{Shops: listing.State{Page: 2, Filters: "&inVacations=true"}}
	require.NoError(t, store.Save(ctx, id, want))
	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", State{Products: listing.State{Page: 3}}))
	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Products.Page)

	require.NoError(t, store.Delete(ctx, "a"))
	got, err = store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, State{}, got)
}
