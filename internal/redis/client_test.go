package redis

import (
	"context"
	"testing"

	ierr "glass_office/internal/errors"
	"glass_office/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewWithClient(rdb, "test:"), mr
}

func TestClient_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestClient(t)

	require.NoError(t, c.Set(ctx, store.Orders, "order_1", []byte(`{"orderNumber":"o1000"}`)))

	raw, err := c.Get(ctx, store.Orders, "order_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderNumber":"o1000"}`, string(raw))

	// collections live in prefixed hashes
	assert.Equal(t, `{"orderNumber":"o1000"}`, mr.HGet("test:orders", "order_1"))

	require.NoError(t, c.Delete(ctx, store.Orders, "order_1"))
	_, err = c.Get(ctx, store.Orders, "order_1")
	assert.True(t, ierr.IsNotFound(err))
}

func TestClient_ListIsPerCollection(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	require.NoError(t, c.Set(ctx, store.Orders, "b", []byte(`{}`)))
	require.NoError(t, c.Set(ctx, store.Orders, "a", []byte(`{}`)))
	require.NoError(t, c.Set(ctx, store.Invoices, "x", []byte(`{}`)))

	keys, err := c.List(ctx, store.Orders)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	keys, err = c.List(ctx, store.Quotes)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestClient_DeleteMissingIsNoop(t *testing.T) {
	c, _ := newTestClient(t)
	assert.NoError(t, c.Delete(context.Background(), store.Orders, "ghost"))
}

func TestClient_StorageErrorWhenServerDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestClient(t)
	mr.Close()

	_, err := c.Get(ctx, store.Orders, "order_1")
	require.Error(t, err)
	assert.True(t, ierr.IsStorage(err))
	assert.False(t, ierr.IsNotFound(err))
}

func TestClient_SatisfiesDocumentStore(t *testing.T) {
	var _ store.DocumentStore = (*Client)(nil)
}
