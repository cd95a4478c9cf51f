package database

import (
	"context"
	"path/filepath"
	"testing"

	ierr "glass_office/internal/errors"
	"glass_office/internal/migrations"
	"glass_office/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "documents.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, migrations.RunMigrations(db, zap.NewNop()))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewDocumentStore(db)
}

func TestDocumentStore_Upsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, store.InvoiceSequences, "main", []byte(`{"value":1000}`)))
	require.NoError(t, s.Set(ctx, store.InvoiceSequences, "main", []byte(`{"value":1001}`)))

	raw, err := s.Get(ctx, store.InvoiceSequences, "main")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":1001}`, string(raw))

	keys, err := s.List(ctx, store.InvoiceSequences)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, keys)
}

func TestDocumentStore_MissingAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Get(ctx, store.Orders, "order_x")
	assert.True(t, ierr.IsNotFound(err))

	require.NoError(t, s.Set(ctx, store.Orders, "order_x", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, store.Orders, "order_x"))
	require.NoError(t, s.Delete(ctx, store.Orders, "order_x"))

	_, err = s.Get(ctx, store.Orders, "order_x")
	assert.True(t, ierr.IsNotFound(err))
}

func TestDocumentStore_CollectionsShareTableButNotKeys(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Set(ctx, store.Vendors, "v2", []byte(`{"name":"B"}`)))
	require.NoError(t, s.Set(ctx, store.Vendors, "v1", []byte(`{"name":"A"}`)))
	require.NoError(t, s.Set(ctx, store.Customers, "v1", []byte(`{"name":"C"}`)))

	keys, err := s.List(ctx, store.Vendors)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, keys)

	raw, err := s.Get(ctx, store.Customers, "v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"C"}`, string(raw))

	// helpers work against the SQL backend too
	var got struct {
		Name string `json:"name"`
	}
	found, err := store.GetJSON(ctx, s, store.Vendors, "v1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "A", got.Name)
}

func TestDocumentStore_Ping(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
