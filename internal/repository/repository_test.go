package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"
	"glass_office/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_StrictlyIncreasingFromSeed(t *testing.T) {
	ctx := context.Background()
	seq := NewSequenceRepository(store.NewMemoryStore())

	for _, tc := range []struct {
		name string
		seed int64
	}{
		{store.OrderSequences, OrderSequenceSeed},
		{store.InvoiceSequences, InvoiceSequenceSeed},
		{store.ResidentialSequence, ResidentialSequenceSeed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prev := tc.seed
			for i := 0; i < 25; i++ {
				v, err := seq.Next(ctx, tc.name, tc.seed)
				require.NoError(t, err)
				if i == 0 {
					assert.Equal(t, tc.seed+1, v)
				}
				assert.Greater(t, v, prev)
				prev = v
			}
		})
	}
}

func TestSequence_NamesAreIndependent(t *testing.T) {
	ctx := context.Background()
	seq := NewSequenceRepository(store.NewMemoryStore())

	for i := 0; i < 3; i++ {
		_, err := seq.Next(ctx, store.OrderSequences, OrderSequenceSeed)
		require.NoError(t, err)
	}
	v, err := seq.Next(ctx, store.InvoiceSequences, InvoiceSequenceSeed)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)
}

func TestSequence_NonNumericCounterFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, store.OrderSequences, "main", []byte(`{"value":"oops"}`)))

	seq := NewSequenceRepository(s)
	v, err := seq.Next(ctx, store.OrderSequences, OrderSequenceSeed)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)

	cur, err := seq.Current(ctx, store.OrderSequences, OrderSequenceSeed)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), cur)
}

func TestSequence_EnsureSeedsOnlyWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	seq := NewSequenceRepository(s)

	v, err := seq.Ensure(ctx, store.OrderSequences, OrderSequenceSeed)
	require.NoError(t, err)
	assert.Equal(t, OrderSequenceSeed, v)

	next, err := seq.Next(ctx, store.OrderSequences, OrderSequenceSeed)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), next)

	v, err = seq.Ensure(ctx, store.OrderSequences, OrderSequenceSeed)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)
}

func TestSequence_ContinuesFromStoredValue(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, store.SetJSON(ctx, s, store.InvoiceSequences, "main", models.SequenceCounter{Value: 4200}))

	v, err := NewSequenceRepository(s).Next(ctx, store.InvoiceSequences, InvoiceSequenceSeed)
	require.NoError(t, err)
	assert.Equal(t, int64(4201), v)
}

func TestOrderRepository_ListSkipsCounterAndSortsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewOrderRepository(s)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, num := range []string{"o1000", "o1001", "o1002"} {
		o := &models.Order{ID: repo.NewID(), OrderNumber: num, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, repo.Save(ctx, o))
	}
	require.NoError(t, s.Set(ctx, store.Orders, "_counter", []byte(`{"value":5}`)))

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "o1002", orders[0].OrderNumber)
	assert.Equal(t, "o1000", orders[2].OrderNumber)
	assert.True(t, strings.HasPrefix(orders[0].ID, "order_"))
}

func TestOrderRepository_GetMissingIsNotFound(t *testing.T) {
	repo := NewOrderRepository(store.NewMemoryStore())
	_, err := repo.GetByID(context.Background(), "order_missing")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
	assert.Equal(t, "Order not found", ierr.DisplayMessage(err))
}

func TestOrderRepository_IDComesFromKey(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	// documents written without an embedded id still load with one
	require.NoError(t, s.Set(ctx, store.Orders, "order_legacy", []byte(`{"orderNumber":"o7"}`)))

	o, err := NewOrderRepository(s).GetByID(ctx, "order_legacy")
	require.NoError(t, err)
	assert.Equal(t, "order_legacy", o.ID)
	assert.Equal(t, "o7", o.OrderNumber)
}

func TestTechnicianRepository_FindByName(t *testing.T) {
	ctx := context.Background()
	repo := NewTechnicianRepository(store.NewMemoryStore(), store.Technicians)

	require.NoError(t, repo.Save(ctx, &models.Technician{ID: "tech_1", Name: "Dana Ruiz", Email: "dana@example.com"}))
	require.NoError(t, repo.Save(ctx, &models.Technician{ID: "tech_2", Name: "alex kim"}))

	got, err := repo.FindByName(ctx, "  DANA RUIZ ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tech_1", got.ID)

	got, err = repo.FindByName(ctx, "Dana")
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alex kim", all[0].Name)
}

func TestTechnicianRepository_CollectionsAreSeparate(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	techs := NewTechnicianRepository(s, store.Technicians)
	serviceTechs := NewTechnicianRepository(s, store.ServiceTechs)

	require.NoError(t, techs.Save(ctx, &models.Technician{ID: "tech_1", Name: "Dana"}))

	_, err := serviceTechs.GetByID(ctx, "tech_1")
	assert.True(t, ierr.IsNotFound(err))
}

func TestInvoiceRepository_GetByOrderID(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository(store.NewMemoryStore())

	require.NoError(t, repo.Save(ctx, &models.Invoice{ID: repo.NewID(), OrderID: "order_a", InvoiceNumber: "I1000"}))
	require.NoError(t, repo.Save(ctx, &models.Invoice{ID: repo.NewID(), OrderID: "order_b", InvoiceNumber: "I1001"}))

	got, err := repo.GetByOrderID(ctx, "order_a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "I1000", got[0].InvoiceNumber)
}
