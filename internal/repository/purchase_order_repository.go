package repository

import (
	"context"
	"time"

	"glass_office/internal/models"
	"glass_office/internal/store"
)

type PurchaseOrderRepository interface {
	NewID() string
	Save(ctx context.Context, po *models.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*models.PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.PurchaseOrder, error)
}

type purchaseOrderRepository struct {
	pos docCollection[models.PurchaseOrder]
}

func NewPurchaseOrderRepository(s store.DocumentStore) PurchaseOrderRepository {
	return &purchaseOrderRepository{
		pos: newCollection(s, store.PurchaseOrders, "Purchase order", func(po *models.PurchaseOrder, id string) { po.ID = id }),
	}
}

func (r *purchaseOrderRepository) NewID() string {
	return newID("po-")
}

func (r *purchaseOrderRepository) Save(ctx context.Context, po *models.PurchaseOrder) error {
	return r.pos.put(ctx, po.ID, po)
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	return r.pos.get(ctx, id)
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id string) error {
	return r.pos.remove(ctx, id)
}

func (r *purchaseOrderRepository) GetAll(ctx context.Context) ([]models.PurchaseOrder, error) {
	pos, err := r.pos.all(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(pos, func(po models.PurchaseOrder) time.Time { return po.CreatedAt })
	return pos, nil
}
