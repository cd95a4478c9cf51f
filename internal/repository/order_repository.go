package repository

import (
	"context"
	"time"

	"glass_office/internal/models"
	"glass_office/internal/store"
)

type OrderRepository interface {
	NewID() string
	Save(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Order, error)
}

type orderRepository struct {
	orders docCollection[models.Order]
}

func NewOrderRepository(s store.DocumentStore) OrderRepository {
	return &orderRepository{
		orders: newCollection(s, store.Orders, "Order", func(o *models.Order, id string) { o.ID = id }),
	}
}

func (r *orderRepository) NewID() string {
	return newID("order_")
}

func (r *orderRepository) Save(ctx context.Context, order *models.Order) error {
	return r.orders.put(ctx, order.ID, order)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return r.orders.get(ctx, id)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return r.orders.remove(ctx, id)
}

// GetAll returns every order, newest first.
func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	orders, err := r.orders.all(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders, func(o models.Order) time.Time { return o.CreatedAt })
	return orders, nil
}
