package repository

import (
	"context"
	"time"

	"glass_office/internal/models"
	"glass_office/internal/store"

	"github.com/samber/lo"
)

type InvoiceRepository interface {
	NewID() string
	Save(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetAll(ctx context.Context) ([]models.Invoice, error)
	GetByOrderID(ctx context.Context, orderID string) ([]models.Invoice, error)
}

type invoiceRepository struct {
	invoices docCollection[models.Invoice]
}

func NewInvoiceRepository(s store.DocumentStore) InvoiceRepository {
	return &invoiceRepository{
		invoices: newCollection(s, store.Invoices, "Invoice", func(inv *models.Invoice, id string) { inv.ID = id }),
	}
}

func (r *invoiceRepository) NewID() string {
	return newID("invoice_")
}

func (r *invoiceRepository) Save(ctx context.Context, invoice *models.Invoice) error {
	return r.invoices.put(ctx, invoice.ID, invoice)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return r.invoices.get(ctx, id)
}

func (r *invoiceRepository) GetAll(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := r.invoices.all(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(invoices, func(inv models.Invoice) time.Time { return inv.CreatedAt })
	return invoices, nil
}

func (r *invoiceRepository) GetByOrderID(ctx context.Context, orderID string) ([]models.Invoice, error) {
	invoices, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(invoices, func(inv models.Invoice, _ int) bool { return inv.OrderID == orderID }), nil
}
