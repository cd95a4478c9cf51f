package repository

import (
	"context"
	"slices"
	"strings"
	"time"

	"glass_office/internal/models"
	"glass_office/internal/store"

	"github.com/samber/lo"
)

type CustomerRepository interface {
	NewID() string
	Save(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Customer, error)
}

type customerRepository struct {
	customers docCollection[models.Customer]
}

func NewCustomerRepository(s store.DocumentStore) CustomerRepository {
	return &customerRepository{
		customers: newCollection(s, store.Customers, "Customer", func(c *models.Customer, id string) { c.ID = id }),
	}
}

func (r *customerRepository) NewID() string { return newID("cust_") }

func (r *customerRepository) Save(ctx context.Context, c *models.Customer) error {
	return r.customers.put(ctx, c.ID, c)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.customers.get(ctx, id)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	return r.customers.remove(ctx, id)
}

func (r *customerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	return r.customers.all(ctx)
}

type VendorRepository interface {
	NewID() string
	Save(ctx context.Context, v *models.Vendor) error
	GetByID(ctx context.Context, id string) (*models.Vendor, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Vendor, error)
}

type vendorRepository struct {
	vendors docCollection[models.Vendor]
}

func NewVendorRepository(s store.DocumentStore) VendorRepository {
	return &vendorRepository{
		vendors: newCollection(s, store.Vendors, "Vendor", func(v *models.Vendor, id string) { v.ID = id }),
	}
}

func (r *vendorRepository) NewID() string { return newID("vendor_") }

func (r *vendorRepository) Save(ctx context.Context, v *models.Vendor) error {
	return r.vendors.put(ctx, v.ID, v)
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	return r.vendors.get(ctx, id)
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	return r.vendors.remove(ctx, id)
}

func (r *vendorRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	return r.vendors.all(ctx)
}

// TechnicianRepository serves both technician collections (technicians, service-techs).
type TechnicianRepository interface {
	NewID() string
	Save(ctx context.Context, t *models.Technician) error
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Technician, error)
	FindByName(ctx context.Context, name string) (*models.Technician, error)
}

type technicianRepository struct {
	techs docCollection[models.Technician]
}

func NewTechnicianRepository(s store.DocumentStore, collection string) TechnicianRepository {
	return &technicianRepository{
		techs: newCollection(s, collection, "Technician", func(t *models.Technician, id string) { t.ID = id }),
	}
}

func (r *technicianRepository) NewID() string { return newID("tech_") }

func (r *technicianRepository) Save(ctx context.Context, t *models.Technician) error {
	return r.techs.put(ctx, t.ID, t)
}

func (r *technicianRepository) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	return r.techs.get(ctx, id)
}

func (r *technicianRepository) Delete(ctx context.Context, id string) error {
	return r.techs.remove(ctx, id)
}

// GetAll returns technicians sorted by name.
func (r *technicianRepository) GetAll(ctx context.Context) ([]models.Technician, error) {
	techs, err := r.techs.all(ctx)
	if err != nil {
		return nil, err
	}
	sortByName(techs)
	return techs, nil
}

// FindByName does a case-insensitive full match on the trimmed name. It returns
// nil, nil when nobody matches.
func (r *technicianRepository) FindByName(ctx context.Context, name string) (*models.Technician, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, nil
	}
	techs, err := r.techs.all(ctx)
	if err != nil {
		return nil, err
	}
	tech, ok := lo.Find(techs, func(t models.Technician) bool {
		return strings.ToLower(strings.TrimSpace(t.Name)) == needle
	})
	if !ok {
		return nil, nil
	}
	return &tech, nil
}

type QuoteRepository interface {
	NewID() string
	Save(ctx context.Context, q *models.Quote) error
	GetByID(ctx context.Context, id string) (*models.Quote, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Quote, error)
}

type quoteRepository struct {
	quotes docCollection[models.Quote]
}

func NewQuoteRepository(s store.DocumentStore) QuoteRepository {
	return &quoteRepository{
		quotes: newCollection(s, store.Quotes, "Quote", func(q *models.Quote, id string) { q.ID = id }),
	}
}

func (r *quoteRepository) NewID() string { return newID("quote-") }

func (r *quoteRepository) Save(ctx context.Context, q *models.Quote) error {
	return r.quotes.put(ctx, q.ID, q)
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	return r.quotes.get(ctx, id)
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	return r.quotes.remove(ctx, id)
}

func (r *quoteRepository) GetAll(ctx context.Context) ([]models.Quote, error) {
	quotes, err := r.quotes.all(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(quotes, func(q models.Quote) time.Time { return q.CreatedAt })
	return quotes, nil
}

func sortByName(techs []models.Technician) {
	slices.SortStableFunc(techs, func(a, b models.Technician) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
