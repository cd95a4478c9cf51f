package services

import (
	"context"
	"strings"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"
	"glass_office/internal/repository"

	"go.uber.org/zap"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, in models.CustomerInput) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ImportCustomers(ctx context.Context, entries []models.CustomerInput) (*models.ImportResult, error)
}

type customerService struct {
	repo  repository.CustomerRepository
	log   *zap.Logger
	clock Clock
}

func NewCustomerService(repo repository.CustomerRepository, log *zap.Logger, clock Clock) CustomerService {
	return &customerService{repo: repo, log: log, clock: clock}
}

func (s *customerService) CreateCustomer(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	if err := validateInput(in, "Customer name is required"); err != nil {
		return nil, err
	}
	c := &models.Customer{
		ID:          s.repo.NewID(),
		Name:        in.Name,
		Address:     in.Address,
		Email:       in.Email,
		Phone:       in.Phone,
		CreditTerms: in.CreditTerms,
		CreatedAt:   s.clock.now(),
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.GetAll(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&c.Name, patch.Name)
	setString(&c.Address, patch.Address)
	setString(&c.Email, patch.Email)
	setString(&c.Phone, patch.Phone)
	setString(&c.CreditTerms, patch.CreditTerms)
	c.ID = id
	c.UpdatedAt = timePtr(s.clock.now())

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ImportCustomers creates one customer per named entry. Blank names are skipped and
// per-entry store failures are collected rather than aborting the batch.
func (s *customerService) ImportCustomers(ctx context.Context, entries []models.CustomerInput) (*models.ImportResult, error) {
	if len(entries) == 0 {
		return nil, ierr.Validation("An array of customers is required")
	}

	result := &models.ImportResult{Errors: []models.ImportError{}}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			result.Skipped++
			continue
		}
		now := s.clock.now()
		c := &models.Customer{
			ID:          s.repo.NewID(),
			Name:        name,
			Address:     strings.TrimSpace(entry.Address),
			Email:       strings.TrimSpace(entry.Email),
			Phone:       strings.TrimSpace(entry.Phone),
			CreditTerms: strings.TrimSpace(entry.CreditTerms),
			CreatedAt:   now,
			UpdatedAt:   timePtr(now),
		}
		if err := s.repo.Save(ctx, c); err != nil {
			result.Errors = append(result.Errors, models.ImportError{Name: name, Error: err.Error()})
			continue
		}
		result.Created++
	}

	s.log.Info("customers imported",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", len(result.Errors)),
	)
	return result, nil
}

type VendorService interface {
	CreateVendor(ctx context.Context, in models.VendorInput) (*models.Vendor, error)
	GetVendorByID(ctx context.Context, id string) (*models.Vendor, error)
	GetAllVendors(ctx context.Context) ([]models.Vendor, error)
	UpdateVendor(ctx context.Context, id string, patch models.VendorPatch) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
	ImportVendors(ctx context.Context, entries []models.VendorInput) (*models.ImportResult, error)
}

type vendorService struct {
	repo  repository.VendorRepository
	log   *zap.Logger
	clock Clock
}

func NewVendorService(repo repository.VendorRepository, log *zap.Logger, clock Clock) VendorService {
	return &vendorService{repo: repo, log: log, clock: clock}
}

func (s *vendorService) CreateVendor(ctx context.Context, in models.VendorInput) (*models.Vendor, error) {
	if err := validateInput(in, "Vendor name is required"); err != nil {
		return nil, err
	}
	v := &models.Vendor{
		ID:        s.repo.NewID(),
		Name:      in.Name,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: s.clock.now(),
	}
	if err := s.repo.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, id string) (*models.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *vendorService) GetAllVendors(ctx context.Context) ([]models.Vendor, error) {
	return s.repo.GetAll(ctx)
}

func (s *vendorService) UpdateVendor(ctx context.Context, id string, patch models.VendorPatch) (*models.Vendor, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&v.Name, patch.Name)
	setString(&v.Address, patch.Address)
	setString(&v.Email, patch.Email)
	setString(&v.Phone, patch.Phone)
	v.ID = id
	v.UpdatedAt = timePtr(s.clock.now())

	if err := s.repo.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *vendorService) ImportVendors(ctx context.Context, entries []models.VendorInput) (*models.ImportResult, error) {
	if len(entries) == 0 {
		return nil, ierr.Validation("An array of vendors is required")
	}

	result := &models.ImportResult{Errors: []models.ImportError{}}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			result.Skipped++
			continue
		}
		now := s.clock.now()
		v := &models.Vendor{
			ID:        s.repo.NewID(),
			Name:      name,
			Address:   strings.TrimSpace(entry.Address),
			Email:     strings.TrimSpace(entry.Email),
			Phone:     strings.TrimSpace(entry.Phone),
			CreatedAt: now,
			UpdatedAt: timePtr(now),
		}
		if err := s.repo.Save(ctx, v); err != nil {
			result.Errors = append(result.Errors, models.ImportError{Name: name, Error: err.Error()})
			continue
		}
		result.Created++
	}

	s.log.Info("vendors imported",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", len(result.Errors)),
	)
	return result, nil
}

// TechnicianService manages one technician collection; the server builds one for
// technicians and one for service-techs.
type TechnicianService interface {
	CreateTechnician(ctx context.Context, in models.TechnicianInput) (*models.Technician, error)
	GetTechnicianByID(ctx context.Context, id string) (*models.Technician, error)
	GetAllTechnicians(ctx context.Context) ([]models.Technician, error)
	UpdateTechnician(ctx context.Context, id string, patch models.TechnicianPatch) (*models.Technician, error)
	DeleteTechnician(ctx context.Context, id string) error
}

type technicianService struct {
	repo  repository.TechnicianRepository
	clock Clock
}

func NewTechnicianService(repo repository.TechnicianRepository, clock Clock) TechnicianService {
	return &technicianService{repo: repo, clock: clock}
}

func (s *technicianService) CreateTechnician(ctx context.Context, in models.TechnicianInput) (*models.Technician, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return nil, ierr.Validation("Technician name is required")
	}
	if err := validateInput(in, "Technician email is invalid"); err != nil {
		return nil, err
	}

	now := s.clock.now()
	t := &models.Technician{
		ID:        s.repo.NewID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Active:    in.Active == nil || *in.Active,
		CreatedAt: now,
		UpdatedAt: timePtr(now),
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *technicianService) GetTechnicianByID(ctx context.Context, id string) (*models.Technician, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *technicianService) GetAllTechnicians(ctx context.Context) ([]models.Technician, error) {
	return s.repo.GetAll(ctx)
}

func (s *technicianService) UpdateTechnician(ctx context.Context, id string, patch models.TechnicianPatch) (*models.Technician, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ierr.Validation("Technician name is required")
	}
	setTrimmed(&t.Name, patch.Name)
	setTrimmed(&t.Phone, patch.Phone)
	setTrimmed(&t.Email, patch.Email)
	if patch.Active != nil {
		t.Active = *patch.Active
	}
	t.ID = id
	t.UpdatedAt = timePtr(s.clock.now())

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *technicianService) DeleteTechnician(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type QuoteService interface {
	CreateQuote(ctx context.Context, in models.QuoteInput) (*models.Quote, error)
	GetQuoteByID(ctx context.Context, id string) (*models.Quote, error)
	GetAllQuotes(ctx context.Context) ([]models.Quote, error)
	UpdateQuote(ctx context.Context, id string, patch models.QuotePatch) (*models.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
}

type quoteService struct {
	repo  repository.QuoteRepository
	clock Clock
}

func NewQuoteService(repo repository.QuoteRepository, clock Clock) QuoteService {
	return &quoteService{repo: repo, clock: clock}
}

func (s *quoteService) CreateQuote(ctx context.Context, in models.QuoteInput) (*models.Quote, error) {
	items := in.Items
	if items == nil {
		items = []models.Item{}
	}
	q := &models.Quote{
		ID:                s.repo.NewID(),
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		Items:             items,
		HardwareItem:      in.HardwareItem,
		HardwarePrice:     in.HardwarePrice,
		GrandTotal:        in.GrandTotal,
		GrandTotalWithTax: in.GrandTotalWithTax,
		SpecialPricing:    in.SpecialPricing,
		Notes:             in.Notes,
		CreatedAt:         s.clock.now(),
	}
	if err := s.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *quoteService) GetQuoteByID(ctx context.Context, id string) (*models.Quote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *quoteService) GetAllQuotes(ctx context.Context) ([]models.Quote, error) {
	return s.repo.GetAll(ctx)
}

func (s *quoteService) UpdateQuote(ctx context.Context, id string, patch models.QuotePatch) (*models.Quote, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&q.CustomerName, patch.CustomerName)
	setString(&q.CustomerPhone, patch.CustomerPhone)
	setString(&q.HardwareItem, patch.HardwareItem)
	setString(&q.Notes, patch.Notes)
	if patch.Items != nil {
		q.Items = *patch.Items
	}
	if patch.HardwarePrice != nil {
		q.HardwarePrice = *patch.HardwarePrice
	}
	if patch.GrandTotal != nil {
		q.GrandTotal = *patch.GrandTotal
	}
	if patch.GrandTotalWithTax != nil {
		q.GrandTotalWithTax = *patch.GrandTotalWithTax
	}
	if patch.SpecialPricing != nil {
		q.SpecialPricing = *patch.SpecialPricing
	}
	q.ID = id
	q.UpdatedAt = timePtr(s.clock.now())

	if err := s.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
