package services

import (
	"context"
	"strings"

	"glass_office/internal/models"
	"glass_office/internal/repository"
	"glass_office/internal/store"

	"go.uber.org/zap"
)

// InvoiceService converts orders into invoices, at most once per order.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.InvoiceOutcome, error)
	GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	GetAllInvoices(ctx context.Context) ([]models.Invoice, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	seqRepo     repository.SequenceRepository
	log         *zap.Logger
	clock       Clock
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	seqRepo repository.SequenceRepository,
	log *zap.Logger,
	clock Clock,
) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, orderRepo: orderRepo, seqRepo: seqRepo, log: log, clock: clock}
}

// CreateInvoice snapshots the order into a new invoice and flips the order to
// INVOICED. An order that is already invoiced is returned as-is, without drawing a
// new invoice number.
func (s *invoiceService) CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.InvoiceOutcome, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	if err := validateInput(in, "orderId is required"); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Invoiced() {
		s.log.Info("order already invoiced",
			zap.String("order_id", order.ID),
			zap.String("invoice_number", order.InvoiceNumber),
		)
		return &models.InvoiceOutcome{
			AlreadyInvoiced: true,
			OrderID:         order.ID,
			OrderNumber:     order.OrderNumber,
			InvoiceNumber:   order.InvoiceNumber,
		}, nil
	}

	seq, err := s.seqRepo.Next(ctx, store.InvoiceSequences, repository.InvoiceSequenceSeed)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	terms := firstNonEmpty(order.Customer.CreditTerms, order.Terms, models.DefaultTerms)
	items := models.CloneItems(order.Items)
	if items == nil {
		items = []models.Item{}
	}
	hardwareItems := models.CloneItems(order.HardwareItems)
	if hardwareItems == nil {
		hardwareItems = []models.Item{}
	}

	invoice := &models.Invoice{
		ID:                s.invoiceRepo.NewID(),
		InvoiceNumber:     models.InvoiceNumberFor(seq),
		SequenceNumber:    seq,
		OrderID:           order.ID,
		OrderNumber:       order.OrderNumber,
		Status:            models.OrderInvoiced,
		InvoiceDate:       now,
		Terms:             terms,
		Customer:          order.Customer,
		VendorName:        order.VendorName,
		VendorPoNumber:    order.VendorPoNumber,
		Items:             items,
		Hardware:          order.Hardware.Clone(),
		HardwareItems:     hardwareItems,
		GrandTotal:        order.GrandTotal,
		GrandTotalWithTax: order.GrandTotalWithTax,
		CreatedAt:         now,
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	order.Status = models.OrderInvoiced
	order.InvoiceNumber = invoice.InvoiceNumber
	order.InvoiceDate = timePtr(now)
	order.Terms = terms
	order.PickedUpAt = timePtr(now)
	order.UpdatedAt = timePtr(now)
	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.log.Error("invoice saved but order update failed",
			zap.String("invoice_id", invoice.ID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("order invoiced",
		zap.String("order_id", order.ID),
		zap.String("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
	)
	return &models.InvoiceOutcome{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		InvoiceNumber: invoice.InvoiceNumber,
		Invoice:       invoice,
	}, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.invoiceRepo.GetAll(ctx)
}
