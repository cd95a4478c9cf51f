package services

import (
	"context"
	"strings"

	"glass_office/internal/models"
	"glass_office/internal/printing"
	"glass_office/internal/repository"
	"glass_office/internal/store"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in models.OrderInput) (*models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetAllOrders(ctx context.Context, search string) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	PrintOrder(ctx context.Context, id, kind string) (string, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	seqRepo   repository.SequenceRepository
	renderer  *printing.Renderer
	log       *zap.Logger
	clock     Clock
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	seqRepo repository.SequenceRepository,
	renderer *printing.Renderer,
	log *zap.Logger,
	clock Clock,
) OrderService {
	return &orderService{orderRepo: orderRepo, seqRepo: seqRepo, renderer: renderer, log: log, clock: clock}
}

func (s *orderService) CreateOrder(ctx context.Context, in models.OrderInput) (*models.Order, error) {
	seq, ok := models.ParseSequence(in.SequenceNumber)
	if !ok {
		next, err := s.seqRepo.Next(ctx, store.OrderSequences, repository.OrderSequenceSeed)
		if err != nil {
			return nil, err
		}
		seq = next
	}

	status := in.Status
	if status == "" {
		status = models.OrderShopProduction
	}
	items := in.Items
	if items == nil {
		items = []models.Item{}
	}

	order := &models.Order{
		ID:                 s.orderRepo.NewID(),
		SequenceNumber:     seq,
		OrderNumber:        models.OrderNumberFor(seq),
		Status:             status,
		VendorName:         in.VendorName,
		VendorPoNumber:     in.VendorPoNumber,
		RequestedDate:      in.RequestedDate,
		VendorDeliveryDate: in.VendorDeliveryDate,
		VendorReceivedAt:   in.VendorReceivedAt,
		Customer:           in.Customer,
		Items:              items,
		Hardware:           in.Hardware,
		HardwareItems:      in.HardwareItems,
		SpecialPricing:     in.SpecialPricing,
		GrandTotal:         in.GrandTotal,
		GrandTotalWithTax:  in.GrandTotalWithTax,
		Notes:              in.Notes,
		ShopNotes:          in.ShopNotes,
		Terms:              in.Terms,
		InvoiceDate:        in.InvoiceDate,
		CreatedAt:          s.clock.now(),
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Bool("imported_sequence", ok),
	)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// GetAllOrders lists orders newest first. A search term keeps orders whose number or
// customer name contains it, case-insensitively.
func (s *orderService) GetAllOrders(ctx context.Context, search string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return orders, nil
	}
	return lo.Filter(orders, func(o models.Order, _ int) bool {
		return containsFold(o.OrderNumber, search) || containsFold(o.Customer.Name, search)
	}), nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if seq, ok := models.ParseSequence(patch.SequenceNumber); ok {
		order.SequenceNumber = seq
		order.OrderNumber = models.OrderNumberFor(seq)
	}
	if patch.Status != nil && *patch.Status != "" {
		order.Status = *patch.Status
	}
	if order.Status == "" {
		order.Status = models.OrderShopProduction
	}

	setString(&order.VendorName, patch.VendorName)
	setString(&order.VendorPoNumber, patch.VendorPoNumber)
	setString(&order.RequestedDate, patch.RequestedDate)
	setString(&order.VendorDeliveryDate, patch.VendorDeliveryDate)
	setString(&order.VendorReceivedAt, patch.VendorReceivedAt)
	setString(&order.Notes, patch.Notes)
	setString(&order.ShopNotes, patch.ShopNotes)
	setString(&order.Terms, patch.Terms)
	if patch.Customer != nil {
		order.Customer = *patch.Customer
	}
	if patch.Items != nil {
		order.Items = *patch.Items
	}
	if patch.Hardware != nil {
		order.Hardware = *patch.Hardware
	}
	if patch.HardwareItems != nil {
		order.HardwareItems = *patch.HardwareItems
	}
	if patch.SpecialPricing != nil {
		order.SpecialPricing = *patch.SpecialPricing
	}
	if patch.GrandTotal != nil {
		order.GrandTotal = *patch.GrandTotal
	}
	if patch.GrandTotalWithTax != nil {
		order.GrandTotalWithTax = *patch.GrandTotalWithTax
	}
	if patch.InvoiceDate != nil {
		order.InvoiceDate = patch.InvoiceDate
	}
	order.UpdatedAt = timePtr(s.clock.now())

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

// PrintOrder renders the order in the requested view. The order is looked up before
// the kind is checked, so an unknown id wins over an unknown kind.
func (s *orderService) PrintOrder(ctx context.Context, id, kind string) (string, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	k, err := printing.ParseKind(kind)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderOrder(order, k)
}
