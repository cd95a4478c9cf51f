package services

import (
	"context"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"
	"glass_office/internal/printing"
	"glass_office/internal/repository"

	"go.uber.org/zap"
)

// Reasons recorded on a PO when its linked order was not updated.
const (
	SyncReasonDisabled      = "syncToOrder is disabled"
	SyncReasonNoOrder       = "no linked order"
	SyncReasonOrderNotFound = "linked order not found"
)

// PurchaseOrderService writes purchase orders and mirrors their status and vendor
// fields onto the linked order.
type PurchaseOrderService interface {
	CreatePurchaseOrder(ctx context.Context, in models.PurchaseOrderInput) (*models.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, id string, patch models.PurchaseOrderPatch) (*models.PurchaseOrder, error)
	GetPurchaseOrderByID(ctx context.Context, id string) (*models.PurchaseOrder, error)
	GetAllPurchaseOrders(ctx context.Context) ([]models.PurchaseOrder, error)
	DeletePurchaseOrder(ctx context.Context, id string) error
	PrintPurchaseOrder(ctx context.Context, id string) (string, error)
}

type purchaseOrderService struct {
	poRepo    repository.PurchaseOrderRepository
	orderRepo repository.OrderRepository
	renderer  *printing.Renderer
	log       *zap.Logger
	clock     Clock
}

func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	orderRepo repository.OrderRepository,
	renderer *printing.Renderer,
	log *zap.Logger,
	clock Clock,
) PurchaseOrderService {
	return &purchaseOrderService{poRepo: poRepo, orderRepo: orderRepo, renderer: renderer, log: log, clock: clock}
}

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, in models.PurchaseOrderInput) (*models.PurchaseOrder, error) {
	now := s.clock.now()
	items := in.Items
	if items == nil {
		items = []models.Item{}
	}

	po := &models.PurchaseOrder{
		ID:            s.poRepo.NewID(),
		OrderID:       in.OrderID,
		OrderNumber:   in.OrderNumber,
		DateOrdered:   in.DateOrdered,
		RequestedDate: firstNonEmpty(in.RequestedDate, in.DateOrdered),
		PoNumber:      in.PoNumber,
		Vendor:        in.Vendor,
		PoType:        firstNonEmpty(in.PoType, models.POTypeExternal),
		DeliveryDate:  in.DeliveryDate,
		ReceivedAt:    in.ReceivedAt,
		Status:        firstNonEmpty(in.Status, models.POStatusPending),
		SyncToOrder:   in.SyncToOrder == nil || *in.SyncToOrder,
		Items:         items,
		CreatedAt:     now,
	}

	if err := s.saveAndSync(ctx, po, false, now); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *purchaseOrderService) UpdatePurchaseOrder(ctx context.Context, id string, patch models.PurchaseOrderPatch) (*models.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&po.OrderID, patch.OrderID)
	setString(&po.OrderNumber, patch.OrderNumber)
	setString(&po.DateOrdered, patch.DateOrdered)
	setString(&po.RequestedDate, patch.RequestedDate)
	setString(&po.PoNumber, patch.PoNumber)
	setString(&po.Vendor, patch.Vendor)
	setString(&po.PoType, patch.PoType)
	setString(&po.DeliveryDate, patch.DeliveryDate)
	setString(&po.ReceivedAt, patch.ReceivedAt)
	setString(&po.Status, patch.Status)
	if patch.SyncToOrder != nil {
		po.SyncToOrder = *patch.SyncToOrder
	}
	if patch.Items != nil {
		po.Items = *patch.Items
	}

	now := s.clock.now()
	po.ID = id
	po.UpdatedAt = timePtr(now)

	if err := s.saveAndSync(ctx, po, true, now); err != nil {
		return nil, err
	}
	return po, nil
}

// saveAndSync loads the linked order, records the sync outcome on the PO, writes the
// PO and then the order. A missing order never fails the PO write.
func (s *purchaseOrderService) saveAndSync(ctx context.Context, po *models.PurchaseOrder, keepPrevious bool, now time.Time) error {
	order, result, err := s.syncOrder(ctx, po, keepPrevious, now)
	if err != nil {
		return err
	}
	po.OrderSync = result

	if err := s.poRepo.Save(ctx, po); err != nil {
		return err
	}
	if order == nil {
		return nil
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.log.Error("purchase order saved but linked order update failed",
			zap.String("po_id", po.ID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return err
	}

	s.log.Info("order synced from purchase order",
		zap.String("po_id", po.ID),
		zap.String("order_id", order.ID),
		zap.String("order_status", string(order.Status)),
	)
	return nil
}

// syncOrder computes the updated linked order. It returns a nil order when nothing
// should be written.
func (s *purchaseOrderService) syncOrder(ctx context.Context, po *models.PurchaseOrder, keepPrevious bool, now time.Time) (*models.Order, *models.SyncResult, error) {
	result := &models.SyncResult{SyncedAt: now}

	if !po.SyncToOrder {
		result.Reason = SyncReasonDisabled
		return nil, result, nil
	}
	if po.OrderID == "" {
		result.Reason = SyncReasonNoOrder
		return nil, result, nil
	}

	order, err := s.orderRepo.GetByID(ctx, po.OrderID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.log.Warn("purchase order links to a missing order",
				zap.String("po_id", po.ID),
				zap.String("order_id", po.OrderID),
			)
			result.Reason = SyncReasonOrderNotFound
			return nil, result, nil
		}
		return nil, nil, err
	}

	pick := func(incoming, previous string) string {
		if keepPrevious {
			return firstNonEmpty(incoming, previous)
		}
		return incoming
	}

	order.Status = models.OrderStatusForPO(po.PoType, po.Status)
	order.VendorName = pick(po.Vendor, order.VendorName)
	order.VendorPoNumber = pick(po.PoNumber, order.VendorPoNumber)
	order.RequestedDate = pick(po.RequestedDate, order.RequestedDate)
	order.VendorDeliveryDate = pick(po.DeliveryDate, order.VendorDeliveryDate)
	order.VendorReceivedAt = pick(po.ReceivedAt, order.VendorReceivedAt)
	order.UpdatedAt = timePtr(now)

	result.Synced = true
	result.OrderStatus = order.Status
	return order, result, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	return s.poRepo.GetByID(ctx, id)
}

func (s *purchaseOrderService) GetAllPurchaseOrders(ctx context.Context) ([]models.PurchaseOrder, error) {
	return s.poRepo.GetAll(ctx)
}

func (s *purchaseOrderService) DeletePurchaseOrder(ctx context.Context, id string) error {
	return s.poRepo.Delete(ctx, id)
}

func (s *purchaseOrderService) PrintPurchaseOrder(ctx context.Context, id string) (string, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderPurchaseOrder(po)
}
