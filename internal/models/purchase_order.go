package models

import (
	"strings"
	"time"
)

const (
	POTypeExternal = "external"
	POTypeInternal = "internal"

	POStatusPending = "Pending"
)

type PurchaseOrder struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"orderId"`
	OrderNumber   string      `json:"orderNumber"`
	DateOrdered   string      `json:"dateOrdered"`
	RequestedDate string      `json:"requestedDate"`
	PoNumber      string      `json:"poNumber"`
	Vendor        string      `json:"vendor"`
	PoType        string      `json:"poType"`
	DeliveryDate  string      `json:"deliveryDate"`
	ReceivedAt    string      `json:"receivedAt"`
	Status        string      `json:"status"`
	SyncToOrder   bool        `json:"syncToOrder"`
	Items         []Item      `json:"items"`
	OrderSync     *SyncResult `json:"orderSync,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

// Internal reports whether the PO is a shop (internal) dispatch.
func (po *PurchaseOrder) Internal() bool {
	return strings.EqualFold(strings.TrimSpace(po.PoType), POTypeInternal)
}

// SyncResult records what happened when a PO tried to update its linked order.
type SyncResult struct {
	Synced      bool        `json:"synced"`
	Reason      string      `json:"reason,omitempty"`
	OrderStatus OrderStatus `json:"orderStatus,omitempty"`
	SyncedAt    time.Time   `json:"syncedAt"`
}

// OrderStatusForPO maps a PO's type and status onto the linked order's status.
// Comparison is case-insensitive; a blank type counts as external.
func OrderStatusForPO(poType, poStatus string) OrderStatus {
	t := strings.ToLower(strings.TrimSpace(poType))
	if t == "" {
		t = POTypeExternal
	}
	s := strings.ToLower(strings.TrimSpace(poStatus))
	if s == "" {
		s = "pending"
	}

	if t == POTypeInternal {
		if s == "completed by shop" {
			return OrderCompleted
		}
		return OrderShopProduction
	}
	if s == "received" {
		return OrderReceivedVendor
	}
	return OrderOnOrderVendor
}

// PurchaseOrderInput is the accepted shape of a new PO. SyncToOrder defaults to true.
type PurchaseOrderInput struct {
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	DateOrdered   string `json:"dateOrdered"`
	RequestedDate string `json:"requestedDate"`
	PoNumber      string `json:"poNumber"`
	Vendor        string `json:"vendor"`
	PoType        string `json:"poType"`
	DeliveryDate  string `json:"deliveryDate"`
	ReceivedAt    string `json:"receivedAt"`
	Status        string `json:"status"`
	SyncToOrder   *bool  `json:"syncToOrder"`
	Items         []Item `json:"items"`
}

// PurchaseOrderPatch lists the fields a PO update may touch.
type PurchaseOrderPatch struct {
	OrderID       *string `json:"orderId"`
	OrderNumber   *string `json:"orderNumber"`
	DateOrdered   *string `json:"dateOrdered"`
	RequestedDate *string `json:"requestedDate"`
	PoNumber      *string `json:"poNumber"`
	Vendor        *string `json:"vendor"`
	PoType        *string `json:"poType"`
	DeliveryDate  *string `json:"deliveryDate"`
	ReceivedAt    *string `json:"receivedAt"`
	Status        *string `json:"status"`
	SyncToOrder   *bool   `json:"syncToOrder"`
	Items         *[]Item `json:"items"`
}
