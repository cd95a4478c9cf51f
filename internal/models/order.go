package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderShopProduction OrderStatus = "shop production"
	OrderOnOrderVendor  OrderStatus = "on order (vendor)"
	OrderReceivedVendor OrderStatus = "received (vendor)"
	OrderCompleted      OrderStatus = "completed"
	OrderInvoiced       OrderStatus = "INVOICED"

	// Legacy values still present on older orders.
	OrderVendor         OrderStatus = "vendor"
	OrderVendorReceived OrderStatus = "vendor received"
)

var knownOrderStatuses = map[OrderStatus]bool{
	OrderShopProduction: true,
	OrderOnOrderVendor:  true,
	OrderReceivedVendor: true,
	OrderCompleted:      true,
	OrderInvoiced:       true,
	OrderVendor:         true,
	OrderVendorReceived: true,
}

// Known reports whether s is part of the controlled vocabulary. Unknown values are
// stored untouched.
func (s OrderStatus) Known() bool {
	return knownOrderStatuses[s]
}

// CustomerInfo is the customer snapshot embedded in orders, invoices and requests.
type CustomerInfo struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	CreditTerms string `json:"creditTerms,omitempty"`
}

type Order struct {
	ID                 string       `json:"id"`
	SequenceNumber     int64        `json:"sequenceNumber"`
	OrderNumber        string       `json:"orderNumber"`
	Status             OrderStatus  `json:"status"`
	VendorName         string       `json:"vendorName"`
	VendorPoNumber     string       `json:"vendorPoNumber"`
	RequestedDate      string       `json:"requestedDate"`
	VendorDeliveryDate string       `json:"vendorDeliveryDate"`
	VendorReceivedAt   string       `json:"vendorReceivedAt"`
	Customer           CustomerInfo `json:"customer"`
	Items              []Item       `json:"items"`
	Hardware           Item         `json:"hardware"`
	HardwareItems      []Item       `json:"hardwareItems,omitempty"`
	SpecialPricing     bool         `json:"specialPricing"`
	GrandTotal         float64      `json:"grandTotal"`
	GrandTotalWithTax  float64      `json:"grandTotalWithTax"`
	Notes              string       `json:"notes,omitempty"`
	ShopNotes          string       `json:"shopNotes,omitempty"`
	Terms              string       `json:"terms,omitempty"`
	InvoiceNumber      string       `json:"invoiceNumber,omitempty"`
	InvoiceDate        *time.Time   `json:"invoiceDate"`
	PickedUpAt         *time.Time   `json:"pickedUpAt,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          *time.Time   `json:"updatedAt,omitempty"`
}

// OrderNumberFor derives the human order number from a sequence value.
func OrderNumberFor(seq int64) string {
	return fmt.Sprintf("o%d", seq)
}

// Invoiced reports whether the order has already been converted to an invoice.
func (o *Order) Invoiced() bool {
	return o.Status == OrderInvoiced && o.InvoiceNumber != ""
}

// OrderInput is the accepted shape of a new order. SequenceNumber is trusted when it
// decodes to a positive number (imports); otherwise a fresh value is drawn.
type OrderInput struct {
	SequenceNumber     any          `json:"sequenceNumber"`
	Status             OrderStatus  `json:"status"`
	VendorName         string       `json:"vendorName"`
	VendorPoNumber     string       `json:"vendorPoNumber"`
	RequestedDate      string       `json:"requestedDate"`
	VendorDeliveryDate string       `json:"vendorDeliveryDate"`
	VendorReceivedAt   string       `json:"vendorReceivedAt"`
	Customer           CustomerInfo `json:"customer"`
	Items              []Item       `json:"items"`
	Hardware           Item         `json:"hardware"`
	HardwareItems      []Item       `json:"hardwareItems"`
	SpecialPricing     bool         `json:"specialPricing"`
	GrandTotal         float64      `json:"grandTotal"`
	GrandTotalWithTax  float64      `json:"grandTotalWithTax"`
	Notes              string       `json:"notes"`
	ShopNotes          string       `json:"shopNotes"`
	Terms              string       `json:"terms"`
	InvoiceDate        *time.Time   `json:"invoiceDate"`
}

// OrderPatch lists the fields an order update may touch. Nil means "keep".
// invoiceNumber and pickedUpAt belong to invoicing and are not patchable.
type OrderPatch struct {
	SequenceNumber     any           `json:"sequenceNumber"`
	Status             *OrderStatus  `json:"status"`
	VendorName         *string       `json:"vendorName"`
	VendorPoNumber     *string       `json:"vendorPoNumber"`
	RequestedDate      *string       `json:"requestedDate"`
	VendorDeliveryDate *string       `json:"vendorDeliveryDate"`
	VendorReceivedAt   *string       `json:"vendorReceivedAt"`
	Customer           *CustomerInfo `json:"customer"`
	Items              *[]Item       `json:"items"`
	Hardware           *Item         `json:"hardware"`
	HardwareItems      *[]Item       `json:"hardwareItems"`
	SpecialPricing     *bool         `json:"specialPricing"`
	GrandTotal         *float64      `json:"grandTotal"`
	GrandTotalWithTax  *float64      `json:"grandTotalWithTax"`
	Notes              *string       `json:"notes"`
	ShopNotes          *string       `json:"shopNotes"`
	Terms              *string       `json:"terms"`
	InvoiceDate        *time.Time    `json:"invoiceDate"`
}
