package models

import (
	"fmt"
	"time"
)

// DefaultTerms applies when neither the customer nor the order carries terms.
const DefaultTerms = "DUE UPON RECEIPT"

// Invoice is a frozen snapshot of an order at conversion time.
type Invoice struct {
	ID                string       `json:"id"`
	InvoiceNumber     string       `json:"invoiceNumber"`
	SequenceNumber    int64        `json:"sequenceNumber"`
	OrderID           string       `json:"orderId"`
	OrderNumber       string       `json:"orderNumber"`
	Status            OrderStatus  `json:"status"`
	InvoiceDate       time.Time    `json:"invoiceDate"`
	Terms             string       `json:"terms"`
	Customer          CustomerInfo `json:"customer"`
	VendorName        string       `json:"vendorName"`
	VendorPoNumber    string       `json:"vendorPoNumber"`
	Items             []Item       `json:"items"`
	Hardware          Item         `json:"hardware,omitempty"`
	HardwareItems     []Item       `json:"hardwareItems"`
	GrandTotal        float64      `json:"grandTotal"`
	GrandTotalWithTax float64      `json:"grandTotalWithTax"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// InvoiceNumberFor derives the invoice number from an invoice sequence value.
func InvoiceNumberFor(seq int64) string {
	return fmt.Sprintf("I%d", seq)
}

// InvoiceInput is the body of an invoice request.
type InvoiceInput struct {
	OrderID string `json:"orderId" validate:"required"`
}

// InvoiceOutcome is the result of invoicing an order. When AlreadyInvoiced is set,
// Invoice is nil and the numbers come from the order.
type InvoiceOutcome struct {
	AlreadyInvoiced bool
	OrderID         string
	OrderNumber     string
	InvoiceNumber   string
	Invoice         *Invoice
}
