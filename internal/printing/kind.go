// Package printing renders orders and purchase orders into printable HTML documents.
//
// Rendering is pure: the same order and clock always produce the same markup. Every
// free-text field passes through html/template's contextual escaping.
package printing

import (
	"strings"

	ierr "glass_office/internal/errors"
)

// Kind selects the document view of an order.
type Kind string

const (
	KindQuote         Kind = "quote"
	KindTicket        Kind = "ticket"
	KindPackingList   Kind = "packing-list"
	KindInvoice       Kind = "invoice"
	KindPurchaseOrder Kind = "purchase-order"
)

var kindAliases = map[string]Kind{
	"quote":          KindQuote,
	"ticket":         KindTicket,
	"packing-list":   KindPackingList,
	"packinglist":    KindPackingList,
	"invoice":        KindInvoice,
	"purchase-order": KindPurchaseOrder,
	"purchaseorder":  KindPurchaseOrder,
	"po":             KindPurchaseOrder,
}

// ParseKind accepts the canonical kinds and their aliases, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ierr.NewError("unknown print kind: " + s).
			WithHint("Invalid print type").
			Mark(ierr.ErrValidation)
	}
	return k, nil
}

// Kinds lists every order view.
func Kinds() []Kind {
	return []Kind{KindQuote, KindTicket, KindPackingList, KindInvoice, KindPurchaseOrder}
}
