// Package store defines the document store contract every backend implements:
// JSON blobs addressed by (collection, key).
package store

import (
	"context"
	"encoding/json"

	ierr "glass_office/internal/errors"
)

// Collections used by the back office.
const (
	Orders              = "orders"
	PurchaseOrders      = "purchase-orders"
	Invoices            = "invoices"
	OrderSequences      = "document-sequences"
	InvoiceSequences    = "invoice-sequences"
	Quotes              = "quotes"
	Customers           = "customers"
	Vendors             = "vendors"
	Technicians         = "technicians"
	ServiceRequests     = "service-requests"
	ResidentialRequests = "residential-requests"
	ResidentialSequence = "residential-request-seq"
	ServiceTechs        = "service-techs"
)

// DocumentStore is the external document store. Get returns ErrNotFound (marked) for a
// missing key; Delete of a missing key is a no-op.
type DocumentStore interface {
	Get(ctx context.Context, collection, key string) ([]byte, error)
	Set(ctx context.Context, collection, key string, value []byte) error
	Delete(ctx context.Context, collection, key string) error
	List(ctx context.Context, collection string) ([]string, error)
}

// GetJSON loads collection/key into dest. found is false when the key is absent.
func GetJSON(ctx context.Context, s DocumentStore, collection, key string, dest any) (bool, error) {
	raw, err := s.Get(ctx, collection, key)
	if err != nil {
		if ierr.IsNotFound(err) {
			return false, nil
		}
		return false, ierr.Storage(err, "get "+collection+"/"+key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, ierr.Storage(err, "decode "+collection+"/"+key)
	}
	return true, nil
}

// SetJSON stores value as JSON under collection/key.
func SetJSON(ctx context.Context, s DocumentStore, collection, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return ierr.Storage(err, "encode "+collection+"/"+key)
	}
	if err := s.Set(ctx, collection, key, raw); err != nil {
		return ierr.Storage(err, "set "+collection+"/"+key)
	}
	return nil
}

// ErrKeyNotFound is returned by backends for a missing key.
var ErrKeyNotFound = ierr.NewError("document not found").Mark(ierr.ErrNotFound)
