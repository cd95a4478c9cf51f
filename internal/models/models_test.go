package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusForPO(t *testing.T) {
	tests := []struct {
		poType, poStatus string
		want             OrderStatus
	}{
		{"internal", "completed by shop", OrderCompleted},
		{"INTERNAL", "COMPLETED BY SHOP", OrderCompleted},
		{"internal", "pending", OrderShopProduction},
		{"internal", "", OrderShopProduction},
		{"external", "received", OrderReceivedVendor},
		{"External", "Received", OrderReceivedVendor},
		{"external", "Pending", OrderOnOrderVendor},
		{"", "received", OrderReceivedVendor},
		{"", "", OrderOnOrderVendor},
		{"drop-ship", "shipped", OrderOnOrderVendor},
	}
	for _, tt := range tests {
		t.Run(tt.poType+"/"+tt.poStatus, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderStatusForPO(tt.poType, tt.poStatus))
		})
	}
}

func TestOrderStatus_Known(t *testing.T) {
	assert.True(t, OrderInvoiced.Known())
	assert.True(t, OrderVendor.Known())
	assert.False(t, OrderStatus("on hold").Known())
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"float", float64(1200), 1200, true},
		{"string", " 1201 ", 1201, true},
		{"json number", json.Number("1202"), 1202, true},
		{"zero", float64(0), 0, false},
		{"negative", "-4", 0, false},
		{"garbage", "abc", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSequence(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItemClone_IsDeep(t *testing.T) {
	src := Item{"qty": float64(2), "dims": map[string]any{"w": "10"}, "tags": []any{"a"}}
	cp := src.Clone()

	cp["qty"] = float64(3)
	cp["dims"].(map[string]any)["w"] = "20"
	cp["tags"].([]any)[0] = "b"

	assert.Equal(t, float64(2), src["qty"])
	assert.Equal(t, "10", src["dims"].(map[string]any)["w"])
	assert.Equal(t, "a", src["tags"].([]any)[0])
	assert.Nil(t, CloneItems(nil))
}

func TestNumberFormats(t *testing.T) {
	assert.Equal(t, "o1000", OrderNumberFor(1000))
	assert.Equal(t, "I1000", InvoiceNumberFor(1000))
	assert.Equal(t, "RR-0007", ResidentialRequestNumberFor(7))
	assert.Equal(t, "RR-12345", ResidentialRequestNumberFor(12345))

	// 1740787200123 ms since epoch
	ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Add(123 * time.Millisecond)
	assert.Equal(t, "RQR-2025-200123", ServiceRequestNumberFor(ts))
	assert.Equal(t, "RQR-2025-000005", ServiceRequestNumberFor(time.UnixMilli(1740787000005).UTC()))
}

func TestOrder_Invoiced(t *testing.T) {
	o := Order{Status: OrderInvoiced}
	assert.False(t, o.Invoiced())
	o.InvoiceNumber = "I1000"
	assert.True(t, o.Invoiced())
}
