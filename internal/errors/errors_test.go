package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("Order not found"), http.StatusNotFound},
		{"validation", Validation("Customer name is required"), http.StatusBadRequest},
		{"storage", Storage(fmt.Errorf("connection reset"), "get order"), http.StatusInternalServerError},
		{"unmarked", fmt.Errorf("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound("Order not found")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestDisplayMessage(t *testing.T) {
	assert.Equal(t, "Order not found", DisplayMessage(NotFound("Order not found")))

	err := Storage(fmt.Errorf("connection reset"), "get order")
	assert.Contains(t, DisplayMessage(err), "connection reset")
	assert.True(t, IsStorage(err))
	assert.False(t, IsNotFound(err))
}

func TestStorage_DoesNotDoubleWrap(t *testing.T) {
	inner := Storage(fmt.Errorf("timeout"), "hget")
	assert.Equal(t, inner, Storage(inner, "outer"))
	assert.Nil(t, Storage(nil, "noop"))
}
