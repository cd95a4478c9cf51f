package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DisabledWithoutConfig(t *testing.T) {
	for _, cfg := range []Config{
		{},
		{APIKey: "re_key"},
		{FromAddress: "office@example.com"},
	} {
		c, err := NewClient(cfg)
		require.NoError(t, err)
		assert.False(t, c.IsEnabled())

		_, err = c.Send(context.Background(), "tech@example.com", "s", "b")
		assert.ErrorIs(t, err, ErrDisabled)
	}
}

func TestClient_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{APIKey: "re_key", FromAddress: "office@example.com", BaseURL: srv.URL})
	require.NoError(t, err)
	require.True(t, c.IsEnabled())

	id, err := c.Send(context.Background(), "tech@example.com", "New Residential Request RR-0001", "hello")
	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)

	assert.Equal(t, "office@example.com", got["from"])
	assert.Equal(t, []any{"tech@example.com"}, got["to"])
	assert.Equal(t, "New Residential Request RR-0001", got["subject"])
	assert.Equal(t, "hello", got["text"])
}

func TestClient_SendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"invalid from"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{APIKey: "re_key", FromAddress: "office@example.com", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Send(context.Background(), "tech@example.com", "s", "b")
	assert.Error(t, err)
}
