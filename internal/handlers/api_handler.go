package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Pinger is implemented by the networked document stores.
type Pinger interface {
	Ping(ctx context.Context) error
}

// APIHandler serves the health endpoint.
type APIHandler struct {
	backend string
	pinger  Pinger
	log     *zap.Logger
}

// NewAPIHandler reports on backend; pinger may be nil for the in-memory store.
func NewAPIHandler(backend string, pinger Pinger, log *zap.Logger) *APIHandler {
	return &APIHandler{backend: backend, pinger: pinger, log: log}
}

func (h *APIHandler) Health(c *gin.Context) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			h.log.Error("store health check failed", zap.String("backend", h.backend), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"backend": h.backend,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": h.backend,
	})
}

// respondError writes {"error": ...} with the status derived from the error's mark.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := ierr.HTTPStatusFromErr(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("request_id", logger.RequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": ierr.DisplayMessage(err)})
}

func respondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondHTML(c *gin.Context, html string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// bindJSON decodes the request body into dest, reporting malformed input as a
// validation error.
func bindJSON(c *gin.Context, dest any) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return ierr.WithError(err).WithHint("Invalid request format").Mark(ierr.ErrValidation)
	}
	return nil
}

// bindUpperJSON decodes the body, upper-cases every string in it except the values
// of identifier keys, and decodes the result into dest.
func bindUpperJSON(c *gin.Context, dest any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return ierr.WithError(err).WithHint("Invalid request format").Mark(ierr.ErrValidation)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return ierr.WithError(err).WithHint("Invalid request format").Mark(ierr.ErrValidation)
	}

	upper, err := json.Marshal(UpperCaseStrings(doc, identifierKeys...))
	if err != nil {
		return ierr.WithError(err).WithHint("Invalid request format").Mark(ierr.ErrValidation)
	}
	if err := json.Unmarshal(upper, dest); err != nil {
		return ierr.WithError(err).WithHint("Invalid request format").Mark(ierr.ErrValidation)
	}
	return nil
}

// identifierKeys hold document ids, which must keep their case to resolve.
var identifierKeys = []string{"id", "orderId"}

// UpperCaseStrings returns a copy of a decoded JSON value with all strings
// upper-cased. Strings stored directly under a key listed in keep are left as is.
func UpperCaseStrings(v any, keep ...string) any {
	switch val := v.(type) {
	case string:
		return strings.ToUpper(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = UpperCaseStrings(item, keep...)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if _, isString := item.(string); isString && lo.Contains(keep, k) {
				out[k] = item
				continue
			}
			out[k] = UpperCaseStrings(item, keep...)
		}
		return out
	default:
		return v
	}
}
