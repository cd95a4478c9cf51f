package handlers

import (
	"net/http"
	"strings"

	"glass_office/internal/models"
	"glass_office/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService   services.OrderService
	invoiceService services.InvoiceService
	log            *zap.Logger
}

func NewOrderHandler(orderService services.OrderService, invoiceService services.InvoiceService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, invoiceService: invoiceService, log: log}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns the order as JSON, or rendered markup when ?print=<kind> is set.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if kind := strings.TrimSpace(c.Query("print")); kind != "" {
		html, err := h.orderService.PrintOrder(c.Request.Context(), id, kind)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		respondHTML(c, html)
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var in models.OrderInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	order, err := h.orderService.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var patch models.OrderPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}

func (h *OrderHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.GetAllInvoices(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *OrderHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice answers 201 with the new invoice, or 200 with the existing number
// when the order was already invoiced.
func (h *OrderHandler) CreateInvoice(c *gin.Context) {
	var in models.InvoiceInput
	if err := bindUpperJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	out, err := h.invoiceService.CreateInvoice(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if out.AlreadyInvoiced {
		c.JSON(http.StatusOK, gin.H{
			"alreadyInvoiced": true,
			"orderId":         out.OrderID,
			"orderNumber":     out.OrderNumber,
			"invoiceNumber":   out.InvoiceNumber,
		})
		return
	}
	c.JSON(http.StatusCreated, out.Invoice)
}
