package handlers

import (
	"net/http"

	"glass_office/internal/models"
	"glass_office/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PurchaseOrderHandler struct {
	poService services.PurchaseOrderService
	log       *zap.Logger
}

func NewPurchaseOrderHandler(poService services.PurchaseOrderService, log *zap.Logger) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService, log: log}
}

func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	pos, err := h.poService.GetAllPurchaseOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	id := c.Param("id")
	if c.Query("print") != "" {
		html, err := h.poService.PrintPurchaseOrder(c.Request.Context(), id)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		respondHTML(c, html)
		return
	}

	po, err := h.poService.GetPurchaseOrderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var in models.PurchaseOrderInput
	if err := bindUpperJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	po, err := h.poService.CreatePurchaseOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *PurchaseOrderHandler) UpdatePurchaseOrder(c *gin.Context) {
	var patch models.PurchaseOrderPatch
	if err := bindUpperJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	po, err := h.poService.UpdatePurchaseOrder(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchaseOrderHandler) DeletePurchaseOrder(c *gin.Context) {
	if err := h.poService.DeletePurchaseOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}
