package handlers

import (
	"net/http"

	"glass_office/internal/models"
	"glass_office/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RequestHandler struct {
	residentialService services.ResidentialRequestService
	serviceService     services.ServiceRequestService
	log                *zap.Logger
}

func NewRequestHandler(
	residentialService services.ResidentialRequestService,
	serviceService services.ServiceRequestService,
	log *zap.Logger,
) *RequestHandler {
	return &RequestHandler{residentialService: residentialService, serviceService: serviceService, log: log}
}

// Residential requests

func (h *RequestHandler) ListResidentialRequests(c *gin.Context) {
	reqs, err := h.residentialService.GetAllRequests(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *RequestHandler) GetResidentialRequest(c *gin.Context) {
	req, err := h.residentialService.GetRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) CreateResidentialRequest(c *gin.Context) {
	var in models.ResidentialRequestInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	req, err := h.residentialService.CreateRequest(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *RequestHandler) UpdateResidentialRequest(c *gin.Context) {
	var patch models.ResidentialRequestPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	req, err := h.residentialService.UpdateRequest(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) DeleteResidentialRequest(c *gin.Context) {
	if err := h.residentialService.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}

// Service requests

func (h *RequestHandler) ListServiceRequests(c *gin.Context) {
	reqs, err := h.serviceService.GetAllRequests(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *RequestHandler) GetServiceRequest(c *gin.Context) {
	req, err := h.serviceService.GetRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) CreateServiceRequest(c *gin.Context) {
	var in models.ServiceRequestInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	req, err := h.serviceService.CreateRequest(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *RequestHandler) UpdateServiceRequest(c *gin.Context) {
	var patch models.ServiceRequestPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	req, err := h.serviceService.UpdateRequest(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) DeleteServiceRequest(c *gin.Context) {
	if err := h.serviceService.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}
