package handlers

import (
	"net/http"

	"glass_office/internal/models"
	"glass_office/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DirectoryHandler struct {
	customerService services.CustomerService
	vendorService   services.VendorService
	quoteService    services.QuoteService
	log             *zap.Logger
}

func NewDirectoryHandler(
	customerService services.CustomerService,
	vendorService services.VendorService,
	quoteService services.QuoteService,
	log *zap.Logger,
) *DirectoryHandler {
	return &DirectoryHandler{
		customerService: customerService,
		vendorService:   vendorService,
		quoteService:    quoteService,
		log:             log,
	}
}

// Customers

func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *DirectoryHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *DirectoryHandler) CreateCustomer(c *gin.Context) {
	var in models.CustomerInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	customer, err := h.customerService.CreateCustomer(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *DirectoryHandler) UpdateCustomer(c *gin.Context) {
	var patch models.CustomerPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *DirectoryHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}

func (h *DirectoryHandler) ImportCustomers(c *gin.Context) {
	var body struct {
		Customers []models.CustomerInput `json:"customers"`
	}
	if err := bindJSON(c, &body); err != nil {
		respondError(c, h.log, err)
		return
	}
	result, err := h.customerService.ImportCustomers(c.Request.Context(), body.Customers)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Vendors

func (h *DirectoryHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorService.GetAllVendors(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *DirectoryHandler) GetVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *DirectoryHandler) CreateVendor(c *gin.Context) {
	var in models.VendorInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *DirectoryHandler) UpdateVendor(c *gin.Context) {
	var patch models.VendorPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *DirectoryHandler) DeleteVendor(c *gin.Context) {
	if err := h.vendorService.DeleteVendor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}

// ImportVendors upper-cases the payload before creating vendors.
func (h *DirectoryHandler) ImportVendors(c *gin.Context) {
	var body struct {
		Vendors []models.VendorInput `json:"vendors"`
	}
	if err := bindUpperJSON(c, &body); err != nil {
		respondError(c, h.log, err)
		return
	}
	result, err := h.vendorService.ImportVendors(c.Request.Context(), body.Vendors)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Quotes

func (h *DirectoryHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quoteService.GetAllQuotes(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *DirectoryHandler) GetQuote(c *gin.Context) {
	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *DirectoryHandler) CreateQuote(c *gin.Context) {
	var in models.QuoteInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	quote, err := h.quoteService.CreateQuote(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, quote)
}

func (h *DirectoryHandler) UpdateQuote(c *gin.Context) {
	var patch models.QuotePatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *DirectoryHandler) DeleteQuote(c *gin.Context) {
	if err := h.quoteService.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}

// TechnicianHandler serves one technician collection.
type TechnicianHandler struct {
	techService services.TechnicianService
	log         *zap.Logger
}

func NewTechnicianHandler(techService services.TechnicianService, log *zap.Logger) *TechnicianHandler {
	return &TechnicianHandler{techService: techService, log: log}
}

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	techs, err := h.techService.GetAllTechnicians(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, techs)
}

func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	tech, err := h.techService.GetTechnicianByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var in models.TechnicianInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, h.log, err)
		return
	}
	tech, err := h.techService.CreateTechnician(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, tech)
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	var patch models.TechnicianPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, h.log, err)
		return
	}
	tech, err := h.techService.UpdateTechnician(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	if err := h.techService.DeleteTechnician(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondDeleted(c)
}
