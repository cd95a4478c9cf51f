package handlers

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	API            *APIHandler
	Orders         *OrderHandler
	PurchaseOrders *PurchaseOrderHandler
	Requests       *RequestHandler
	Directory      *DirectoryHandler
	Technicians    *TechnicianHandler
	ServiceTechs   *TechnicianHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")

	api.GET("/health", h.API.Health)

	orders := api.Group("/orders")
	{
		orders.GET("", h.Orders.ListOrders)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.POST("", h.Orders.CreateOrder)
		orders.PUT("/:id", h.Orders.UpdateOrder)
		orders.DELETE("/:id", h.Orders.DeleteOrder)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", h.Orders.ListInvoices)
		invoices.GET("/:id", h.Orders.GetInvoice)
		invoices.POST("", h.Orders.CreateInvoice)
	}

	pos := api.Group("/purchase-orders")
	{
		pos.GET("", h.PurchaseOrders.ListPurchaseOrders)
		pos.GET("/:id", h.PurchaseOrders.GetPurchaseOrder)
		pos.POST("", h.PurchaseOrders.CreatePurchaseOrder)
		pos.PUT("/:id", h.PurchaseOrders.UpdatePurchaseOrder)
		pos.DELETE("/:id", h.PurchaseOrders.DeletePurchaseOrder)
	}

	quotes := api.Group("/quotes")
	{
		quotes.GET("", h.Directory.ListQuotes)
		quotes.GET("/:id", h.Directory.GetQuote)
		quotes.POST("", h.Directory.CreateQuote)
		quotes.PUT("/:id", h.Directory.UpdateQuote)
		quotes.DELETE("/:id", h.Directory.DeleteQuote)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", h.Directory.ListCustomers)
		customers.GET("/:id", h.Directory.GetCustomer)
		customers.POST("", h.Directory.CreateCustomer)
		customers.PUT("/:id", h.Directory.UpdateCustomer)
		customers.DELETE("/:id", h.Directory.DeleteCustomer)
	}
	api.POST("/customers-import", h.Directory.ImportCustomers)

	vendors := api.Group("/vendors")
	{
		vendors.GET("", h.Directory.ListVendors)
		vendors.GET("/:id", h.Directory.GetVendor)
		vendors.POST("", h.Directory.CreateVendor)
		vendors.PUT("/:id", h.Directory.UpdateVendor)
		vendors.DELETE("/:id", h.Directory.DeleteVendor)
	}
	api.POST("/vendors-import", h.Directory.ImportVendors)

	registerTechnicianRoutes(api.Group("/technicians"), h.Technicians)
	registerTechnicianRoutes(api.Group("/service-techs"), h.ServiceTechs)

	residential := api.Group("/residential-requests")
	{
		residential.GET("", h.Requests.ListResidentialRequests)
		residential.GET("/:id", h.Requests.GetResidentialRequest)
		residential.POST("", h.Requests.CreateResidentialRequest)
		residential.PUT("/:id", h.Requests.UpdateResidentialRequest)
		residential.DELETE("/:id", h.Requests.DeleteResidentialRequest)
	}

	service := api.Group("/service-requests")
	{
		service.GET("", h.Requests.ListServiceRequests)
		service.GET("/:id", h.Requests.GetServiceRequest)
		service.POST("", h.Requests.CreateServiceRequest)
		service.PUT("/:id", h.Requests.UpdateServiceRequest)
		service.DELETE("/:id", h.Requests.DeleteServiceRequest)
	}
}

func registerTechnicianRoutes(g *gin.RouterGroup, h *TechnicianHandler) {
	g.GET("", h.ListTechnicians)
	g.GET("/:id", h.GetTechnician)
	g.POST("", h.CreateTechnician)
	g.PUT("/:id", h.UpdateTechnician)
	g.DELETE("/:id", h.DeleteTechnician)
}
