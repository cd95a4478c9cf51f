package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glass_office/internal/models"
	"glass_office/internal/printing"
	"glass_office/internal/repository"
	"glass_office/internal/services"
	"glass_office/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, pinger Pinger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	log := zap.NewNop()
	renderer := printing.NewRenderer(printing.WithClock(testClock))
	notifier := services.NewNotifier(nil, time.Second, log, testClock)

	orderRepo := repository.NewOrderRepository(s)
	seqRepo := repository.NewSequenceRepository(s)
	techRepo := repository.NewTechnicianRepository(s, store.Technicians)
	serviceTechRepo := repository.NewTechnicianRepository(s, store.ServiceTechs)

	orderSvc := services.NewOrderService(orderRepo, seqRepo, renderer, log, testClock)
	invoiceSvc := services.NewInvoiceService(repository.NewInvoiceRepository(s), orderRepo, seqRepo, log, testClock)
	poSvc := services.NewPurchaseOrderService(repository.NewPurchaseOrderRepository(s), orderRepo, renderer, log, testClock)
	residentialSvc := services.NewResidentialRequestService(
		repository.NewResidentialRequestRepository(s), serviceTechRepo, seqRepo, notifier, log, testClock)
	serviceSvc := services.NewServiceRequestService(
		repository.NewServiceRequestRepository(s), techRepo, notifier, log, testClock)

	router := gin.New()
	router.Use(CORS("*"))
	RegisterRoutes(router, Handlers{
		API:            NewAPIHandler("memory", pinger, log),
		Orders:         NewOrderHandler(orderSvc, invoiceSvc, log),
		PurchaseOrders: NewPurchaseOrderHandler(poSvc, log),
		Requests:       NewRequestHandler(residentialSvc, serviceSvc, log),
		Directory: NewDirectoryHandler(
			services.NewCustomerService(repository.NewCustomerRepository(s), log, testClock),
			services.NewVendorService(repository.NewVendorRepository(s), log, testClock),
			services.NewQuoteService(repository.NewQuoteRepository(s), testClock),
			log,
		),
		Technicians:  NewTechnicianHandler(services.NewTechnicianService(techRepo, testClock), log),
		ServiceTechs: NewTechnicianHandler(services.NewTechnicianService(serviceTechRepo, testClock), log),
	})
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestUpperCaseStrings(t *testing.T) {
	in := map[string]any{
		"orderId": "order_abc",
		"vendor":  "acme glass",
		"items": []any{
			map[string]any{"id": "line-1", "notes": "clear 1/4\"", "qty": json.Number("2")},
		},
		"syncToOrder": true,
	}

	got := UpperCaseStrings(in, "id", "orderId").(map[string]any)
	assert.Equal(t, "order_abc", got["orderId"])
	assert.Equal(t, "ACME GLASS", got["vendor"])
	assert.Equal(t, true, got["syncToOrder"])

	item := got["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "line-1", item["id"])
	assert.Equal(t, "CLEAR 1/4\"", item["notes"])
	assert.Equal(t, json.Number("2"), item["qty"])

	// input is not mutated
	assert.Equal(t, "acme glass", in["vendor"])
}

func TestCORS_Preflight(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodOptions, "/api/orders", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS("https://office.example.com, https://shop.example.com"))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t, nil), http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "memory", decode[map[string]any](t, w)["backend"])

	w = do(t, newTestRouter(t, stubPinger{err: errors.New("connection refused")}), http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestOrders_CreateGetPrint(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/orders", map[string]any{
		"customer":          map[string]any{"name": "Oak Homes"},
		"items":             []any{map[string]any{"qty": 1, "notes": "<script>alert(1)</script>"}},
		"grandTotal":        100,
		"grandTotalWithTax": 107,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode[models.Order](t, w)
	assert.Equal(t, "o1000", order.OrderNumber)

	w = do(t, router, http.MethodGet, "/api/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.ID, decode[models.Order](t, w).ID)

	w = do(t, router, http.MethodGet, "/api/orders/"+order.ID+"?print=quote", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "02/14/2025")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
	assert.NotContains(t, w.Body.String(), "<script>alert")

	w = do(t, router, http.MethodGet, "/api/orders/"+order.ID+"?print=receipt", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid print type", decode[map[string]string](t, w)["error"])

	w = do(t, router, http.MethodGet, "/api/orders?search=oak", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Order](t, w), 1)
}

func TestOrders_NotFound(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/orders/order_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decode[map[string]string](t, w)["error"])

	w = do(t, router, http.MethodPut, "/api/orders/order_missing", map[string]any{"notes": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoices_CreateTwice(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/orders", map[string]any{"customer": map[string]any{"name": "jo"}})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode[models.Order](t, w)

	w = do(t, router, http.MethodPost, "/api/invoices", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "orderId is required", decode[map[string]string](t, w)["error"])

	w = do(t, router, http.MethodPost, "/api/invoices", map[string]any{"orderId": order.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	invoice := decode[models.Invoice](t, w)
	assert.Equal(t, "I1000", invoice.InvoiceNumber)
	assert.Equal(t, order.ID, invoice.OrderID)

	w = do(t, router, http.MethodPost, "/api/invoices", map[string]any{"orderId": order.ID})
	require.Equal(t, http.StatusOK, w.Code)
	again := decode[map[string]any](t, w)
	assert.Equal(t, true, again["alreadyInvoiced"])
	assert.Equal(t, "I1000", again["invoiceNumber"])

	w = do(t, router, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Invoice](t, w), 1)
}

func TestPurchaseOrders_UpperCasedAndSynced(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/orders", map[string]any{})
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode[models.Order](t, w)

	w = do(t, router, http.MethodPost, "/api/purchase-orders", map[string]any{
		"orderId":  order.ID,
		"vendor":   "acme glass",
		"poType":   "external",
		"status":   "received",
		"poNumber": "po-9",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	po := decode[models.PurchaseOrder](t, w)
	assert.Equal(t, order.ID, po.OrderID)
	assert.Equal(t, "ACME GLASS", po.Vendor)
	assert.True(t, po.OrderSync.Synced)

	w = do(t, router, http.MethodGet, "/api/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	synced := decode[models.Order](t, w)
	assert.Equal(t, models.OrderReceivedVendor, synced.Status)
	assert.Equal(t, "ACME GLASS", synced.VendorName)

	w = do(t, router, http.MethodGet, "/api/purchase-orders/"+po.ID+"?print=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PURCHASE ORDER")
}

func TestResidentialRequests_CreateAndUnknownTech(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/residential-requests", map[string]any{"description": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Customer name is required", decode[map[string]string](t, w)["error"])

	w = do(t, router, http.MethodPost, "/api/residential-requests", map[string]any{
		"customer":     map[string]any{"name": "Jo"},
		"assignedTech": "Somebody",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	req := decode[models.ResidentialRequest](t, w)
	assert.Equal(t, "RR-0001", req.RequestNumber)
	require.NotNil(t, req.EmailNotification)
	assert.False(t, req.EmailNotification.Sent)

	w = do(t, router, http.MethodPut, "/api/residential-requests/"+req.ID, map[string]any{"assignedTech": "Nobody"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.ResidentialRequest](t, w)
	assert.Equal(t, "Nobody", updated.AssignedTech)
	assert.Empty(t, updated.AssignedTechID)
	assert.Empty(t, updated.AssignedTechEmail)
}

func TestDirectory_ImportsAndTechnicians(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/vendors-import", map[string]any{"vendors": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "An array of vendors is required", decode[map[string]string](t, w)["error"])

	w = do(t, router, http.MethodPost, "/api/vendors-import", map[string]any{
		"vendors": []any{map[string]any{"name": "acme"}, map[string]any{"name": ""}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.ImportResult](t, w)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)

	w = do(t, router, http.MethodGet, "/api/vendors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	vendors := decode[[]models.Vendor](t, w)
	require.Len(t, vendors, 1)
	assert.Equal(t, "ACME", vendors[0].Name)

	w = do(t, router, http.MethodPost, "/api/service-techs", map[string]any{"name": "Dana"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodGet, "/api/technicians", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Technician](t, w))

	w = do(t, router, http.MethodGet, "/api/service-techs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Technician](t, w), 1)
}

func TestCustomers_CRUD(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodPost, "/api/customers", map[string]any{"phone": "555"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Customer name is required", decode[map[string]string](t, w)["error"])

	w = do(t, router, http.MethodPost, "/api/customers", map[string]any{"name": "Oak Homes", "creditTerms": "NET 30"})
	require.Equal(t, http.StatusCreated, w.Code)
	customer := decode[models.Customer](t, w)

	w = do(t, router, http.MethodPut, "/api/customers/"+customer.ID, map[string]any{"phone": "555-0101"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Customer](t, w)
	assert.Equal(t, "Oak Homes", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone)

	w = do(t, router, http.MethodDelete, "/api/customers/"+customer.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/customers/"+customer.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
