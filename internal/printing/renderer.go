package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"

	"github.com/shopspring/decimal"
)

// QuoteValidityDays is how long a printed quote stays valid after the order was saved.
const QuoteValidityDays = 30

// DateLayout is the printed date format.
const DateLayout = "01/02/2006"

// Company is the letterhead printed on every document.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Logo    string
}

// DefaultCompany is the shop letterhead.
var DefaultCompany = Company{
	Name:    "Kentucky Mirror and Plate Glass",
	Address: "822 W Main St, Louisville KY 40202",
	Phone:   "502-583-5541",
	Email:   "info@kymirror.com",
	Logo:    "/good%20logo.jpg",
}

var templates = func() *template.Template {
	t := template.Must(template.New("base").Parse(baseTemplates))
	for name, body := range map[string]string{
		string(KindQuote):         quoteTemplate,
		string(KindTicket):        ticketTemplate,
		string(KindPackingList):   packingListTemplate,
		string(KindInvoice):       invoiceTemplate,
		string(KindPurchaseOrder): orderPurchaseOrderTemplate,
		"po-document":             purchaseOrderTemplate,
	} {
		template.Must(t.New(name).Parse(body))
	}
	return t
}()

var docTitles = map[Kind]string{
	KindQuote:         "QUOTE",
	KindTicket:        "SHOP TICKET",
	KindPackingList:   "PACKING LIST",
	KindInvoice:       "INVOICE",
	KindPurchaseOrder: "PURCHASE ORDER",
}

// Renderer turns documents into HTML.
type Renderer struct {
	company Company
	now     func() time.Time
}

// RendererOption configures the renderer
type RendererOption func(*Renderer)

// WithClock sets the clock used when a document carries no usable date.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) { r.now = now }
}

// WithCompany overrides the letterhead.
func WithCompany(c Company) RendererOption {
	return func(r *Renderer) { r.company = c }
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{company: DefaultCompany, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Totals is the totals block: Tax = max(0, Total - Subtotal).
type Totals struct {
	Subtotal string
	Tax      string
	Total    string
}

// ComputeTotals derives the totals block from an order's stored totals. A zero
// total-with-tax is treated as absent and falls back to the subtotal.
func ComputeTotals(grandTotal, grandTotalWithTax float64) Totals {
	subtotal := decimal.NewFromFloat(grandTotal)
	total := decimal.NewFromFloat(grandTotalWithTax)
	if total.IsZero() {
		total = subtotal
	}
	tax := decimal.Max(decimal.Zero, total.Sub(subtotal))
	return Totals{
		Subtotal: subtotal.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    total.StringFixed(2),
	}
}

type orderView struct {
	Company       Company
	Title         string
	Order         *models.Order
	Customer      models.CustomerInfo
	CustomerLabel string
	Lines         []Line
	Totals        Totals
	DateSaved     string
	ValidThrough  string
	ValidityDays  int
	InvoiceNumber string
	InvoiceDate   string
	RequestedDate string
	Terms         string
	ShopNotes     string
	FromVendor    bool
}

// RenderOrder renders one of the order views.
func (r *Renderer) RenderOrder(order *models.Order, kind Kind) (string, error) {
	title, ok := docTitles[kind]
	if !ok {
		return "", ierr.Validation("Invalid print type")
	}

	saved := order.CreatedAt
	if saved.IsZero() {
		saved = r.now()
	}

	customerLabel := order.Customer.Name
	if customerLabel == "" {
		customerLabel = order.Customer.Company
	}

	view := orderView{
		Company:       r.company,
		Title:         title,
		Order:         order,
		Customer:      order.Customer,
		CustomerLabel: customerLabel,
		Lines:         NormalizeItems(order.Items),
		Totals:        ComputeTotals(order.GrandTotal, order.GrandTotalWithTax),
		DateSaved:     formatTime(saved),
		ValidityDays:  QuoteValidityDays,
		ShopNotes:     firstNonEmpty(order.ShopNotes, order.Notes),
		FromVendor:    order.Status == models.OrderVendor,
	}

	switch kind {
	case KindQuote:
		view.ValidThrough = formatTime(QuoteValidThrough(saved))
	case KindInvoice:
		invoiceDate := saved
		if order.InvoiceDate != nil && !order.InvoiceDate.IsZero() {
			invoiceDate = *order.InvoiceDate
		}
		view.InvoiceDate = formatTime(invoiceDate)
		view.InvoiceNumber = DisplayInvoiceNumber(order)
		view.Terms = firstNonEmpty(order.Terms, "Due upon receipt")
	case KindPurchaseOrder:
		view.RequestedDate = formatDateString(order.RequestedDate)
		if view.RequestedDate == "" {
			view.RequestedDate = view.DateSaved
		}
	}

	return execute(string(kind), view)
}

// QuoteValidThrough is the last day a quote saved at t is valid.
func QuoteValidThrough(saved time.Time) time.Time {
	return saved.AddDate(0, 0, QuoteValidityDays)
}

var leadingO = regexp.MustCompile(`^[oO]`)

// DisplayInvoiceNumber is the number printed on the invoice view: "i"+sequence when
// the order has one, else the order number with its leading "o" turned into "i".
func DisplayInvoiceNumber(order *models.Order) string {
	if order.SequenceNumber > 0 {
		return "i" + strconv.FormatInt(order.SequenceNumber, 10)
	}
	return leadingO.ReplaceAllString(order.OrderNumber, "i")
}

type purchaseOrderView struct {
	Company       Company
	Title         string
	DocName       string
	PO            *models.PurchaseOrder
	Lines         []Line
	RequestedDate string
	DateOrdered   string
}

// RenderPurchaseOrder renders a stored purchase order.
func (r *Renderer) RenderPurchaseOrder(po *models.PurchaseOrder) (string, error) {
	view := purchaseOrderView{
		Company:       r.company,
		Title:         "PURCHASE ORDER",
		DocName:       "Purchase Order",
		PO:            po,
		Lines:         NormalizeItems(po.Items),
		RequestedDate: formatDateString(po.RequestedDate),
		DateOrdered:   formatDateString(po.DateOrdered),
	}
	if po.Internal() {
		view.Title = "INTERNAL PO"
		view.DocName = "Internal PO"
	}
	return execute("po-document", view)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04", "2006-01-02", DateLayout}

// formatDateString prints a user-entered date; unparseable input prints as blank.
func formatDateString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatTime(t)
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
