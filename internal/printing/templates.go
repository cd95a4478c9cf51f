package printing

const baseTemplates = `
{{define "styles"}}<style>
  body { font-family: Arial, sans-serif; margin: 24px; color:#000; }
  h1,h2,h3 { margin: 0; }
  .row { display:flex; justify-content:space-between; gap:16px; align-items:flex-start; }
  .box { border:1px solid #000; padding:12px; }
  .small { font-size:12px; }
  table { width:100%; border-collapse:collapse; margin-top:12px; }
  th, td { border:1px solid #000; padding:8px; font-size:12px; vertical-align:top; }
  .right { text-align:right; }
  .totals { width: 320px; margin-left:auto; margin-top:12px; }
  .signature { margin-top:28px; display:flex; gap:24px; }
  .sigline { flex:1; border-top:1px solid #000; padding-top:6px; min-height:24px; }
  .notes { margin-top:12px; border:2px solid #000; padding:10px; min-height:80px; }
  @page { margin: 14mm; }
</style>{{end}}

{{define "header"}}
<div class="row" style="align-items:center;">
  <div style="display:flex; gap:12px; align-items:center;">
    <img src="{{.Company.Logo}}" alt="{{.Company.Name}} logo" style="height:62px; width:auto;" />
    <div>
      <h1>{{.Company.Name}}</h1>
      <div class="small">{{.Company.Address}}</div>
      <div class="small">{{.Company.Phone}}</div>
      <div class="small">{{.Company.Email}}</div>
    </div>
  </div>
  <div class="box"><b>{{.Title}}</b></div>
</div>
{{end}}

{{define "items"}}
<table>
  <thead>
    <tr><th style="width:40px;">#</th><th>Description</th><th style="width:70px;">Qty</th><th style="width:90px;">Unit</th><th style="width:90px;">Total</th></tr>
  </thead>
  <tbody>
  {{- range .Lines}}
    <tr>
      <td>{{.Index}}</td>
      <td>{{.Description}}</td>
      <td class="right">{{.Qty}}</td>
      <td class="right">{{.UnitPrice}}</td>
      <td class="right">{{.Total}}</td>
    </tr>
  {{- else}}
    <tr><td colspan="5">No line items</td></tr>
  {{- end}}
  </tbody>
</table>
{{end}}

{{define "totals"}}
<table class="totals">
  <tr><td>Subtotal</td><td class="right">{{.Totals.Subtotal}}</td></tr>
  <tr><td>Tax</td><td class="right">{{.Totals.Tax}}</td></tr>
  <tr><td><b>Total</b></td><td class="right"><b>{{.Totals.Total}}</b></td></tr>
</table>
{{end}}

{{define "customer"}}
{{.Customer.Name}}<br/>
{{.Customer.Company}}<br/>
{{.Customer.Phone}}<br/>
{{.Customer.Email}}<br/>
{{.Customer.Address}}
{{end}}
`

const quoteTemplate = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Quote {{.Order.OrderNumber}}</title>
  {{template "styles"}}
</head>
<body>
  {{template "header" .}}
  <div class="row" style="margin-top:12px;">
    <div></div>
    <div class="box">
      <div>Quote #: <b>{{.Order.OrderNumber}}</b></div>
      <div>Date Saved: {{.DateSaved}}</div>
      <div>Valid Through: <b>{{.ValidThrough}}</b></div>
    </div>
  </div>
  <div class="row" style="margin-top:12px;">
    <div class="box" style="flex:1;"><b>Customer</b><br/>{{template "customer" .}}</div>
    <div class="box" style="flex:1;"><b>Notes</b><br/>{{.Order.Notes}}</div>
  </div>
  {{template "items" .}}
  {{template "totals" .}}
  <p class="small" style="margin-top:12px;">
    This quote is good for <b>{{.ValidityDays}} days</b> from <b>{{.DateSaved}}</b>.
  </p>
  <div class="signature">
    <div style="flex:2;"><div class="sigline">Customer Signature</div></div>
    <div style="flex:1;"><div class="sigline">Date</div></div>
  </div>
</body>
</html>`

const ticketTemplate = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Shop Ticket {{.Order.OrderNumber}}</title>
  {{template "styles"}}
</head>
<body>
  {{template "header" .}}
  <div class="small" style="margin-top:8px;">
    Order #: <b>{{.Order.OrderNumber}}</b> | Date Saved: {{.DateSaved}} | Customer: {{.CustomerLabel}}
  </div>
  <table>
    <thead>
      <tr>
        <th style="width:40px;">#</th><th style="width:70px;">Qty</th><th style="width:140px;">Size</th>
        <th style="width:140px;">Glass</th><th style="width:70px;">Thk</th><th style="width:140px;">Edge/Bevel</th>
        <th style="width:70px;">Temp</th><th>Notes</th>
      </tr>
    </thead>
    <tbody>
    {{- range .Lines}}
      <tr>
        <td>{{.Index}}</td>
        <td class="right"><b>{{.Qty}}</b></td>
        <td><b>{{.Size}}</b></td>
        <td>{{.Glass}}</td>
        <td>{{.Thickness}}</td>
        <td>{{.Edge}}</td>
        <td class="right">{{.Tempered}}</td>
        <td>{{.TicketNotes}}</td>
      </tr>
    {{- else}}
      <tr><td colspan="8">No line items</td></tr>
    {{- end}}
    </tbody>
  </table>
  <div class="notes"><b>Shop Notes:</b><br/>{{.ShopNotes}}</div>
</body>
</html>`

const packingListTemplate = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Packing List {{.Order.OrderNumber}}</title>
  {{template "styles"}}
</head>
<body>
  {{template "header" .}}
  <div class="small" style="margin-top:10px;">
    Order #: <b>{{.Order.OrderNumber}}</b> | Order Date: {{.DateSaved}} | Customer: {{.CustomerLabel}} |
    Source: <b>{{if .FromVendor}}Vendor{{else}}Shop{{end}}</b>
    {{- if .FromVendor}} | Vendor: <b>{{.Order.VendorName}}</b> | PO #: <b>{{.Order.VendorPoNumber}}</b>{{end}}
  </div>
  <table>
    <thead>
      <tr><th style="width:40px;">#</th><th style="width:80px;">Qty</th><th style="width:180px;">Size</th><th style="width:220px;">Glass Type</th><th>Notes</th></tr>
    </thead>
    <tbody>
    {{- range .Lines}}
      <tr>
        <td>{{.Index}}</td>
        <td class="right">{{.Qty}}</td>
        <td>{{.Size}}</td>
        <td>{{.Glass}}</td>
        <td>{{.PackNotes}}</td>
      </tr>
    {{- else}}
      <tr><td colspan="5">No line items</td></tr>
    {{- end}}
    </tbody>
  </table>
  {{template "totals" .}}
</body>
</html>`

const orderPurchaseOrderTemplate = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Purchase Order {{.Order.OrderNumber}}</title>
  {{template "styles"}}
</head>
<body>
  {{template "header" .}}
  <div class="row" style="margin-top:12px;">
    <div class="box" style="flex:1;"><b>Vendor</b><br/>{{.Order.VendorName}}</div>
    <div class="box" style="flex:1;">
      <div>Order #: <b>{{.Order.OrderNumber}}</b></div>
      <div>PO #: <b>{{.Order.VendorPoNumber}}</b></div>
      <div>Requested Date: <b>{{.RequestedDate}}</b></div>
      <div>Order Date: {{.DateSaved}}</div>
    </div>
  </div>
  {{template "items" .}}
  {{template "totals" .}}
</body>
</html>`

const invoiceTemplate = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Order.OrderNumber}}</title>
  {{template "styles"}}
</head>
<body>
  {{template "header" .}}
  <div class="row" style="margin-top:12px;">
    <div></div>
    <div class="box">
      <div><b>INVOICE</b></div>
      <div>Invoice #: <b>{{.InvoiceNumber}}</b></div>
      <div>Invoice Date: {{.InvoiceDate}}</div>
      <div>Order Date: {{.DateSaved}}</div>
    </div>
  </div>
  <div class="box" style="margin-top:12px;"><b>Bill To</b><br/>{{template "customer" .}}</div>
  {{template "items" .}}
  {{template "totals" .}}
  <p class="small" style="margin-top:12px;">
    Terms: {{.Terms}}<br/>
    Thank you for your business.
  </p>
</body>
</html>`

const purchaseOrderTemplate = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>{{.DocName}} {{.PO.PoNumber}}</title>
  {{template "styles"}}
</head>
<body>
  {{template "header" .}}
  <div class="row" style="margin-top:12px;">
    <div class="box" style="flex:1;"><b>Vendor</b><br/>{{.PO.Vendor}}</div>
    <div class="box" style="flex:1;">
      <div>Order #: <b>{{.PO.OrderNumber}}</b></div>
      <div>PO #: <b>{{.PO.PoNumber}}</b></div>
      <div>Requested Date: <b>{{.RequestedDate}}</b></div>
      <div>Order Date: {{.DateOrdered}}</div>
    </div>
  </div>
  <table>
    <thead><tr><th style="width:40px;">#</th><th>Description</th><th style="width:70px;">Qty</th></tr></thead>
    <tbody>
    {{- range .Lines}}
      <tr><td>{{.Index}}</td><td>{{.Label}}</td><td class="right">{{.Qty}}</td></tr>
    {{- else}}
      <tr><td colspan="3">No line items</td></tr>
    {{- end}}
    </tbody>
  </table>
</body>
</html>`
