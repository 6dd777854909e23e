package dto

import "github.com/shopspring/decimal"

// SearchInvoiceDTO coincidencia de factura en la búsqueda.
type SearchInvoiceDTO struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	Status       string          `json:"status"`
}

// SearchCustomerDTO coincidencia de cliente en la búsqueda.
type SearchCustomerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SearchProductDTO coincidencia de producto en la búsqueda.
type SearchProductDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// SearchReceiptDTO coincidencia de recibo en la búsqueda.
type SearchReceiptDTO struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
}

// SearchResponse buckets por tipo, en el orden fijo facturas, clientes,
// productos, recibos. Sin ranking combinado.
type SearchResponse struct {
	Query     string              `json:"query"`
	Total     int                 `json:"total"`
	Invoices  []SearchInvoiceDTO  `json:"invoices"`
	Customers []SearchCustomerDTO `json:"customers"`
	Products  []SearchProductDTO  `json:"products"`
	Receipts  []SearchReceiptDTO  `json:"receipts"`
}
