package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice representa la cabecera de una factura.
// CustomerName se desnormaliza para búsquedas y render sin join adicional.
type Invoice struct {
	ID           string
	CompanyID    string
	CustomerID   string
	Number       string // consecutivo visible, ej. "INV-00042"
	CustomerName string
	Date         time.Time
	NetTotal     decimal.Decimal
	TaxTotal     decimal.Decimal
	GrandTotal   decimal.Decimal
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
