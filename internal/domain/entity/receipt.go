package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt representa un recibo de pago emitido contra una venta.
type Receipt struct {
	ID           string
	CompanyID    string
	InvoiceID    string // opcional; vacío = venta directa sin factura
	Number       string // consecutivo visible, ej. "RCP-00007"
	CustomerName string
	Total        decimal.Decimal
	Date         time.Time
	CreatedAt    time.Time
}
