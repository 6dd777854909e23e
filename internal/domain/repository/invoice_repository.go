package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
)

// InvoiceSummary agregado de facturación para el reporte. Lo produce la DB;
// el builder de reportes lo convierte en HTML.
type InvoiceSummary struct {
	Count      int
	NetTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	// AllByCompany lista completa sin paginar, para el agregador de búsqueda.
	AllByCompany(companyID string) ([]entity.Invoice, error)
	// Summarize agrega conteo y totales de las facturas del período.
	Summarize(companyID string, from, to time.Time) (InvoiceSummary, error)
	Update(invoice *entity.Invoice) error
}
