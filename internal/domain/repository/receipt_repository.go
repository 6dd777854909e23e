package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
)

// ReceiptSummary agregado de recibos para el reporte.
type ReceiptSummary struct {
	Count int
	Total decimal.Decimal
}

// ReceiptRepository define el puerto de persistencia para Receipt (DIP).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Receipt, error)
	// AllByCompany lista completa sin paginar, para el agregador de búsqueda.
	AllByCompany(companyID string) ([]entity.Receipt, error)
	// Summarize agrega conteo y total de los recibos del período.
	Summarize(companyID string, from, to time.Time) (ReceiptSummary, error)
}
