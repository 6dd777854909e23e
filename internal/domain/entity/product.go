package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados del stock (calculados por la capa de datos, no aquí).
const (
	ProductStatusInStock  = "in_stock"
	ProductStatusLowStock = "low_stock"
	ProductStatusOutStock = "out_of_stock"
)

// Product representa un producto o SKU del inventario.
// Quantity se modifica únicamente persistiendo el resultado del calculador de
// ajustes (stock.ComputeAdjustment); el dominio nunca muta stock directamente.
type Product struct {
	ID        string
	CompanyID string
	SKU       string // código único por empresa
	Name      string
	Category  string
	Price     decimal.Decimal // precio de venta
	Quantity  int64           // invariante de negocio: nunca negativo
	Status    string          // in_stock, low_stock, out_of_stock
	CreatedAt time.Time
	UpdatedAt time.Time
}
