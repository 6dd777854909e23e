package dto

import "github.com/shopspring/decimal"

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Mode: add | remove | set. Amount llega como número JSON; el calculador
// valida finitud e integralidad antes de operar.
type AdjustStockRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Mode      string  `json:"mode" validate:"required,oneof=add remove set"`
	Amount    float64 `json:"amount"`
}

// AdjustStockResponse cantidad resultante ya persistida.
type AdjustStockResponse struct {
	ProductID        string `json:"product_id"`
	PreviousQuantity int64  `json:"previous_quantity"`
	NewQuantity      int64  `json:"new_quantity"`
	Status           string `json:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Status   string          `json:"status"`
}
