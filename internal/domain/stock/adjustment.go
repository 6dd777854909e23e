// Package stock implementa el cálculo puro de ajustes de inventario.
// Persistir la cantidad resultante es responsabilidad del caso de uso; aquí
// solo se valida y se calcula.
package stock

import (
	"math"

	"github.com/ledgerly/ledgerly-api/internal/domain"
)

// Mode tipo de ajuste de stock.
type Mode string

const (
	ModeAdd    Mode = "add"    // suma al stock actual
	ModeRemove Mode = "remove" // resta del stock actual
	ModeSet    Mode = "set"    // fija la cantidad exacta
)

// Valid informa si el modo es uno de los tres conocidos.
func (m Mode) Valid() bool {
	return m == ModeAdd || m == ModeRemove || m == ModeSet
}

// ComputeAdjustment calcula la cantidad resultante de aplicar un ajuste.
// Reglas, evaluadas en este orden:
//  1. amount debe ser finito y entero — si no, ErrInvalidAmount.
//  2. add/remove exigen amount > 0 — si no, ErrNonPositiveAmount.
//  3. set exige amount >= 0 — si no, ErrNegativeTarget.
//  4. remove no puede exceder current — si no, ErrInsufficientStock.
//
// Por construcción el resultado nunca es negativo dado current >= 0.
// La función es pura: no muta estado ni toca la capa de datos.
func ComputeAdjustment(current int64, amount float64, mode Mode) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, domain.ErrInvalidAmount
	}
	if amount != math.Trunc(amount) || math.Abs(amount) > math.MaxInt64 {
		return 0, domain.ErrInvalidAmount
	}
	qty := int64(amount)

	switch mode {
	case ModeAdd:
		if qty <= 0 {
			return 0, domain.ErrNonPositiveAmount
		}
		return current + qty, nil
	case ModeRemove:
		if qty <= 0 {
			return 0, domain.ErrNonPositiveAmount
		}
		if qty > current {
			return 0, domain.ErrInsufficientStock
		}
		return current - qty, nil
	case ModeSet:
		if qty < 0 {
			return 0, domain.ErrNegativeTarget
		}
		return qty, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}
