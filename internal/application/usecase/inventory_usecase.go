package usecase

import (
	"context"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/domain"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/repository"
	"github.com/ledgerly/ledgerly-api/internal/domain/stock"
)

// lowStockThreshold cantidad a partir de la cual un producto deja de estar
// "low_stock". El estado lo deriva esta capa, nunca el calculador.
const lowStockThreshold = 5

// InventoryUseCase ajustes de stock: valida y calcula con el calculador puro
// y persiste el resultado vía repositorio.
type InventoryUseCase struct {
	productRepo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{productRepo: productRepo}
}

// AdjustStock aplica un ajuste add/remove/set sobre el producto.
// Errores de validación del calculador se devuelven tal cual al handler para
// mensajería al usuario; solo si el cálculo pasa se toca la DB.
func (uc *InventoryUseCase) AdjustStock(_ context.Context, companyID string, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	mode := stock.Mode(in.Mode)
	if !mode.Valid() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	// El repositorio puede devolver la misma instancia que cachea y mutarla
	// al persistir; la cantidad previa se captura antes de escribir.
	prevQty := product.Quantity

	newQty, err := stock.ComputeAdjustment(prevQty, in.Amount, mode)
	if err != nil {
		return nil, err
	}

	status := deriveStatus(newQty)
	if err := uc.productRepo.UpdateQuantity(product.ID, newQty, status); err != nil {
		return nil, err
	}

	return &dto.AdjustStockResponse{
		ProductID:        product.ID,
		PreviousQuantity: prevQty,
		NewQuantity:      newQty,
		Status:           status,
	}, nil
}

// deriveStatus estado de stock por umbrales de cantidad.
func deriveStatus(qty int64) string {
	switch {
	case qty <= 0:
		return entity.ProductStatusOutStock
	case qty < lowStockThreshold:
		return entity.ProductStatusLowStock
	default:
		return entity.ProductStatusInStock
	}
}
