package repository

import "github.com/ledgerly/ledgerly-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity persiste el resultado del calculador de ajustes; el dominio
// nunca escribe stock directamente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	// AllByCompany lista completa sin paginar, para el agregador de búsqueda.
	AllByCompany(companyID string) ([]entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int64, status string) error
	Delete(id string) error
}
