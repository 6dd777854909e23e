package repository

import "github.com/ledgerly/ledgerly-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	// AllByCompany lista completa sin paginar, para el agregador de búsqueda.
	AllByCompany(companyID string) ([]entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
