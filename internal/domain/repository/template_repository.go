package repository

import "github.com/ledgerly/ledgerly-api/internal/domain/entity"

// TemplateRepository define el puerto de lectura del catálogo de plantillas.
// El catálogo es curado externamente; esta API es read-only.
type TemplateRepository interface {
	GetByID(id string) (*entity.Template, error)
	List() ([]*entity.Template, error)
}
