package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/application/usecase"
	"github.com/ledgerly/ledgerly-api/internal/domain"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
)

// fakeProductRepo repo en memoria, suficiente para ejercitar AdjustStock.
type fakeProductRepo struct {
	products map[string]*entity.Product

	// captura de la última escritura de stock
	updatedID     string
	updatedQty    int64
	updatedStatus string
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) AllByCompany(companyID string) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) UpdateQuantity(id string, quantity int64, status string) error {
	f.updatedID, f.updatedQty, f.updatedStatus = id, quantity, status
	if p, ok := f.products[id]; ok {
		p.Quantity = quantity
		p.Status = status
	}
	return nil
}
func (f *fakeProductRepo) Delete(id string) error { return nil }

func producto(id, companyID string, qty int64) *entity.Product {
	return &entity.Product{
		ID:        id,
		CompanyID: companyID,
		SKU:       "SKU-" + id,
		Name:      "Producto " + id,
		Quantity:  qty,
		Status:    entity.ProductStatusInStock,
	}
}

func TestAdjustStock_AddPersisteYDerivaEstado(t *testing.T) {
	repo := newFakeProductRepo(producto("p1", "c1", 10))
	uc := usecase.NewInventoryUseCase(repo)

	out, err := uc.AdjustStock(context.Background(), "c1", dto.AdjustStockRequest{
		ProductID: "p1", Mode: "add", Amount: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), out.PreviousQuantity)
	assert.Equal(t, int64(15), out.NewQuantity)
	assert.Equal(t, entity.ProductStatusInStock, out.Status)
	assert.Equal(t, "p1", repo.updatedID, "debe persistirse el resultado")
	assert.Equal(t, int64(15), repo.updatedQty)
}

func TestAdjustStock_RepoQueAliasaEntidad_ConservaCantidadPrevia(t *testing.T) {
	// El fake devuelve y muta la misma instancia (como haría un repo con
	// caché); la respuesta debe reportar la cantidad anterior a la escritura.
	p := producto("p1", "c1", 10)
	repo := newFakeProductRepo(p)
	uc := usecase.NewInventoryUseCase(repo)

	out, err := uc.AdjustStock(context.Background(), "c1", dto.AdjustStockRequest{
		ProductID: "p1", Mode: "set", Amount: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40), p.Quantity, "la entidad compartida ya fue mutada")
	assert.Equal(t, int64(10), out.PreviousQuantity, "la respuesta conserva la cantidad previa")
	assert.Equal(t, int64(40), out.NewQuantity)
}

func TestAdjustStock_RemoveHastaCero_EstadoOutOfStock(t *testing.T) {
	repo := newFakeProductRepo(producto("p1", "c1", 3))
	uc := usecase.NewInventoryUseCase(repo)

	out, err := uc.AdjustStock(context.Background(), "c1", dto.AdjustStockRequest{
		ProductID: "p1", Mode: "remove", Amount: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.NewQuantity)
	assert.Equal(t, entity.ProductStatusOutStock, out.Status)
}

func TestAdjustStock_SetBajoUmbral_EstadoLowStock(t *testing.T) {
	repo := newFakeProductRepo(producto("p1", "c1", 20))
	uc := usecase.NewInventoryUseCase(repo)

	out, err := uc.AdjustStock(context.Background(), "c1", dto.AdjustStockRequest{
		ProductID: "p1", Mode: "set", Amount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.NewQuantity)
	assert.Equal(t, entity.ProductStatusLowStock, out.Status)
}

func TestAdjustStock_RemoveMayorQueStock_NoPersiste(t *testing.T) {
	repo := newFakeProductRepo(producto("p1", "c1", 2))
	uc := usecase.NewInventoryUseCase(repo)

	_, err := uc.AdjustStock(context.Background(), "c1", dto.AdjustStockRequest{
		ProductID: "p1", Mode: "remove", Amount: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, repo.updatedID, "un cálculo fallido no debe tocar la DB")
	assert.Equal(t, int64(2), repo.products["p1"].Quantity, "el stock queda intacto")
}

func TestAdjustStock_ModoDesconocido(t *testing.T) {
	repo := newFakeProductRepo(producto("p1", "c1", 2))
	uc := usecase.NewInventoryUseCase(repo)

	_, err := uc.AdjustStock(context.Background(), "c1", dto.AdjustStockRequest{
		ProductID: "p1", Mode: "increment", Amount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_ProductoInexistente(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewInventoryUseCase(repo)

	_, err := uc.AdjustStock(context.Background(), "c1", dto.AdjustStockRequest{
		ProductID: "nope", Mode: "add", Amount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustStock_ProductoDeOtraEmpresa(t *testing.T) {
	repo := newFakeProductRepo(producto("p1", "c1", 2))
	uc := usecase.NewInventoryUseCase(repo)

	_, err := uc.AdjustStock(context.Background(), "c2", dto.AdjustStockRequest{
		ProductID: "p1", Mode: "add", Amount: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
