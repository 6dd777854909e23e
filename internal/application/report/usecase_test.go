package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledgerly-api/internal/application/report"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct{ company *entity.Company }

func (f *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}
func (f *fakeCompanyRepo) Update(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}

type fakeInvoiceRepo struct{ summary repository.InvoiceSummary }

func (f *fakeInvoiceRepo) Create(*entity.Invoice) error { return nil }
func (f *fakeInvoiceRepo) GetByID(string) (*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) AllByCompany(string) ([]entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) Summarize(string, time.Time, time.Time) (repository.InvoiceSummary, error) {
	return f.summary, nil
}
func (f *fakeInvoiceRepo) Update(*entity.Invoice) error { return nil }

type fakeReceiptRepo struct{ summary repository.ReceiptSummary }

func (f *fakeReceiptRepo) Create(*entity.Receipt) error { return nil }
func (f *fakeReceiptRepo) GetByID(string) (*entity.Receipt, error) {
	return nil, nil
}
func (f *fakeReceiptRepo) ListByCompany(string, int, int) ([]*entity.Receipt, error) {
	return nil, nil
}
func (f *fakeReceiptRepo) AllByCompany(string) ([]entity.Receipt, error) {
	return nil, nil
}
func (f *fakeReceiptRepo) Summarize(string, time.Time, time.Time) (repository.ReceiptSummary, error) {
	return f.summary, nil
}

type fakeTemplateRepo struct {
	tpl *entity.Template
	err error
}

func (f *fakeTemplateRepo) GetByID(string) (*entity.Template, error) { return f.tpl, f.err }
func (f *fakeTemplateRepo) List() ([]*entity.Template, error)        { return nil, nil }

func buildUseCase(templates *fakeTemplateRepo) *report.UseCase {
	return report.NewUseCase(
		&fakeCompanyRepo{company: &entity.Company{
			ID:           "c1",
			Name:         "Acme Corp",
			TaxID:        "900123456",
			CurrencyCode: "USD",
			TemplateID:   "neoBrutalist",
		}},
		&fakeInvoiceRepo{summary: repository.InvoiceSummary{
			Count:      2,
			NetTotal:   decimal.NewFromFloat(1000),
			TaxTotal:   decimal.NewFromFloat(234.5),
			GrandTotal: decimal.NewFromFloat(1234.5),
		}},
		&fakeReceiptRepo{summary: repository.ReceiptSummary{
			Count: 1,
			Total: decimal.NewFromFloat(500),
		}},
		templates,
		nil, // PDF no se ejercita aquí
		"USD",
	)
}

var (
	periodFrom = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	periodTo   = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_FormateaMontosConLaMonedaDeLaEmpresa(t *testing.T) {
	uc := buildUseCase(&fakeTemplateRepo{})

	out, company, err := uc.Summary(context.Background(), "c1", periodFrom, periodTo)
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", company.Name)
	assert.Equal(t, 2, out.InvoiceCount)
	assert.Equal(t, "$1,234.50", out.GrandTotal, "los montos llegan formateados")
	assert.Equal(t, "$234.50", out.TaxTotal)
	assert.Equal(t, "$500.00", out.ReceiptsTotal)
}

func TestGenerateHTML_ErrorDelCatalogo_SePropaga(t *testing.T) {
	// Un fallo del repositorio de plantillas no es "plantilla fuera del
	// catálogo": no debe degradar en silencio a defaults.
	catalogDown := errors.New("catálogo no disponible")
	uc := buildUseCase(&fakeTemplateRepo{err: catalogDown})

	_, err := uc.GenerateHTML(context.Background(), "c1", periodFrom, periodTo)
	assert.ErrorIs(t, err, catalogDown)
}

func TestGenerateHTML_PlantillaFueraDeCatalogo_DegradaADefaults(t *testing.T) {
	// tpl nil sin error = id desconocido: el documento se renderiza igual
	// con el tema por defecto.
	uc := buildUseCase(&fakeTemplateRepo{tpl: nil})

	doc, err := uc.GenerateHTML(context.Background(), "c1", periodFrom, periodTo)
	require.NoError(t, err)

	assert.Contains(t, doc, "Acme Corp")
	assert.Contains(t, doc, "#4F46E5", "sin descriptor aplica el color primario por defecto")
	assert.Contains(t, doc, "$1,234.50")
}

func TestGenerateHTML_PlantillaDelCatalogo_AplicaSusColores(t *testing.T) {
	uc := buildUseCase(&fakeTemplateRepo{tpl: &entity.Template{
		ID:   "neoBrutalist",
		Name: "Neo Brutalist",
		Colors: entity.TemplateColors{
			Primary: []int{255, 0, 0},
		},
	}})

	doc, err := uc.GenerateHTML(context.Background(), "c1", periodFrom, periodTo)
	require.NoError(t, err)

	assert.Contains(t, doc, "#FF0000", "el primario del catálogo manda sobre el default")
}
