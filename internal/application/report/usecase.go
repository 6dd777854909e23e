package report

import (
	"context"
	"time"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/domain"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/repository"
	tpl "github.com/ledgerly/ledgerly-api/internal/domain/template"
	"github.com/ledgerly/ledgerly-api/pkg/money"
)

// PDFGenerator puerto de export PDF del reporte; la implementación (Maroto)
// vive en infrastructure.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, company *entity.Company, summary dto.ReportSummaryDTO) ([]byte, error)
}

// UseCase arma el reporte de ventas de la empresa: agrega facturas y recibos,
// formatea montos con la moneda de la empresa y renderiza el documento con el
// tema de su plantilla elegida.
type UseCase struct {
	companyRepo  repository.CompanyRepository
	invoiceRepo  repository.InvoiceRepository
	receiptRepo  repository.ReceiptRepository
	templateRepo repository.TemplateRepository
	pdf          PDFGenerator
	defaultCurr  string
}

// NewUseCase construye el caso de uso. defaultCurrency aplica a empresas sin
// moneda configurada.
func NewUseCase(
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
	receiptRepo repository.ReceiptRepository,
	templateRepo repository.TemplateRepository,
	pdf PDFGenerator,
	defaultCurrency string,
) *UseCase {
	return &UseCase{
		companyRepo:  companyRepo,
		invoiceRepo:  invoiceRepo,
		receiptRepo:  receiptRepo,
		templateRepo: templateRepo,
		pdf:          pdf,
		defaultCurr:  defaultCurrency,
	}
}

// Summary agrega los totales del período para la empresa.
func (uc *UseCase) Summary(_ context.Context, companyID string, from, to time.Time) (*dto.ReportSummaryDTO, *entity.Company, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrNotFound
	}
	curr := company.CurrencyCode
	if curr == "" {
		curr = uc.defaultCurr
	}

	invSum, err := uc.invoiceRepo.Summarize(companyID, from, to)
	if err != nil {
		return nil, nil, err
	}
	rcpSum, err := uc.receiptRepo.Summarize(companyID, from, to)
	if err != nil {
		return nil, nil, err
	}

	return &dto.ReportSummaryDTO{
		From:          from,
		To:            to,
		InvoiceCount:  invSum.Count,
		ReceiptCount:  rcpSum.Count,
		NetTotal:      money.FormatDecimal(invSum.NetTotal, curr),
		TaxTotal:      money.FormatDecimal(invSum.TaxTotal, curr),
		GrandTotal:    money.FormatDecimal(invSum.GrandTotal, curr),
		ReceiptsTotal: money.FormatDecimal(rcpSum.Total, curr),
	}, company, nil
}

// GenerateHTML produce el documento HTML autocontenido del período.
// La secuencia de render es la misma del preview: variante → tema →
// decoraciones, con la plantilla elegida por la empresa.
func (uc *UseCase) GenerateHTML(ctx context.Context, companyID string, from, to time.Time) (string, error) {
	summary, company, err := uc.Summary(ctx, companyID, from, to)
	if err != nil {
		return "", err
	}

	// Plantilla fuera del catálogo degrada a defaults; un error del
	// repositorio no es "no está en el catálogo" y se propaga.
	t, err := uc.templateRepo.GetByID(company.TemplateID)
	if err != nil {
		return "", err
	}
	descriptor := &entity.Template{ID: company.TemplateID}
	if t != nil {
		descriptor = t
	}
	variant := tpl.ResolveVariant(descriptor.ID, descriptor)
	theme := tpl.ResolveTheme(*descriptor)
	deco := tpl.BuildDecorations(variant, theme)

	return BuildHTML(Data{
		CompanyName:    company.Name,
		CompanyTaxID:   company.TaxID,
		CompanyAddress: company.Address,
		From:           from,
		To:             to,
		InvoiceCount:   summary.InvoiceCount,
		NetTotal:       summary.NetTotal,
		TaxTotal:       summary.TaxTotal,
		GrandTotal:     summary.GrandTotal,
		ReceiptCount:   summary.ReceiptCount,
		ReceiptsTotal:  summary.ReceiptsTotal,
		Theme:          theme,
		Decorations:    deco,
	})
}

// GeneratePDF exporta el resumen del período como PDF vía el puerto Maroto.
func (uc *UseCase) GeneratePDF(ctx context.Context, companyID string, from, to time.Time) ([]byte, error) {
	summary, company, err := uc.Summary(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReportPDF(ctx, company, *summary)
}
