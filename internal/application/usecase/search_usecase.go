package usecase

import (
	"context"

	"github.com/ledgerly/ledgerly-api/internal/application/dto"
	"github.com/ledgerly/ledgerly-api/internal/domain/repository"
	"github.com/ledgerly/ledgerly-api/internal/domain/search"
)

// SearchUseCase orquesta la búsqueda global: carga las colecciones de la
// empresa desde los repositorios y delega el filtrado al agregador puro.
type SearchUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	receiptRepo  repository.ReceiptRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	receiptRepo repository.ReceiptRepository,
) *SearchUseCase {
	return &SearchUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		receiptRepo:  receiptRepo,
	}
}

// Search carga solo las colecciones que el selector necesita y filtra.
// El agregador no toca la DB: recibe las colecciones ya materializadas.
func (uc *SearchUseCase) Search(_ context.Context, companyID, query string, kind search.Kind) (*dto.SearchResponse, error) {
	var (
		c   search.Collections
		err error
	)
	if kind == search.KindAll || kind == search.KindInvoices {
		if c.Invoices, err = uc.invoiceRepo.AllByCompany(companyID); err != nil {
			return nil, err
		}
	}
	if kind == search.KindAll || kind == search.KindCustomers {
		if c.Customers, err = uc.customerRepo.AllByCompany(companyID); err != nil {
			return nil, err
		}
	}
	if kind == search.KindAll || kind == search.KindProducts {
		if c.Products, err = uc.productRepo.AllByCompany(companyID); err != nil {
			return nil, err
		}
	}
	if kind == search.KindAll || kind == search.KindReceipts {
		if c.Receipts, err = uc.receiptRepo.AllByCompany(companyID); err != nil {
			return nil, err
		}
	}

	res := search.Search(query, kind, c)

	out := &dto.SearchResponse{
		Query:     query,
		Total:     res.Total(),
		Invoices:  make([]dto.SearchInvoiceDTO, 0, len(res.Invoices)),
		Customers: make([]dto.SearchCustomerDTO, 0, len(res.Customers)),
		Products:  make([]dto.SearchProductDTO, 0, len(res.Products)),
		Receipts:  make([]dto.SearchReceiptDTO, 0, len(res.Receipts)),
	}
	for _, inv := range res.Invoices {
		out.Invoices = append(out.Invoices, dto.SearchInvoiceDTO{
			ID: inv.ID, Number: inv.Number, CustomerName: inv.CustomerName,
			GrandTotal: inv.GrandTotal, Status: inv.Status,
		})
	}
	for _, cu := range res.Customers {
		out.Customers = append(out.Customers, dto.SearchCustomerDTO{
			ID: cu.ID, Name: cu.Name, Email: cu.Email, Phone: cu.Phone,
		})
	}
	for _, p := range res.Products {
		out.Products = append(out.Products, dto.SearchProductDTO{
			ID: p.ID, Name: p.Name, SKU: p.SKU, Price: p.Price, Quantity: p.Quantity,
		})
	}
	for _, rc := range res.Receipts {
		out.Receipts = append(out.Receipts, dto.SearchReceiptDTO{
			ID: rc.ID, Number: rc.Number, CustomerName: rc.CustomerName, Total: rc.Total,
		})
	}
	return out, nil
}
