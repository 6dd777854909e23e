package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerly/ledgerly-api/internal/domain"
	"github.com/ledgerly/ledgerly-api/internal/domain/entity"
	"github.com/ledgerly/ledgerly-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceCols = `id, company_id, customer_id, number, customer_name, date, net_total, tax_total, grand_total, status, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Number, &inv.CustomerName,
		&inv.Date, &inv.NetTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create persiste una nueva factura. El número consecutivo es único por empresa.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.Number, invoice.CustomerName,
		invoice.Date, invoice.NetTotal, invoice.TaxTotal, invoice.GrandTotal, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceCols + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByCompany lista facturas de la empresa con paginación, recientes primero.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceCols + ` FROM invoices WHERE company_id = $1 ORDER BY date DESC, number DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// AllByCompany lista completa en orden de creación, para el agregador de búsqueda.
func (r *InvoiceRepo) AllByCompany(companyID string) ([]entity.Invoice, error) {
	query := `SELECT ` + invoiceCols + ` FROM invoices WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("all invoices: %w", err)
	}
	defer rows.Close()
	var list []entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, *inv)
	}
	return list, rows.Err()
}

// Summarize agrega conteo y totales del período [from, to] en la base.
// COALESCE garantiza ceros (y no NULL) cuando el período no tiene facturas.
func (r *InvoiceRepo) Summarize(companyID string, from, to time.Time) (repository.InvoiceSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(net_total), 0),
		       COALESCE(SUM(tax_total), 0),
		       COALESCE(SUM(grand_total), 0)
		FROM invoices
		WHERE company_id = $1 AND date BETWEEN $2 AND $3`
	var s repository.InvoiceSummary
	err := r.q.QueryRow(context.Background(), query, companyID, from, to).Scan(
		&s.Count, &s.NetTotal, &s.TaxTotal, &s.GrandTotal,
	)
	if err != nil {
		return repository.InvoiceSummary{}, fmt.Errorf("summarize invoices: %w", err)
	}
	return s, nil
}

// Update actualiza una factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, number = $3, customer_name = $4, date = $5,
			net_total = $6, tax_total = $7, grand_total = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.Number, invoice.CustomerName, invoice.Date,
		invoice.NetTotal, invoice.TaxTotal, invoice.GrandTotal, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}
