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

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptCols = `id, company_id, invoice_id, number, customer_name, total, date, created_at`

func scanReceipt(row pgx.Row) (*entity.Receipt, error) {
	var rc entity.Receipt
	err := row.Scan(
		&rc.ID, &rc.CompanyID, &rc.InvoiceID, &rc.Number, &rc.CustomerName,
		&rc.Total, &rc.Date, &rc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

// Create persiste un nuevo recibo. Los recibos son inmutables: no hay Update.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (` + receiptCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.CompanyID, receipt.InvoiceID, receipt.Number,
		receipt.CustomerName, receipt.Total, receipt.Date, receipt.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene un recibo por ID.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `SELECT ` + receiptCols + ` FROM receipts WHERE id = $1`
	rc, err := scanReceipt(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return rc, nil
}

// ListByCompany lista recibos de la empresa con paginación, recientes primero.
func (r *ReceiptRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Receipt, error) {
	query := `SELECT ` + receiptCols + ` FROM receipts WHERE company_id = $1 ORDER BY date DESC, number DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, rc)
	}
	return list, rows.Err()
}

// AllByCompany lista completa en orden de creación, para el agregador de búsqueda.
func (r *ReceiptRepo) AllByCompany(companyID string) ([]entity.Receipt, error) {
	query := `SELECT ` + receiptCols + ` FROM receipts WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("all receipts: %w", err)
	}
	defer rows.Close()
	var list []entity.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, *rc)
	}
	return list, rows.Err()
}

// Summarize agrega conteo y total del período [from, to] en la base.
func (r *ReceiptRepo) Summarize(companyID string, from, to time.Time) (repository.ReceiptSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM receipts
		WHERE company_id = $1 AND date BETWEEN $2 AND $3`
	var s repository.ReceiptSummary
	err := r.q.QueryRow(context.Background(), query, companyID, from, to).Scan(&s.Count, &s.Total)
	if err != nil {
		return repository.ReceiptSummary{}, fmt.Errorf("summarize receipts: %w", err)
	}
	return s, nil
}
