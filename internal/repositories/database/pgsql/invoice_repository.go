package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/models"
	"github.com/SscSPs/boarding_house_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const invoiceColumns = `invoice_id, student_id, enrollment_id, boarding_house_id, amount, amount_paid,
	description, invoice_date, reference_number, status, notes, transaction_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxInvoiceRepository struct {
	db querier
}

func newPgxInvoiceRepository(db querier) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func (r *PgxInvoiceRepository) findOne(ctx context.Context, key, filter string, args ...any) (*domain.Invoice, error) {
	rows, err := r.db.Query(ctx, "SELECT "+invoiceColumns+" FROM student_invoices "+filter, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query invoice", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, mapError(err, "invoice", key)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.findOne(ctx, invoiceID, "WHERE invoice_id = $1", invoiceID)
}

func (r *PgxInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.findOne(ctx, invoiceID, "WHERE invoice_id = $1 FOR UPDATE", invoiceID)
}

func (r *PgxInvoiceRepository) FindInvoiceByReference(ctx context.Context, reference string) (*domain.Invoice, error) {
	return r.findOne(ctx, reference, "WHERE reference_number = $1", reference)
}

func (r *PgxInvoiceRepository) ListPendingInvoicesBefore(ctx context.Context, cutoff time.Time) ([]domain.Invoice, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+invoiceColumns+" FROM student_invoices WHERE status = $1 AND invoice_date < $2 ORDER BY invoice_date",
		domain.InvoicePending, cutoff,
	)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query pending invoices", err)
	}
	modelInvoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect invoice rows", err)
	}
	invoices := make([]domain.Invoice, len(modelInvoices))
	for i, m := range modelInvoices {
		invoices[i] = mapping.ToDomainInvoice(m)
	}
	return invoices, nil
}

// SaveInvoice inserts an invoice. The unique reference_number index makes monthly runs idempotent.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO student_invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db.Exec(ctx, query,
		m.InvoiceID, m.StudentID, m.EnrollmentID, m.BoardingHouseID, m.Amount, m.AmountPaid,
		m.Description, m.InvoiceDate, m.ReferenceNumber, m.Status, m.Notes, m.TransactionID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "invoice", m.ReferenceNumber)
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE student_invoices
		SET amount_paid = $2, status = $3, notes = $4, last_updated_at = $5, last_updated_by = $6
		WHERE invoice_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.InvoiceID, m.AmountPaid, m.Status, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapError(err, "invoice", m.InvoiceID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice", m.InvoiceID)
	}
	return nil
}
