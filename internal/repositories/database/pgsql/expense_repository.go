package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/models"
	"github.com/SscSPs/boarding_house_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const expenseColumns = `expense_id, transaction_id, boarding_house_id, expense_date, amount, total_amount,
	remaining_balance, payment_method, payment_status, expense_account_id, supplier_id,
	reference_number, receipt_path, description,
	created_at, created_by, last_updated_at, last_updated_by`

const supplierPaymentColumns = `payment_id, supplier_id, expense_id, amount, payment_date, payment_method,
	transaction_id, reference_number, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	db querier
}

func newPgxExpenseRepository(db querier) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) findOne(ctx context.Context, expenseID string, suffix string) (*domain.Expense, error) {
	rows, err := r.db.Query(ctx, "SELECT "+expenseColumns+" FROM expenses WHERE expense_id = $1"+suffix, expenseID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query expense", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, mapError(err, "expense", expenseID)
	}
	e := mapping.ToDomainExpense(m)
	return &e, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return r.findOne(ctx, expenseID, "")
}

func (r *PgxExpenseRepository) FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return r.findOne(ctx, expenseID, " FOR UPDATE")
}

func (r *PgxExpenseRepository) ListSupplierPaymentsByExpense(ctx context.Context, expenseID string) ([]domain.SupplierPayment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+supplierPaymentColumns+`
		FROM supplier_payments
		WHERE expense_id = $1 AND deleted_at IS NULL
		ORDER BY payment_date, created_at`, expenseID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query supplier payments", err)
	}
	modelPayments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SupplierPayment])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect supplier payment rows", err)
	}
	payments := make([]domain.SupplierPayment, len(modelPayments))
	for i, m := range modelPayments {
		payments[i] = mapping.ToDomainSupplierPayment(m)
	}
	return payments, nil
}

func (r *PgxExpenseRepository) SumSupplierPayments(ctx context.Context, expenseID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM supplier_payments WHERE expense_id = $1 AND deleted_at IS NULL",
		expenseID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, mapError(err, "expense", expenseID)
	}
	return sum, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	if expense.RemainingBalance.IsNegative() {
		return fmt.Errorf("%w: remaining balance cannot be negative", apperrors.ErrInvariantViolation)
	}
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db.Exec(ctx, query,
		m.ExpenseID, m.TransactionID, m.BoardingHouseID, m.ExpenseDate, m.Amount, m.TotalAmount,
		m.RemainingBalance, m.PaymentMethod, m.PaymentStatus, m.ExpenseAccountID, m.SupplierID,
		m.ReferenceNumber, m.ReceiptPath, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "expense", m.ExpenseID)
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	if expense.RemainingBalance.IsNegative() {
		return fmt.Errorf("%w: remaining balance cannot be negative", apperrors.ErrInvariantViolation)
	}
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET expense_date = $2, amount = $3, total_amount = $4, remaining_balance = $5,
			payment_method = $6, payment_status = $7, expense_account_id = $8, supplier_id = $9,
			receipt_path = $10, description = $11, last_updated_at = $12, last_updated_by = $13
		WHERE expense_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.ExpenseID, m.ExpenseDate, m.Amount, m.TotalAmount, m.RemainingBalance,
		m.PaymentMethod, m.PaymentStatus, m.ExpenseAccountID, m.SupplierID,
		m.ReceiptPath, m.Description, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "expense", m.ExpenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense", m.ExpenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error {
	m := mapping.ToModelSupplierPayment(payment)
	query := `
		INSERT INTO supplier_payments (` + supplierPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.PaymentID, m.SupplierID, m.ExpenseID, m.Amount, m.PaymentDate, m.PaymentMethod,
		m.TransactionID, m.ReferenceNumber, m.DeletedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "supplier payment", m.PaymentID)
}
