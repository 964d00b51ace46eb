package repositories

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseReader defines read operations for expenses and their settlements
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpenseByIDForUpdate locks the expense row for the rest of the unit of work.
	FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error)

	ListSupplierPaymentsByExpense(ctx context.Context, expenseID string) ([]domain.SupplierPayment, error)

	// SumSupplierPayments totals the non-deleted payments made against an expense.
	SumSupplierPayments(ctx context.Context, expenseID string) (decimal.Decimal, error)
}

// ExpenseWriter defines write operations for expenses and their settlements
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error
}

// ExpenseRepositoryFacade combines all expense operations
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
