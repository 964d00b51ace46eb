package services

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

// ExpenseWriterSvc defines payable and settlement operations
type ExpenseWriterSvc interface {
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, actor domain.Actor) (*dto.RecordExpenseResponse, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actor domain.Actor) (*domain.Expense, error)
	RecordSupplierPayment(ctx context.Context, req dto.RecordSupplierPaymentRequest, actor domain.Actor) (*dto.SupplierPaymentResponse, error)
	PayAccountsPayable(ctx context.Context, expenseID string, req dto.AccountsPayablePaymentRequest, actor domain.Actor) (*dto.AccountsPayablePaymentResponse, error)
}

// ExpenseReaderSvc defines expense reads
type ExpenseReaderSvc interface {
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, []domain.SupplierPayment, error)
}

// ExpenseSvcFacade combines all expense service interfaces
type ExpenseSvcFacade interface {
	ExpenseWriterSvc
	ExpenseReaderSvc
}
