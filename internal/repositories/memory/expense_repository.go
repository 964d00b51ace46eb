package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type expenseRepository struct {
	db access
}

func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	var out domain.Expense
	err := r.db.read(func(st *state) error {
		e, ok := st.expenses[expenseID]
		if !ok {
			return apperrors.NewNotFoundError("expense", expenseID)
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *expenseRepository) FindExpenseByIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return r.FindExpenseByID(ctx, expenseID)
}

func (r *expenseRepository) ListSupplierPaymentsByExpense(ctx context.Context, expenseID string) ([]domain.SupplierPayment, error) {
	var out []domain.SupplierPayment
	err := r.db.read(func(st *state) error {
		for _, p := range st.supplierPayments {
			if p.ExpenseID == expenseID && p.DeletedAt == nil {
				out = append(out, p)
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaymentDate.Before(out[j].PaymentDate) })
	return out, err
}

func (r *expenseRepository) SumSupplierPayments(ctx context.Context, expenseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.db.read(func(st *state) error {
		for _, p := range st.supplierPayments {
			if p.ExpenseID == expenseID && p.DeletedAt == nil {
				sum = sum.Add(p.Amount)
			}
		}
		return nil
	})
	return sum, err
}

func (r *expenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.expenses[expense.ExpenseID]; ok {
			return fmt.Errorf("%w: expense %s", apperrors.ErrDuplicate, expense.ExpenseID)
		}
		if expense.RemainingBalance.IsNegative() {
			return fmt.Errorf("%w: remaining balance cannot be negative", apperrors.ErrInvariantViolation)
		}
		st.expenses[expense.ExpenseID] = expense
		return nil
	})
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.expenses[expense.ExpenseID]; !ok {
			return apperrors.NewNotFoundError("expense", expense.ExpenseID)
		}
		if expense.RemainingBalance.IsNegative() {
			return fmt.Errorf("%w: remaining balance cannot be negative", apperrors.ErrInvariantViolation)
		}
		st.expenses[expense.ExpenseID] = expense
		return nil
	})
}

func (r *expenseRepository) SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.expenses[payment.ExpenseID]; !ok {
			return apperrors.NewNotFoundError("expense", payment.ExpenseID)
		}
		st.supplierPayments = append(st.supplierPayments, payment)
		return nil
	})
}
