package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type balanceRepository struct {
	db access
}

func (r *balanceRepository) ApplyDelta(ctx context.Context, delta domain.BalanceDelta) error {
	return r.db.write(func(st *state) error {
		row, ok := st.balances[delta.AccountID]
		if !ok {
			row = domain.AccountBalance{
				AccountID:      delta.AccountID,
				CurrentBalance: decimal.Zero,
				TotalDebits:    decimal.Zero,
				TotalCredits:   decimal.Zero,
			}
		}
		row.AccountCode = delta.AccountCode
		row.AccountName = delta.AccountName
		row.AccountType = delta.AccountType
		row.CurrentBalance = row.CurrentBalance.Add(delta.Balance)
		row.TotalDebits = row.TotalDebits.Add(delta.Debits)
		row.TotalCredits = row.TotalCredits.Add(delta.Credits)
		row.TransactionCount += delta.Count
		if delta.EntryDate != nil && (row.LastTransactionDate == nil || delta.EntryDate.After(*row.LastTransactionDate)) {
			d := *delta.EntryDate
			row.LastTransactionDate = &d
		}
		st.balances[delta.AccountID] = row
		return nil
	})
}

func (r *balanceRepository) FindBalanceByAccountID(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	var out domain.AccountBalance
	err := r.db.read(func(st *state) error {
		row, ok := st.balances[accountID]
		if !ok {
			return apperrors.NewNotFoundError("account balance", accountID)
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *balanceRepository) ListBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	var out []domain.AccountBalance
	err := r.db.read(func(st *state) error {
		for _, row := range st.balances {
			out = append(out, row)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].AccountCode < out[j].AccountCode })
	return out, err
}

func (r *balanceRepository) ReplaceAllBalances(ctx context.Context, rows []domain.AccountBalance) error {
	return r.db.write(func(st *state) error {
		st.balances = make(map[string]domain.AccountBalance, len(rows))
		for _, row := range rows {
			st.balances[row.AccountID] = row
		}
		return nil
	})
}
