package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type pettyCashRepository struct {
	db access
}

func (r *pettyCashRepository) FindPettyCashAccount(ctx context.Context, userID string) (*domain.PettyCashAccount, error) {
	var out domain.PettyCashAccount
	err := r.db.read(func(st *state) error {
		a, ok := st.pettyAccounts[userID]
		if !ok {
			return apperrors.NewNotFoundError("petty cash account", userID)
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *pettyCashRepository) FindPettyCashAccountForUpdate(ctx context.Context, userID string) (*domain.PettyCashAccount, error) {
	return r.FindPettyCashAccount(ctx, userID)
}

func (r *pettyCashRepository) FindPendingByID(ctx context.Context, pendingID string) (*domain.PendingPettyCashTransaction, error) {
	var out domain.PendingPettyCashTransaction
	err := r.db.read(func(st *state) error {
		p, ok := st.pending[pendingID]
		if !ok {
			return apperrors.NewNotFoundError("pending petty cash transaction", pendingID)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *pettyCashRepository) FindPendingByIDForUpdate(ctx context.Context, pendingID string) (*domain.PendingPettyCashTransaction, error) {
	return r.FindPendingByID(ctx, pendingID)
}

func (r *pettyCashRepository) ListPendingByUser(ctx context.Context, userID string, status domain.PendingStatus) ([]domain.PendingPettyCashTransaction, error) {
	var out []domain.PendingPettyCashTransaction
	err := r.db.read(func(st *state) error {
		for _, p := range st.pending {
			if p.UserID == userID && (status == "" || p.Status == status) {
				out = append(out, p)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, err
}

func (r *pettyCashRepository) ListPettyCashTransactions(ctx context.Context, userID string) ([]domain.PettyCashTransaction, error) {
	var out []domain.PettyCashTransaction
	err := r.db.read(func(st *state) error {
		for _, t := range st.pettyTxns {
			if t.UserID == userID {
				out = append(out, t)
			}
		}
		return nil
	})
	return out, err
}

func (r *pettyCashRepository) SavePettyCashAccount(ctx context.Context, account domain.PettyCashAccount) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.pettyAccounts[account.UserID]; ok {
			return fmt.Errorf("%w: petty cash account for user %s", apperrors.ErrDuplicate, account.UserID)
		}
		st.pettyAccounts[account.UserID] = account
		return nil
	})
}

func (r *pettyCashRepository) AdjustPettyCashAccount(ctx context.Context, userID string, balanceDelta, reservedDelta decimal.Decimal, actorID string, now time.Time) error {
	return r.db.write(func(st *state) error {
		a, ok := st.pettyAccounts[userID]
		if !ok {
			return apperrors.NewNotFoundError("petty cash account", userID)
		}
		balance := a.Balance.Add(balanceDelta)
		reserved := a.Reserved.Add(reservedDelta)
		if balance.IsNegative() || reserved.IsNegative() || reserved.GreaterThan(balance) {
			return fmt.Errorf("%w: petty cash balance %s with %s reserved", apperrors.ErrInsufficientBalance, balance.StringFixed(2), reserved.StringFixed(2))
		}
		a.Balance = balance
		a.Reserved = reserved
		a.LastUpdatedAt = now
		a.LastUpdatedBy = actorID
		st.pettyAccounts[userID] = a
		return nil
	})
}

func (r *pettyCashRepository) SavePending(ctx context.Context, pending domain.PendingPettyCashTransaction) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.pending[pending.PendingID]; ok {
			return fmt.Errorf("%w: pending petty cash transaction %s", apperrors.ErrDuplicate, pending.PendingID)
		}
		st.pending[pending.PendingID] = pending
		return nil
	})
}

func (r *pettyCashRepository) UpdatePending(ctx context.Context, pending domain.PendingPettyCashTransaction) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.pending[pending.PendingID]; !ok {
			return apperrors.NewNotFoundError("pending petty cash transaction", pending.PendingID)
		}
		st.pending[pending.PendingID] = pending
		return nil
	})
}

func (r *pettyCashRepository) SavePettyCashTransaction(ctx context.Context, txn domain.PettyCashTransaction) error {
	return r.db.write(func(st *state) error {
		st.pettyTxns = append(st.pettyTxns, txn)
		return nil
	})
}
