package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
)

type accountRepository struct {
	db access
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var out domain.Account
	err := r.db.read(func(st *state) error {
		a, ok := st.accounts[accountID]
		if !ok {
			return apperrors.NewNotFoundError("account", accountID)
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *accountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	var out domain.Account
	err := r.db.read(func(st *state) error {
		for _, a := range st.accounts {
			if a.Code == code && !a.IsDeleted() {
				out = a
				return nil
			}
		}
		return apperrors.NewNotFoundError("account", code)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	err := r.db.read(func(st *state) error {
		for _, id := range accountIDs {
			a, ok := st.accounts[id]
			if !ok {
				return apperrors.NewNotFoundError("account", id)
			}
			out[id] = a
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context, includeDeleted bool) ([]domain.Account, error) {
	var out []domain.Account
	err := r.db.read(func(st *state) error {
		for _, a := range st.accounts {
			if a.IsDeleted() && !includeDeleted {
				continue
			}
			out = append(out, a)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, err
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.accounts[account.AccountID]; ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountID)
		}
		for _, a := range st.accounts {
			if a.Code == account.Code {
				return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
			}
		}
		st.accounts[account.AccountID] = account
		return nil
	})
}

func (r *accountRepository) SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	return r.db.write(func(st *state) error {
		a, ok := st.accounts[accountID]
		if !ok || a.IsDeleted() {
			return apperrors.NewNotFoundError("account", accountID)
		}
		deleted := now
		a.DeletedAt = &deleted
		a.LastUpdatedAt = now
		a.LastUpdatedBy = userID
		st.accounts[accountID] = a
		return nil
	})
}
