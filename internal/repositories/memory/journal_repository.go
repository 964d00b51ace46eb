package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
)

type transactionRepository struct {
	db access
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var out domain.Transaction
	err := r.db.read(func(st *state) error {
		t, ok := st.transactions[transactionID]
		if !ok {
			return apperrors.NewNotFoundError("transaction", transactionID)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.transactions[txn.TransactionID]; ok {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
		}
		st.transactions[txn.TransactionID] = txn
		return nil
	})
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.db.write(func(st *state) error {
		existing, ok := st.transactions[txn.TransactionID]
		if !ok {
			return apperrors.NewNotFoundError("transaction", txn.TransactionID)
		}
		existing.Amount = txn.Amount
		existing.Description = txn.Description
		existing.TransactionDate = txn.TransactionDate
		existing.Status = txn.Status
		existing.VoidReason = txn.VoidReason
		existing.LastUpdatedAt = txn.LastUpdatedAt
		existing.LastUpdatedBy = txn.LastUpdatedBy
		st.transactions[txn.TransactionID] = existing
		return nil
	})
}

type entryRepository struct {
	db access
}

func (r *entryRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	err := r.db.read(func(st *state) error {
		for _, e := range st.entries {
			if e.TransactionID == transactionID && e.DeletedAt == nil {
				out = append(out, e)
			}
		}
		return nil
	})
	return out, err
}

func (r *entryRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, before *portsrepo.EntryCursor) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	err := r.db.read(func(st *state) error {
		for _, e := range st.entries {
			if e.AccountID != accountID || e.DeletedAt != nil {
				continue
			}
			if before != nil && !olderThan(e, before.EntryDate, before.CreatedAt, before.EntryID) {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return olderThan(out[j], out[i].EntryDate, out[i].CreatedAt, out[i].EntryID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// olderThan orders entries by (entry date, creation time, entry id).
func olderThan(e domain.JournalEntry, entryDate, createdAt time.Time, entryID string) bool {
	switch {
	case !e.EntryDate.Equal(entryDate):
		return e.EntryDate.Before(entryDate)
	case !e.CreatedAt.Equal(createdAt):
		return e.CreatedAt.Before(createdAt)
	}
	return e.EntryID < entryID
}

func (r *entryRepository) ListAllEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	err := r.db.read(func(st *state) error {
		for _, e := range st.entries {
			if e.DeletedAt == nil {
				out = append(out, e)
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool {
		return olderThan(out[i], out[j].EntryDate, out[j].CreatedAt, out[j].EntryID)
	})
	return out, err
}

func (r *entryRepository) AccountHasEntries(ctx context.Context, accountID string) (bool, error) {
	var found bool
	err := r.db.read(func(st *state) error {
		for _, e := range st.entries {
			if e.AccountID == accountID && e.DeletedAt == nil {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *entryRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	return r.db.write(func(st *state) error {
		for _, e := range entries {
			if _, ok := st.transactions[e.TransactionID]; !ok {
				return apperrors.NewNotFoundError("transaction", e.TransactionID)
			}
			if _, ok := st.accounts[e.AccountID]; !ok {
				return apperrors.NewNotFoundError("account", e.AccountID)
			}
			if !e.Amount.IsPositive() {
				return fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
			}
		}
		st.entries = append(st.entries, entries...)
		return nil
	})
}

func (r *entryRepository) SoftDeleteEntriesByTransactionID(ctx context.Context, transactionID string, now time.Time) ([]domain.JournalEntry, error) {
	var removed []domain.JournalEntry
	err := r.db.write(func(st *state) error {
		for i, e := range st.entries {
			if e.TransactionID != transactionID || e.DeletedAt != nil {
				continue
			}
			removed = append(removed, e)
			deleted := now
			st.entries[i].DeletedAt = &deleted
		}
		return nil
	})
	return removed, err
}
