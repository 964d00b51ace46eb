package accounting

import (
	"fmt"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the sign rule of the account type to an entry amount.
//
// DEBIT to ASSET/EXPENSE -> +, CREDIT to ASSET/EXPENSE -> -
// DEBIT to LIABILITY/EQUITY/REVENUE -> -, CREDIT to LIABILITY/EQUITY/REVENUE -> +
func CalculateSignedAmount(entry domain.JournalEntry, accountType domain.AccountType) (decimal.Decimal, error) {
	return SignedDelta(accountType, entry.EntryType, entry.Amount)
}

// SignedDelta returns the change to current_balance caused by an entry of the given side.
func SignedDelta(accountType domain.AccountType, entryType domain.EntryType, amount decimal.Decimal) (decimal.Decimal, error) {
	isDebit := entryType == domain.Debit
	if !isDebit && entryType != domain.Credit {
		return decimal.Zero, fmt.Errorf("unknown entry type '%s'", entryType)
	}

	switch accountType {
	case domain.Asset, domain.ExpenseAccount:
		if !isDebit {
			return amount.Neg(), nil
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			return amount.Neg(), nil
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
	return amount, nil
}

// ValidatePairs checks entry pairs before anything is written.
func ValidatePairs(pairs []domain.EntryPair) error {
	if len(pairs) == 0 {
		return fmt.Errorf("%w: at least one entry pair is required", apperrors.ErrValidation)
	}
	for i, p := range pairs {
		if p.DebitAccountID == "" || p.CreditAccountID == "" {
			return fmt.Errorf("%w: entry pair %d must reference a debit and a credit account", apperrors.ErrValidation, i)
		}
		if p.DebitAccountID == p.CreditAccountID {
			return fmt.Errorf("%w: entry pair %d debits and credits the same account", apperrors.ErrValidation, i)
		}
		if !p.Amount.IsPositive() {
			return fmt.Errorf("%w: entry pair %d amount must be positive", apperrors.ErrValidation, i)
		}
		if !domain.FitsScale(p.Amount, domain.StorageScale) {
			return fmt.Errorf("%w: entry pair %d amount has more than %d decimal places", apperrors.ErrValidation, i, domain.StorageScale)
		}
	}
	return nil
}

// ValidateEntriesBalance checks that the non-deleted entries of one transaction balance.
func ValidateEntriesBalance(entries []domain.JournalEntry) error {
	debits, credits := decimal.Zero, decimal.Zero
	live := 0
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		live++
		if !e.Amount.IsPositive() {
			return fmt.Errorf("%w: entry %s has non-positive amount %s", apperrors.ErrInvariantViolation, e.EntryID, e.Amount)
		}
		switch e.EntryType {
		case domain.Debit:
			debits = debits.Add(e.Amount)
		case domain.Credit:
			credits = credits.Add(e.Amount)
		default:
			return fmt.Errorf("%w: entry %s has unknown type '%s'", apperrors.ErrInvariantViolation, e.EntryID, e.EntryType)
		}
	}
	if live < 2 {
		return fmt.Errorf("%w: a transaction needs at least two entries, found %d", apperrors.ErrUnbalanced, live)
	}
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalanced, debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

// ApplyEntry folds a single entry into a projection row in place.
func ApplyEntry(bal *domain.AccountBalance, entry domain.JournalEntry) error {
	delta, err := SignedDelta(bal.AccountType, entry.EntryType, entry.Amount)
	if err != nil {
		return err
	}
	bal.CurrentBalance = bal.CurrentBalance.Add(delta)
	if entry.EntryType == domain.Debit {
		bal.TotalDebits = bal.TotalDebits.Add(entry.Amount)
	} else {
		bal.TotalCredits = bal.TotalCredits.Add(entry.Amount)
	}
	bal.TransactionCount++
	if bal.LastTransactionDate == nil || entry.EntryDate.After(*bal.LastTransactionDate) {
		d := entry.EntryDate
		bal.LastTransactionDate = &d
	}
	return nil
}

// RevertEntry removes the effect of an entry from a projection row in place.
// LastTransactionDate is left untouched.
func RevertEntry(bal *domain.AccountBalance, entry domain.JournalEntry) error {
	delta, err := SignedDelta(bal.AccountType, entry.EntryType, entry.Amount)
	if err != nil {
		return err
	}
	bal.CurrentBalance = bal.CurrentBalance.Sub(delta)
	if entry.EntryType == domain.Debit {
		bal.TotalDebits = bal.TotalDebits.Sub(entry.Amount)
	} else {
		bal.TotalCredits = bal.TotalCredits.Sub(entry.Amount)
	}
	bal.TransactionCount--
	return nil
}

// ReplayBalances rebuilds projection rows for every account by folding the non-deleted entries.
// Accounts without entries get a zero row.
func ReplayBalances(accounts []domain.Account, entries []domain.JournalEntry) (map[string]domain.AccountBalance, error) {
	out := make(map[string]domain.AccountBalance, len(accounts))
	for _, a := range accounts {
		out[a.AccountID] = NewBalanceRow(a)
	}
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		bal, ok := out[e.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: entry %s references unknown account %s", apperrors.ErrInvariantViolation, e.EntryID, e.AccountID)
		}
		if err := ApplyEntry(&bal, e); err != nil {
			return nil, err
		}
		out[e.AccountID] = bal
	}
	return out, nil
}

// NewBalanceRow returns an empty projection row for an account.
func NewBalanceRow(a domain.Account) domain.AccountBalance {
	return domain.AccountBalance{
		AccountID:      a.AccountID,
		AccountCode:    a.Code,
		AccountName:    a.Name,
		AccountType:    a.AccountType,
		CurrentBalance: decimal.Zero,
		TotalDebits:    decimal.Zero,
		TotalCredits:   decimal.Zero,
	}
}

// CompareBalances returns one drift per account whose stored row differs from the replayed row.
func CompareBalances(stored map[string]domain.AccountBalance, replayed map[string]domain.AccountBalance) []domain.BalanceDrift {
	var drifts []domain.BalanceDrift
	for id, want := range replayed {
		got, ok := stored[id]
		if !ok {
			got = domain.AccountBalance{AccountID: id, AccountCode: want.AccountCode}
		}
		if got.CurrentBalance.Equal(want.CurrentBalance) &&
			got.TotalDebits.Equal(want.TotalDebits) &&
			got.TotalCredits.Equal(want.TotalCredits) &&
			got.TransactionCount == want.TransactionCount {
			continue
		}
		drifts = append(drifts, domain.BalanceDrift{
			AccountID:       id,
			AccountCode:     want.AccountCode,
			StoredBalance:   got.CurrentBalance,
			ReplayedBalance: want.CurrentBalance,
			StoredDebits:    got.TotalDebits,
			ReplayedDebits:  want.TotalDebits,
			StoredCredits:   got.TotalCredits,
			ReplayedCredits: want.TotalCredits,
			StoredCount:     got.TransactionCount,
			ReplayedCount:   want.TransactionCount,
		})
	}
	for id, got := range stored {
		if _, ok := replayed[id]; ok {
			continue
		}
		drifts = append(drifts, domain.BalanceDrift{
			AccountID:     id,
			AccountCode:   got.AccountCode,
			StoredBalance: got.CurrentBalance,
			StoredDebits:  got.TotalDebits,
			StoredCredits: got.TotalCredits,
			StoredCount:   got.TransactionCount,
		})
	}
	return drifts
}
