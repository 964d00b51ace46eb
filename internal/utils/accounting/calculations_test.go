package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedDelta(t *testing.T) {
	amount := decimal.NewFromInt(150)
	tests := []struct {
		name        string
		accountType domain.AccountType
		entryType   domain.EntryType
		want        decimal.Decimal
	}{
		{"debit asset", domain.Asset, domain.Debit, amount},
		{"credit asset", domain.Asset, domain.Credit, amount.Neg()},
		{"debit expense", domain.ExpenseAccount, domain.Debit, amount},
		{"credit expense", domain.ExpenseAccount, domain.Credit, amount.Neg()},
		{"debit liability", domain.Liability, domain.Debit, amount.Neg()},
		{"credit liability", domain.Liability, domain.Credit, amount},
		{"debit equity", domain.Equity, domain.Debit, amount.Neg()},
		{"credit revenue", domain.Revenue, domain.Credit, amount},
		{"debit revenue", domain.Revenue, domain.Debit, amount.Neg()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignedDelta(tt.accountType, tt.entryType, amount)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}

	_, err := SignedDelta("BOGUS", domain.Debit, amount)
	assert.Error(t, err)
	_, err = SignedDelta(domain.Asset, "sideways", amount)
	assert.Error(t, err)
}

func TestValidatePairs(t *testing.T) {
	ok := domain.EntryPair{DebitAccountID: "a", CreditAccountID: "b", Amount: decimal.NewFromInt(1)}
	assert.NoError(t, ValidatePairs([]domain.EntryPair{ok, ok}))

	assert.ErrorIs(t, ValidatePairs(nil), apperrors.ErrValidation)

	zero := ok
	zero.Amount = decimal.Zero
	assert.ErrorIs(t, ValidatePairs([]domain.EntryPair{zero}), apperrors.ErrValidation)

	same := ok
	same.CreditAccountID = "a"
	assert.ErrorIs(t, ValidatePairs([]domain.EntryPair{same}), apperrors.ErrValidation)

	missing := ok
	missing.DebitAccountID = ""
	assert.ErrorIs(t, ValidatePairs([]domain.EntryPair{missing}), apperrors.ErrValidation)

	storable := ok
	storable.Amount = decimal.RequireFromString("12.3456")
	assert.NoError(t, ValidatePairs([]domain.EntryPair{storable}))

	tooPrecise := ok
	tooPrecise.Amount = decimal.RequireFromString("12.34567")
	assert.ErrorIs(t, ValidatePairs([]domain.EntryPair{tooPrecise}), apperrors.ErrValidation)
}

func TestValidateEntriesBalance(t *testing.T) {
	deleted := time.Now()
	entries := []domain.JournalEntry{
		{EntryID: "1", EntryType: domain.Debit, Amount: decimal.NewFromInt(100)},
		{EntryID: "2", EntryType: domain.Credit, Amount: decimal.NewFromInt(60)},
		{EntryID: "3", EntryType: domain.Credit, Amount: decimal.NewFromInt(40)},
		{EntryID: "4", EntryType: domain.Debit, Amount: decimal.NewFromInt(999), DeletedAt: &deleted},
	}
	assert.NoError(t, ValidateEntriesBalance(entries))

	unbalanced := append(entries[:2:2], domain.JournalEntry{EntryID: "5", EntryType: domain.Credit, Amount: decimal.NewFromInt(39)})
	err := ValidateEntriesBalance(unbalanced)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)

	err = ValidateEntriesBalance(entries[:1])
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
}

func TestReplayAndCompareBalances(t *testing.T) {
	cash := domain.Account{AccountID: "cash", Code: domain.CodeCash, Name: "Cash", AccountType: domain.Asset}
	expense := domain.Account{AccountID: "exp", Code: domain.CodeGeneralExpense, Name: "General Expense", AccountType: domain.ExpenseAccount}
	day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	deleted := day2

	entries := []domain.JournalEntry{
		{EntryID: "1", AccountID: "exp", EntryType: domain.Debit, Amount: decimal.NewFromInt(150), EntryDate: day2},
		{EntryID: "2", AccountID: "cash", EntryType: domain.Credit, Amount: decimal.NewFromInt(150), EntryDate: day2},
		{EntryID: "3", AccountID: "exp", EntryType: domain.Debit, Amount: decimal.NewFromInt(20), EntryDate: day1},
		{EntryID: "4", AccountID: "cash", EntryType: domain.Credit, Amount: decimal.NewFromInt(20), EntryDate: day1, DeletedAt: &deleted},
	}

	replayed, err := ReplayBalances([]domain.Account{cash, expense}, entries)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(170).Equal(replayed["exp"].CurrentBalance))
	assert.Equal(t, int64(2), replayed["exp"].TransactionCount)
	assert.Equal(t, day2, *replayed["exp"].LastTransactionDate)
	assert.True(t, decimal.NewFromInt(-150).Equal(replayed["cash"].CurrentBalance))
	assert.True(t, decimal.NewFromInt(150).Equal(replayed["cash"].TotalCredits))

	stored := map[string]domain.AccountBalance{"exp": replayed["exp"], "cash": replayed["cash"]}
	assert.Empty(t, CompareBalances(stored, replayed))

	drifted := replayed["cash"]
	drifted.CurrentBalance = decimal.NewFromInt(-10)
	stored["cash"] = drifted
	drifts := CompareBalances(stored, replayed)
	require.Len(t, drifts, 1)
	assert.Equal(t, domain.CodeCash, drifts[0].AccountCode)
	assert.True(t, decimal.NewFromInt(-150).Equal(drifts[0].ReplayedBalance))

	_, err = ReplayBalances([]domain.Account{cash}, entries)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
}

func TestApplyThenRevertIsIdentity(t *testing.T) {
	bal := NewBalanceRow(domain.Account{AccountID: "ap", Code: domain.CodeAccountsPayable, AccountType: domain.Liability})
	entry := domain.JournalEntry{AccountID: "ap", EntryType: domain.Credit, Amount: decimal.RequireFromString("300.00"), EntryDate: time.Now()}

	require.NoError(t, ApplyEntry(&bal, entry))
	assert.True(t, decimal.NewFromInt(300).Equal(bal.CurrentBalance))
	require.NoError(t, RevertEntry(&bal, entry))
	assert.True(t, bal.CurrentBalance.IsZero())
	assert.True(t, bal.TotalCredits.IsZero())
	assert.Equal(t, int64(0), bal.TransactionCount)
}
