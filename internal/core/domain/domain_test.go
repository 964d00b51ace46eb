package domain

import (
	"testing"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	actor, err := NewActor("  user-1 ")
	require.NoError(t, err)
	assert.Equal(t, "user-1", actor.UserID())
	assert.NoError(t, actor.Validate())

	_, err = NewActor("   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var zero Actor
	assert.ErrorIs(t, zero.Validate(), apperrors.ErrValidation)
}

func TestAuditFieldsTouch(t *testing.T) {
	creator, _ := NewActor("creator")
	editor, _ := NewActor("editor")
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	audit := NewAuditFields(creator, created)
	audit.Touch(editor, created.Add(time.Hour))

	assert.Equal(t, "creator", audit.CreatedBy)
	assert.Equal(t, created, audit.CreatedAt)
	assert.Equal(t, "editor", audit.LastUpdatedBy)
	assert.Equal(t, created.Add(time.Hour), audit.LastUpdatedAt)
}

func TestAccountTypeIsValid(t *testing.T) {
	for _, at := range []AccountType{Asset, Liability, Equity, Revenue, ExpenseAccount} {
		assert.True(t, at.IsValid(), at)
	}
	assert.False(t, AccountType("COST").IsValid())
	assert.False(t, AccountType("asset").IsValid())
}

func TestEntryTypeOpposite(t *testing.T) {
	assert.Equal(t, Credit, Debit.Opposite())
	assert.Equal(t, Debit, Credit.Opposite())
}

func TestSettlementAccountCode(t *testing.T) {
	cases := map[PaymentMethod]string{
		PaymentCash:         CodeCash,
		PaymentBankTransfer: CodeBank,
		PaymentPettyCash:    CodePettyCash,
		PaymentCredit:       CodeAccountsPayable,
	}
	for method, want := range cases {
		got, err := method.SettlementAccountCode()
		require.NoError(t, err, method)
		assert.Equal(t, want, got, method)
	}

	_, err := PaymentMethod("cheque").SettlementAccountCode()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExpenseApplyPayment(t *testing.T) {
	e := Expense{TotalAmount: decimal.NewFromInt(300), RemainingBalance: decimal.NewFromInt(300), PaymentStatus: PaymentDebt}

	e.ApplyPayment(decimal.NewFromInt(100))
	assert.Equal(t, PaymentPartial, e.PaymentStatus)
	assert.True(t, e.RemainingBalance.Equal(decimal.NewFromInt(200)))

	e.ApplyPayment(decimal.NewFromInt(200))
	assert.Equal(t, PaymentFull, e.PaymentStatus)
	assert.True(t, e.RemainingBalance.IsZero())
}

func TestInvoiceOutstandingAndStatus(t *testing.T) {
	inv := Invoice{Amount: decimal.RequireFromString("500.00"), AmountPaid: decimal.RequireFromString("125.50")}
	assert.Equal(t, "374.50", inv.Outstanding().StringFixed(2))

	assert.True(t, InvoicePending.IsOpen())
	assert.True(t, InvoiceOverdue.IsOpen())
	assert.False(t, InvoicePaid.IsOpen())
	assert.False(t, InvoiceCancelled.IsOpen())
}

func TestMonthlyInvoiceReference(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-202603-enr-7", MonthlyInvoiceReference(month, "enr-7"))
	assert.Equal(t, MonthlyInvoiceReference(month, "enr-7"), MonthlyInvoiceReference(month.AddDate(0, 0, 14), "enr-7"))
}

func TestPettyCashAvailable(t *testing.T) {
	a := PettyCashAccount{Balance: decimal.NewFromInt(1000), Reserved: decimal.NewFromInt(250)}
	assert.Equal(t, "750", a.Available().String())

	assert.False(t, PendingStatusPending.IsTerminal())
	assert.True(t, PendingStatusApproved.IsTerminal())
	assert.True(t, PendingStatusRejected.IsTerminal())
}

func TestDefaultChartCodesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range DefaultChart() {
		assert.False(t, seen[a.Code], "duplicate code %s", a.Code)
		seen[a.Code] = true
		assert.True(t, a.AccountType.IsValid(), a.Code)
		assert.False(t, a.IsCategory, a.Code)
	}
}
