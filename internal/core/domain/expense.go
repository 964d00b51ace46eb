package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how an expense or a settlement is paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCredit       PaymentMethod = "credit"

	// PaymentPettyCash posts straight to the Petty Cash ledger account; per-user floats
	// only move through the approval workflow.
	PaymentPettyCash PaymentMethod = "petty_cash"
)

// SettlementAccountCode returns the account credited when paying with m.
// Paying on credit books the amount to Accounts Payable.
func (m PaymentMethod) SettlementAccountCode() (string, error) {
	switch m {
	case PaymentCash:
		return CodeCash, nil
	case PaymentBankTransfer:
		return CodeBank, nil
	case PaymentPettyCash:
		return CodePettyCash, nil
	case PaymentCredit:
		return CodeAccountsPayable, nil
	default:
		return "", fmt.Errorf("%w: unsupported payment method '%s'", apperrors.ErrValidation, m)
	}
}

// PaymentStatus tracks how much of an expense has been settled.
type PaymentStatus string

const (
	PaymentFull    PaymentStatus = "full"
	PaymentPartial PaymentStatus = "partial"
	PaymentDebt    PaymentStatus = "debt"
)

// Expense is a purchase booked against an expense account.
type Expense struct {
	ExpenseID        string          `json:"expenseID"`
	TransactionID    string          `json:"transactionID"`
	BoardingHouseID  string          `json:"boardingHouseID"`
	ExpenseDate      time.Time       `json:"expenseDate"`
	Amount           decimal.Decimal `json:"amount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	ExpenseAccountID string          `json:"expenseAccountID"`
	SupplierID       *string         `json:"supplierID,omitempty"`
	ReferenceNumber  string          `json:"referenceNumber"`
	ReceiptPath      *string         `json:"receiptPath,omitempty"`
	Description      string          `json:"description"`
	AuditFields
}

// ApplyPayment reduces the remaining balance and derives the payment status.
func (e *Expense) ApplyPayment(amount decimal.Decimal) {
	e.RemainingBalance = e.RemainingBalance.Sub(amount)
	if e.RemainingBalance.IsZero() {
		e.PaymentStatus = PaymentFull
	} else {
		e.PaymentStatus = PaymentPartial
	}
}

// SupplierPayment settles part or all of a credit expense.
type SupplierPayment struct {
	PaymentID       string          `json:"paymentID"`
	SupplierID      *string         `json:"supplierID,omitempty"`
	ExpenseID       string          `json:"expenseID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"paymentDate"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	TransactionID   string          `json:"transactionID"`
	ReferenceNumber string          `json:"referenceNumber"`
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}
