package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of expenses.
type Expense struct {
	ExpenseID        string          `db:"expense_id"`
	TransactionID    string          `db:"transaction_id"`
	BoardingHouseID  string          `db:"boarding_house_id"`
	ExpenseDate      time.Time       `db:"expense_date"`
	Amount           decimal.Decimal `db:"amount"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	RemainingBalance decimal.Decimal `db:"remaining_balance"`
	PaymentMethod    string          `db:"payment_method"`
	PaymentStatus    string          `db:"payment_status"`
	ExpenseAccountID string          `db:"expense_account_id"`
	SupplierID       *string         `db:"supplier_id"` // Nullable
	ReferenceNumber  string          `db:"reference_number"`
	ReceiptPath      *string         `db:"receipt_path"` // Nullable
	Description      string          `db:"description"`
	AuditFields
}

// SupplierPayment is a row of supplier_payments.
type SupplierPayment struct {
	PaymentID       string          `db:"payment_id"`
	SupplierID      *string         `db:"supplier_id"` // Nullable
	ExpenseID       string          `db:"expense_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentDate     time.Time       `db:"payment_date"`
	PaymentMethod   string          `db:"payment_method"`
	TransactionID   string          `db:"transaction_id"`
	ReferenceNumber string          `db:"reference_number"`
	DeletedAt       *time.Time      `db:"deleted_at"` // Nullable
	AuditFields
}
