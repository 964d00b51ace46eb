package models

import "time"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset          AccountType = "ASSET"
	Liability      AccountType = "LIABILITY"
	Equity         AccountType = "EQUITY"
	Revenue        AccountType = "REVENUE"
	ExpenseAccount AccountType = "EXPENSE"
)

// Account is a row of chart_of_accounts.
type Account struct {
	AccountID   string      `db:"account_id"`
	Code        string      `db:"code"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	IsCategory  bool        `db:"is_category"`
	Description string      `db:"description"`
	DeletedAt   *time.Time  `db:"deleted_at"` // Nullable
	AuditFields
}
