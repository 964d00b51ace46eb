package domain

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

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, ExpenseAccount:
		return true
	}
	return false
}

// Well-known account codes used by the managers.
const (
	CodePettyCash          = "10001"
	CodeCash               = "10002"
	CodeBank               = "10003"
	CodeAccountsReceivable = "10005"
	CodeAccountsPayable    = "20001"
	CodeOwnersEquity       = "30001"
	CodeRentalsIncome      = "40001"
	CodeGeneralExpense     = "5000"
)

// Account is an entry of the chart of accounts. Code is the stable external identifier.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsCategory  bool        `json:"isCategory"` // grouping node, cannot be posted to
	Description string      `json:"description"`
	DeletedAt   *time.Time  `json:"deletedAt,omitempty"`
	AuditFields
}

// IsDeleted reports whether the account has been soft-deleted.
func (a Account) IsDeleted() bool {
	return a.DeletedAt != nil
}

// DefaultChart is the chart seeded into a fresh ledger.
func DefaultChart() []Account {
	return []Account{
		{Code: CodePettyCash, Name: "Petty Cash", AccountType: Asset},
		{Code: CodeCash, Name: "Cash", AccountType: Asset},
		{Code: CodeBank, Name: "Bank", AccountType: Asset},
		{Code: CodeAccountsReceivable, Name: "Accounts Receivable", AccountType: Asset},
		{Code: CodeAccountsPayable, Name: "Accounts Payable", AccountType: Liability},
		{Code: CodeOwnersEquity, Name: "Owner's Equity", AccountType: Equity},
		{Code: CodeRentalsIncome, Name: "Rentals Income", AccountType: Revenue},
		{Code: CodeGeneralExpense, Name: "General Expense", AccountType: ExpenseAccount},
	}
}
