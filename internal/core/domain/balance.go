package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the materialized projection of an account's journal entries.
// It is a cache and can always be rebuilt from the entry log.
type AccountBalance struct {
	AccountID           string          `json:"accountID"`
	AccountCode         string          `json:"accountCode"`
	AccountName         string          `json:"accountName"`
	AccountType         AccountType     `json:"accountType"`
	CurrentBalance      decimal.Decimal `json:"currentBalance"`
	TotalDebits         decimal.Decimal `json:"totalDebits"`
	TotalCredits        decimal.Decimal `json:"totalCredits"`
	TransactionCount    int64           `json:"transactionCount"`
	LastTransactionDate *time.Time      `json:"lastTransactionDate,omitempty"`
}

// BalanceDrift describes a projection row that disagrees with a replay of the entry log.
type BalanceDrift struct {
	AccountID       string          `json:"accountID"`
	AccountCode     string          `json:"accountCode"`
	StoredBalance   decimal.Decimal `json:"storedBalance"`
	ReplayedBalance decimal.Decimal `json:"replayedBalance"`
	StoredDebits    decimal.Decimal `json:"storedDebits"`
	ReplayedDebits  decimal.Decimal `json:"replayedDebits"`
	StoredCredits   decimal.Decimal `json:"storedCredits"`
	ReplayedCredits decimal.Decimal `json:"replayedCredits"`
	StoredCount     int64           `json:"storedCount"`
	ReplayedCount   int64           `json:"replayedCount"`
}

// TrialBalance lists every projected balance with debit and credit totals.
type TrialBalance struct {
	Rows         []AccountBalance `json:"rows"`
	TotalDebits  decimal.Decimal  `json:"totalDebits"`
	TotalCredits decimal.Decimal  `json:"totalCredits"`
	Balanced     bool             `json:"balanced"`
}

// BalanceDelta is an increment applied atomically to one projection row.
type BalanceDelta struct {
	AccountID   string
	AccountCode string
	AccountName string
	AccountType AccountType
	Balance     decimal.Decimal
	Debits      decimal.Decimal
	Credits     decimal.Decimal
	Count       int64
	EntryDate   *time.Time // nil leaves last_transaction_date unchanged
}
