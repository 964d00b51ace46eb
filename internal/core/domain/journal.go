package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a journal entry is a debit or a credit.
type EntryType string

const (
	Debit  EntryType = "debit"
	Credit EntryType = "credit"
)

// Opposite returns the other side of the entry.
func (e EntryType) Opposite() EntryType {
	if e == Debit {
		return Credit
	}
	return Debit
}

// JournalEntry is one debit or credit line of a transaction against a single account.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"` // always positive
	Description     string          `json:"description"`
	BoardingHouseID string          `json:"boardingHouseID"`
	EntryDate       time.Time       `json:"entryDate"` // transaction date of the owning transaction
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// EntryPair describes one balanced debit/credit couple to post.
type EntryPair struct {
	DebitAccountID  string
	CreditAccountID string
	Amount          decimal.Decimal
	Description     string
}
