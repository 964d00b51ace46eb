package models

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

// JournalEntry is a row of journal_entries.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	EntryType       EntryType       `db:"entry_type"`
	Amount          decimal.Decimal `db:"amount"` // Always positive
	Description     string          `db:"description"`
	BoardingHouseID string          `db:"boarding_house_id"`
	EntryDate       time.Time       `db:"entry_date"`
	DeletedAt       *time.Time      `db:"deleted_at"` // Nullable
	AuditFields
}
