package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates whether a ledger transaction still counts.
type TransactionStatus string

const (
	Posted TransactionStatus = "posted"
	Voided TransactionStatus = "voided"
)

// Transaction is a row of transactions, the header of a balanced set of journal entries.
type Transaction struct {
	TransactionID   string            `db:"transaction_id"`
	TransactionType string            `db:"transaction_type"`
	Reference       string            `db:"reference"`
	Amount          decimal.Decimal   `db:"amount"`
	Currency        string            `db:"currency"`
	Description     string            `db:"description"`
	TransactionDate time.Time         `db:"transaction_date"`
	BoardingHouseID string            `db:"boarding_house_id"`
	Status          TransactionStatus `db:"status"`
	VoidReason      string            `db:"void_reason"`
	AuditFields
}
