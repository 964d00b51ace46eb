package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEventType names a ledger notification published after commit.
type LedgerEventType string

const (
	EventTransactionPosted LedgerEventType = "ledger.transaction_posted"
	EventTransactionVoided LedgerEventType = "ledger.transaction_voided"
)

// LedgerEvent describes a committed change of the ledger.
type LedgerEvent struct {
	EventID         string          `json:"eventId"`
	Type            LedgerEventType `json:"type"`
	TransactionID   string          `json:"transactionId"`
	TransactionType TransactionType `json:"transactionType"`
	Reference       string          `json:"reference"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	BoardingHouseID string          `json:"boardingHouseId"`
	ActorID         string          `json:"actorId"`
	OccurredAt      time.Time       `json:"occurredAt"`
	Entries         []EventEntry    `json:"entries"`
}

// EventEntry is the wire form of one journal entry inside a LedgerEvent.
type EventEntry struct {
	AccountID string          `json:"accountId"`
	EntryType EntryType       `json:"entryType"`
	Amount    decimal.Decimal `json:"amount"`
}
