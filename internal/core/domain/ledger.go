package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenTransactionParams are the header fields of a new ledger transaction.
type OpenTransactionParams struct {
	Type            TransactionType
	Reference       string
	Date            time.Time
	Amount          decimal.Decimal
	Currency        string
	Description     string
	BoardingHouseID string
}

const (
	// MoneyScale is the number of decimal places accepted on monetary input.
	MoneyScale int32 = 2
	// StorageScale is the scale of the NUMERIC amount columns.
	StorageScale int32 = 4
)

// FitsScale reports whether d has at most places decimal places.
func FitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
