package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PettyCashAccount is the single authoritative petty-cash float of a user.
// Reserved holds amounts of submitted expenses awaiting review.
type PettyCashAccount struct {
	UserID          string          `json:"userID"`
	BoardingHouseID string          `json:"boardingHouseID"`
	Balance         decimal.Decimal `json:"balance"`
	Reserved        decimal.Decimal `json:"reserved"`
	AuditFields
}

// Available is the balance not yet reserved by pending expenses.
func (a PettyCashAccount) Available() decimal.Decimal {
	return a.Balance.Sub(a.Reserved)
}

// PettyCashKind distinguishes money going out from money coming in.
type PettyCashKind string

const (
	PettyCashExpense       PettyCashKind = "expense"
	PettyCashReplenishment PettyCashKind = "replenishment"
)

// PendingStatus is the state of a petty-cash request.
type PendingStatus string

const (
	PendingStatusPending  PendingStatus = "pending"
	PendingStatusApproved PendingStatus = "approved"
	PendingStatusRejected PendingStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s PendingStatus) IsTerminal() bool {
	return s == PendingStatusApproved || s == PendingStatusRejected
}

// PendingPettyCashTransaction is a request waiting for approval.
type PendingPettyCashTransaction struct {
	PendingID        string          `json:"pendingID"`
	UserID           string          `json:"userID"`
	BoardingHouseID  string          `json:"boardingHouseID"`
	Kind             PettyCashKind   `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	ExpenseAccountID string          `json:"expenseAccountID,omitempty"`
	Status           PendingStatus   `json:"status"`
	RejectionReason  string          `json:"rejectionReason,omitempty"`
	ReviewedBy       string          `json:"reviewedBy,omitempty"`
	ReviewedAt       *time.Time      `json:"reviewedAt,omitempty"`
	AuditFields
}

// PettyCashTransaction is an approved, posted petty-cash movement.
type PettyCashTransaction struct {
	PettyCashTransactionID string          `json:"pettyCashTransactionID"`
	UserID                 string          `json:"userID"`
	PendingID              string          `json:"pendingID"`
	Kind                   PettyCashKind   `json:"kind"`
	Amount                 decimal.Decimal `json:"amount"`
	TransactionID          string          `json:"transactionID"`
	AuditFields
}
