package dto

import (
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundPettyCashRequest tops up a user's float from the bank account.
// The float is opened on first funding.
type FundPettyCashRequest struct {
	BoardingHouseID string          `json:"boardingHouseId" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description     string          `json:"description"`
}

// SubmitPettyCashExpenseRequest asks to spend from the float.
// ExpenseAccountID accepts an account id or code and defaults to the general expense account.
type SubmitPettyCashExpenseRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description      string          `json:"description" binding:"required"`
	ExpenseAccountID string          `json:"expenseAccountId"`
}

// SubmitReplenishmentRequest asks to move money from the bank into the float.
type SubmitReplenishmentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description string          `json:"description" binding:"required"`
}

// RejectPettyCashRequest carries the mandatory rejection reason.
type RejectPettyCashRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// PendingPettyCashResponse is returned after a request is submitted.
type PendingPettyCashResponse struct {
	PendingExpenseID string          `json:"pendingExpenseId"`
	Status           string          `json:"status"`
	Kind             string          `json:"kind"`
	Available        decimal.Decimal `json:"available"`
}

// PettyCashReviewResponse is returned after a request is approved or rejected.
type PettyCashReviewResponse struct {
	PendingExpenseID string          `json:"pendingExpenseId"`
	Status           string          `json:"status"`
	TransactionID    string          `json:"transactionId,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	Reserved         decimal.Decimal `json:"reserved"`
	Available        decimal.Decimal `json:"available"`
}

// PettyCashAccountResponse defines the data returned for a user's float.
type PettyCashAccountResponse struct {
	UserID          string          `json:"userId"`
	BoardingHouseID string          `json:"boardingHouseId"`
	Balance         decimal.Decimal `json:"balance"`
	Reserved        decimal.Decimal `json:"reserved"`
	Available       decimal.Decimal `json:"available"`
}

// ToPettyCashAccountResponse converts a domain.PettyCashAccount to its DTO.
func ToPettyCashAccountResponse(a *domain.PettyCashAccount) PettyCashAccountResponse {
	return PettyCashAccountResponse{
		UserID:          a.UserID,
		BoardingHouseID: a.BoardingHouseID,
		Balance:         a.Balance,
		Reserved:        a.Reserved,
		Available:       a.Available(),
	}
}
