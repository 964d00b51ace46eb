package dto

import (
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryResponse defines the data returned for one journal entry.
type JournalEntryResponse struct {
	EntryID       string          `json:"entryId"`
	TransactionID string          `json:"transactionId"`
	AccountID     string          `json:"accountId"`
	EntryType     string          `json:"entryType"` // debit or credit
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	EntryDate     time.Time       `json:"entryDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionResponse defines the data returned for a ledger transaction and its entries.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionId"`
	TransactionType string                 `json:"transactionType"`
	Reference       string                 `json:"reference"`
	Amount          decimal.Decimal        `json:"amount"`
	Currency        string                 `json:"currency"`
	Description     string                 `json:"description"`
	TransactionDate time.Time              `json:"transactionDate"`
	BoardingHouseID string                 `json:"boardingHouseId"`
	Status          string                 `json:"status"`
	CreatedBy       string                 `json:"createdBy"`
	CreatedAt       time.Time              `json:"createdAt"`
	Entries         []JournalEntryResponse `json:"entries"`
}

// AdjustmentPairRequest is one debit/credit line of a manual adjustment.
// Accounts are referenced by id or chart code.
type AdjustmentPairRequest struct {
	DebitAccount  string          `json:"debitAccount" binding:"required"`
	CreditAccount string          `json:"creditAccount" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description   string          `json:"description"`
}

// PostAdjustmentRequest posts a manual adjustment such as an opening balance or a correction.
type PostAdjustmentRequest struct {
	BoardingHouseID string                  `json:"boardingHouseId" binding:"required"`
	Date            string                  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description     string                  `json:"description" binding:"required"`
	Reference       string                  `json:"reference"`
	Pairs           []AdjustmentPairRequest `json:"pairs" binding:"required,min=1,dive"`
}

// VoidTransactionRequest carries the reason a transaction is voided.
type VoidTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListEntriesParams defines query parameters for paging the entries of an account.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListEntriesResponse is one page of entries.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		TransactionID: e.TransactionID,
		AccountID:     e.AccountID,
		EntryType:     string(e.EntryType),
		Amount:        e.Amount,
		Description:   e.Description,
		EntryDate:     e.EntryDate,
		CreatedAt:     e.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(e)
	}
	return responses
}

// ToTransactionResponse converts a transaction with its entries to TransactionResponse DTO.
func ToTransactionResponse(t *domain.TransactionWithEntries) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		TransactionType: string(t.TransactionType),
		Reference:       t.Reference,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		BoardingHouseID: t.BoardingHouseID,
		Status:          string(t.Status),
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
		Entries:         ToJournalEntryResponses(t.Entries),
	}
}
