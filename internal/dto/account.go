package dto

import (
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to add an account to the chart.
type CreateAccountRequest struct {
	Code        string             `json:"code" binding:"required,numeric,min=3,max=10"`
	Name        string             `json:"name" binding:"required,max=120"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	IsCategory  bool               `json:"isCategory"`
	Description string             `json:"description"` // Optional
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeDeleted bool `form:"includeDeleted"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountId"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	IsCategory  bool               `json:"isCategory"`
	Description string             `json:"description"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: a.AccountType,
		IsCategory:  a.IsCategory,
		Description: a.Description,
		DeletedAt:   a.DeletedAt,
		CreatedAt:   a.CreatedAt,
		CreatedBy:   a.CreatedBy,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
