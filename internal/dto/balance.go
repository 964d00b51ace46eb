package dto

import "github.com/SscSPs/boarding_house_ledger/internal/core/domain"

// RebuildBalancesResponse reports the outcome of a projection rebuild.
type RebuildBalancesResponse struct {
	AccountsRebuilt int `json:"accountsRebuilt"`
}

// VerifyBalancesResponse reports projection rows that disagree with the entry log.
type VerifyBalancesResponse struct {
	Consistent bool                  `json:"consistent"`
	Drifts     []domain.BalanceDrift `json:"drifts"`
}
