package repositories

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
)

// BalanceRepositoryFacade persists the account balance projection.
type BalanceRepositoryFacade interface {
	// ApplyDelta upserts the projection row, adding the delta to the stored values in a
	// single atomic statement.
	ApplyDelta(ctx context.Context, delta domain.BalanceDelta) error

	FindBalanceByAccountID(ctx context.Context, accountID string) (*domain.AccountBalance, error)

	// ListBalances returns every projection row ordered by account code.
	ListBalances(ctx context.Context) ([]domain.AccountBalance, error)

	// ReplaceAllBalances drops the projection and writes rows in its place.
	ReplaceAllBalances(ctx context.Context, rows []domain.AccountBalance) error
}
