package services

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
)

// BalanceProjector keeps the balance projection in step with the entry log.
// Both calls must run inside the unit of work that wrote the entry.
type BalanceProjector interface {
	ApplyEntry(ctx context.Context, repos portsrepo.RepositoryProvider, account domain.Account, entry domain.JournalEntry) error
	RevertEntry(ctx context.Context, repos portsrepo.RepositoryProvider, account domain.Account, entry domain.JournalEntry) error
}

// BalanceReaderSvc defines read operations on projected balances
type BalanceReaderSvc interface {
	GetBalance(ctx context.Context, accountCode string) (*domain.AccountBalance, error)
	ListBalances(ctx context.Context) ([]domain.AccountBalance, error)
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
}

// BalanceMaintenanceSvc defines the repair and drift-detection procedures
type BalanceMaintenanceSvc interface {
	// RebuildBalances replaces the projection with a replay of all live entries.
	RebuildBalances(ctx context.Context) (int, error)

	// VerifyBalances replays the entry log and reports rows that disagree with it.
	VerifyBalances(ctx context.Context) ([]domain.BalanceDrift, error)
}

// BalanceSvcFacade combines all balance service interfaces
type BalanceSvcFacade interface {
	BalanceProjector
	BalanceReaderSvc
	BalanceMaintenanceSvc
}
