package services

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

// AccountReaderSvc defines read operations on the chart of accounts
type AccountReaderSvc interface {
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)

	// ResolveAccount finds a live, postable account by id or, failing that, by code.
	ResolveAccount(ctx context.Context, repos portsrepo.RepositoryProvider, ref string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations on the chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error)

	// DeleteAccount soft-deletes an account that no live entry references.
	DeleteAccount(ctx context.Context, code string, actor domain.Actor) error

	// SeedDefaultChart creates the well-known accounts that are missing.
	SeedDefaultChart(ctx context.Context, actor domain.Actor) ([]domain.Account, error)
}

// AccountSvcFacade combines all account service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
