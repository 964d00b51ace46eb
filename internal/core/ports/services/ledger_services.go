package services

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

// LedgerPoster is used by the managers inside their unit of work.
type LedgerPoster interface {
	// OpenTransaction validates and inserts a transaction header.
	OpenTransaction(ctx context.Context, repos portsrepo.RepositoryProvider, params domain.OpenTransactionParams, actor domain.Actor) (*domain.Transaction, error)

	// PostEntryPairs writes one debit and one credit entry per pair, projects each entry
	// and checks that the transaction balances.
	PostEntryPairs(ctx context.Context, repos portsrepo.RepositoryProvider, txn *domain.Transaction, pairs []domain.EntryPair, actor domain.Actor) ([]domain.JournalEntry, error)

	// Record opens a transaction and posts its pairs.
	Record(ctx context.Context, repos portsrepo.RepositoryProvider, params domain.OpenTransactionParams, pairs []domain.EntryPair, actor domain.Actor) (*domain.TransactionWithEntries, error)

	// ReplaceEntries soft-deletes the live entries of a transaction, reverts their
	// projection and posts pairs in their place.
	ReplaceEntries(ctx context.Context, repos portsrepo.RepositoryProvider, txn *domain.Transaction, pairs []domain.EntryPair, actor domain.Actor) ([]domain.JournalEntry, error)
}

// LedgerReaderSvc defines read operations on the transaction ledger
type LedgerReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionWithEntries, error)
	ListEntriesByAccount(ctx context.Context, accountCode string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// LedgerWriterSvc defines standalone write operations on the ledger
type LedgerWriterSvc interface {
	// PostAdjustment records a manual adjustment, such as an opening balance, in its own unit of work.
	PostAdjustment(ctx context.Context, req dto.PostAdjustmentRequest, actor domain.Actor) (*domain.TransactionWithEntries, error)

	// VoidTransaction marks an adjustment voided and posts compensating entries.
	// Transactions owned by an invoice, expense or petty-cash float are refused.
	VoidTransaction(ctx context.Context, transactionID string, reason string, actor domain.Actor) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerPoster
	LedgerReaderSvc
	LedgerWriterSvc
}
