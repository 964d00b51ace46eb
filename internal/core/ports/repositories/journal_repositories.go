package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
)

// TransactionReader defines read operations for ledger transaction headers
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transaction headers
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction rewrites the mutable header fields: amount, description, date,
	// status, void reason and last update audit.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction header operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// FindEntriesByTransactionID returns the non-deleted entries of a transaction.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)

	// ListEntriesByAccount returns non-deleted entries for an account, newest first.
	// When before is non-nil only entries strictly older than (entryDate, createdAt) are returned.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, before *EntryCursor) ([]domain.JournalEntry, error)

	// ListAllEntries returns every non-deleted entry, oldest first. Used for replay.
	ListAllEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// AccountHasEntries reports whether any non-deleted entry references the account.
	AccountHasEntries(ctx context.Context, accountID string) (bool, error)
}

// JournalEntryWriter defines write operations for journal entries
type JournalEntryWriter interface {
	SaveEntries(ctx context.Context, entries []domain.JournalEntry) error

	// SoftDeleteEntriesByTransactionID stamps deleted_at on all live entries of the
	// transaction and returns them as they were before deletion.
	SoftDeleteEntriesByTransactionID(ctx context.Context, transactionID string, now time.Time) ([]domain.JournalEntry, error)
}

// JournalEntryRepositoryFacade combines all journal entry operations
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// EntryCursor is the keyset position used for paging entries.
type EntryCursor struct {
	EntryDate time.Time
	CreatedAt time.Time
	EntryID   string
}
