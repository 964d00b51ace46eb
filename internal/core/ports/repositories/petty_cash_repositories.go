package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PettyCashReader defines read operations for petty-cash floats and requests
type PettyCashReader interface {
	FindPettyCashAccount(ctx context.Context, userID string) (*domain.PettyCashAccount, error)

	// FindPettyCashAccountForUpdate locks the user's float for the rest of the unit of work.
	FindPettyCashAccountForUpdate(ctx context.Context, userID string) (*domain.PettyCashAccount, error)

	FindPendingByID(ctx context.Context, pendingID string) (*domain.PendingPettyCashTransaction, error)

	// FindPendingByIDForUpdate locks the request row for the rest of the unit of work.
	FindPendingByIDForUpdate(ctx context.Context, pendingID string) (*domain.PendingPettyCashTransaction, error)

	ListPendingByUser(ctx context.Context, userID string, status domain.PendingStatus) ([]domain.PendingPettyCashTransaction, error)
	ListPettyCashTransactions(ctx context.Context, userID string) ([]domain.PettyCashTransaction, error)
}

// PettyCashWriter defines write operations for petty-cash floats and requests
type PettyCashWriter interface {
	SavePettyCashAccount(ctx context.Context, account domain.PettyCashAccount) error

	// AdjustPettyCashAccount increments balance and reserved in one statement.
	// The store refuses results where balance or reserved go negative or reserved exceeds balance.
	AdjustPettyCashAccount(ctx context.Context, userID string, balanceDelta, reservedDelta decimal.Decimal, actorID string, now time.Time) error

	SavePending(ctx context.Context, pending domain.PendingPettyCashTransaction) error
	UpdatePending(ctx context.Context, pending domain.PendingPettyCashTransaction) error
	SavePettyCashTransaction(ctx context.Context, txn domain.PettyCashTransaction) error
}

// PettyCashRepositoryFacade combines all petty-cash operations
type PettyCashRepositoryFacade interface {
	PettyCashReader
	PettyCashWriter
}
