package repositories

import "context"

// TxFunc is the body of a unit of work. Every repository in repos is bound to the same
// store transaction, so either all writes made through it commit or none do.
type TxFunc func(ctx context.Context, repos RepositoryProvider) error

// TransactionManager runs units of work.
type TransactionManager interface {
	// WithinTx begins a transaction, runs fn and commits when fn returns nil.
	// Any error from fn, or from commit, rolls the transaction back and is returned.
	WithinTx(ctx context.Context, fn TxFunc) error
}

// Store is the single authoritative persistence backend of the ledger.
type Store interface {
	TransactionManager

	// Repositories returns repositories that run outside of any unit of work.
	// They are meant for reads.
	Repositories() RepositoryProvider
}
