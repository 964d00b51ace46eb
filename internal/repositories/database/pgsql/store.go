package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store runs units of work on a PostgreSQL pool.
type Store struct {
	BaseRepository
}

// NewStore creates a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.Store = (*Store)(nil)

// WithinTx runs fn with repositories bound to one database transaction.
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, newRepositoryProvider(tx)); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

// Repositories returns repositories that run each statement on its own connection.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return newRepositoryProvider(s.Pool)
}
