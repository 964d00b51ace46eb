package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const pettyCashAccountColumns = `user_id, boarding_house_id, balance, reserved,
	created_at, created_by, last_updated_at, last_updated_by`

const pendingColumns = `pending_id, user_id, boarding_house_id, kind, amount, description,
	expense_account_id, status, rejection_reason, reviewed_by, reviewed_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPettyCashRepository struct {
	db querier
}

func newPgxPettyCashRepository(db querier) portsrepo.PettyCashRepositoryFacade {
	return &PgxPettyCashRepository{db: db}
}

var _ portsrepo.PettyCashRepositoryFacade = (*PgxPettyCashRepository)(nil)

func scanPettyCashAccount(row pgx.CollectableRow) (domain.PettyCashAccount, error) {
	var a domain.PettyCashAccount
	err := row.Scan(
		&a.UserID, &a.BoardingHouseID, &a.Balance, &a.Reserved,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	return a, err
}

func scanPending(row pgx.CollectableRow) (domain.PendingPettyCashTransaction, error) {
	var p domain.PendingPettyCashTransaction
	err := row.Scan(
		&p.PendingID, &p.UserID, &p.BoardingHouseID, &p.Kind, &p.Amount, &p.Description,
		&p.ExpenseAccountID, &p.Status, &p.RejectionReason, &p.ReviewedBy, &p.ReviewedAt,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	return p, err
}

func (r *PgxPettyCashRepository) findAccount(ctx context.Context, userID, suffix string) (*domain.PettyCashAccount, error) {
	rows, err := r.db.Query(ctx, "SELECT "+pettyCashAccountColumns+" FROM petty_cash_accounts WHERE user_id = $1"+suffix, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query petty cash account", err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanPettyCashAccount)
	if err != nil {
		return nil, mapError(err, "petty cash account", userID)
	}
	return &a, nil
}

func (r *PgxPettyCashRepository) FindPettyCashAccount(ctx context.Context, userID string) (*domain.PettyCashAccount, error) {
	return r.findAccount(ctx, userID, "")
}

func (r *PgxPettyCashRepository) FindPettyCashAccountForUpdate(ctx context.Context, userID string) (*domain.PettyCashAccount, error) {
	return r.findAccount(ctx, userID, " FOR UPDATE")
}

func (r *PgxPettyCashRepository) findPending(ctx context.Context, pendingID, suffix string) (*domain.PendingPettyCashTransaction, error) {
	rows, err := r.db.Query(ctx, "SELECT "+pendingColumns+" FROM petty_cash_pending_transactions WHERE pending_id = $1"+suffix, pendingID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query pending petty cash transaction", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPending)
	if err != nil {
		return nil, mapError(err, "pending petty cash transaction", pendingID)
	}
	return &p, nil
}

func (r *PgxPettyCashRepository) FindPendingByID(ctx context.Context, pendingID string) (*domain.PendingPettyCashTransaction, error) {
	return r.findPending(ctx, pendingID, "")
}

func (r *PgxPettyCashRepository) FindPendingByIDForUpdate(ctx context.Context, pendingID string) (*domain.PendingPettyCashTransaction, error) {
	return r.findPending(ctx, pendingID, " FOR UPDATE")
}

func (r *PgxPettyCashRepository) ListPendingByUser(ctx context.Context, userID string, status domain.PendingStatus) ([]domain.PendingPettyCashTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+pendingColumns+`
		FROM petty_cash_pending_transactions
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at`, userID, string(status))
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query pending petty cash transactions", err)
	}
	out, err := pgx.CollectRows(rows, scanPending)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect pending petty cash rows", err)
	}
	return out, nil
}

func (r *PgxPettyCashRepository) ListPettyCashTransactions(ctx context.Context, userID string) ([]domain.PettyCashTransaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT petty_cash_transaction_id, user_id, pending_id, kind, amount, transaction_id,
			created_at, created_by, last_updated_at, last_updated_by
		FROM petty_cash_transactions
		WHERE user_id = $1
		ORDER BY created_at`, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query petty cash transactions", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PettyCashTransaction, error) {
		var t domain.PettyCashTransaction
		err := row.Scan(
			&t.PettyCashTransactionID, &t.UserID, &t.PendingID, &t.Kind, &t.Amount, &t.TransactionID,
			&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
		)
		return t, err
	})
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect petty cash transaction rows", err)
	}
	return out, nil
}

func (r *PgxPettyCashRepository) SavePettyCashAccount(ctx context.Context, account domain.PettyCashAccount) error {
	query := `
		INSERT INTO petty_cash_accounts (` + pettyCashAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		account.UserID, account.BoardingHouseID, account.Balance, account.Reserved,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	return mapError(err, "petty cash account", account.UserID)
}

// AdjustPettyCashAccount relies on the table's CHECK constraints to refuse overdrafts.
func (r *PgxPettyCashRepository) AdjustPettyCashAccount(ctx context.Context, userID string, balanceDelta, reservedDelta decimal.Decimal, actorID string, now time.Time) error {
	query := `
		UPDATE petty_cash_accounts
		SET balance = balance + $2, reserved = reserved + $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, userID, balanceDelta, reservedDelta, now, actorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return fmt.Errorf("%w: petty cash account %s (%s)", apperrors.ErrInsufficientBalance, userID, pgErr.ConstraintName)
		}
		return mapError(err, "petty cash account", userID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("petty cash account", userID)
	}
	return nil
}

func (r *PgxPettyCashRepository) SavePending(ctx context.Context, pending domain.PendingPettyCashTransaction) error {
	query := `
		INSERT INTO petty_cash_pending_transactions (` + pendingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		pending.PendingID, pending.UserID, pending.BoardingHouseID, pending.Kind, pending.Amount, pending.Description,
		pending.ExpenseAccountID, pending.Status, pending.RejectionReason, pending.ReviewedBy, pending.ReviewedAt,
		pending.CreatedAt, pending.CreatedBy, pending.LastUpdatedAt, pending.LastUpdatedBy,
	)
	return mapError(err, "pending petty cash transaction", pending.PendingID)
}

func (r *PgxPettyCashRepository) UpdatePending(ctx context.Context, pending domain.PendingPettyCashTransaction) error {
	query := `
		UPDATE petty_cash_pending_transactions
		SET status = $2, rejection_reason = $3, reviewed_by = $4, reviewed_at = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE pending_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		pending.PendingID, pending.Status, pending.RejectionReason, pending.ReviewedBy, pending.ReviewedAt,
		pending.LastUpdatedAt, pending.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "pending petty cash transaction", pending.PendingID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("pending petty cash transaction", pending.PendingID)
	}
	return nil
}

func (r *PgxPettyCashRepository) SavePettyCashTransaction(ctx context.Context, txn domain.PettyCashTransaction) error {
	query := `
		INSERT INTO petty_cash_transactions (
			petty_cash_transaction_id, user_id, pending_id, kind, amount, transaction_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		txn.PettyCashTransactionID, txn.UserID, txn.PendingID, txn.Kind, txn.Amount, txn.TransactionID,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	return mapError(err, "petty cash transaction", txn.PettyCashTransactionID)
}
