package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/models"
	"github.com/SscSPs/boarding_house_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `transaction_id, transaction_type, reference, amount, currency, description,
	transaction_date, boarding_house_id, status, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

const entryColumns = `entry_id, transaction_id, account_id, entry_type, amount, description,
	boarding_house_id, entry_date, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	db querier
}

func newPgxTransactionRepository(db querier) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	rows, err := r.db.Query(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE transaction_id = $1", transactionID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query transaction", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapError(err, "transaction", transactionID)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.TransactionID, m.TransactionType, m.Reference, m.Amount, m.Currency, m.Description,
		m.TransactionDate, m.BoardingHouseID, m.Status, m.VoidReason,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "transaction", m.TransactionID)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = $2, description = $3, transaction_date = $4, status = $5, void_reason = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.TransactionID, m.Amount, m.Description, m.TransactionDate, m.Status, m.VoidReason,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "transaction", m.TransactionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction", m.TransactionID)
	}
	return nil
}

type PgxEntryRepository struct {
	db querier
}

func newPgxEntryRepository(db querier) portsrepo.JournalEntryRepositoryFacade {
	return &PgxEntryRepository{db: db}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxEntryRepository)(nil)

func (r *PgxEntryRepository) queryEntries(ctx context.Context, filter string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.db.Query(ctx, "SELECT "+entryColumns+" FROM journal_entries "+filter, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query journal entries", err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect journal entry rows", err)
	}
	return mapping.ToDomainJournalEntries(modelEntries), nil
}

func (r *PgxEntryRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	return r.queryEntries(ctx, "WHERE transaction_id = $1 AND deleted_at IS NULL ORDER BY created_at, entry_id", transactionID)
}

// ListEntriesByAccount pages an account's entries newest first using an (entry_date, created_at, entry_id) keyset.
func (r *PgxEntryRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, before *portsrepo.EntryCursor) ([]domain.JournalEntry, error) {
	if before == nil {
		return r.queryEntries(ctx, `
			WHERE account_id = $1 AND deleted_at IS NULL
			ORDER BY entry_date DESC, created_at DESC, entry_id DESC
			LIMIT $2`, accountID, limit)
	}
	return r.queryEntries(ctx, `
		WHERE account_id = $1 AND deleted_at IS NULL AND (entry_date, created_at, entry_id) < ($3, $4, $5)
		ORDER BY entry_date DESC, created_at DESC, entry_id DESC
		LIMIT $2`, accountID, limit, before.EntryDate, before.CreatedAt, before.EntryID)
}

func (r *PgxEntryRepository) ListAllEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return r.queryEntries(ctx, "WHERE deleted_at IS NULL ORDER BY entry_date, created_at, entry_id")
}

func (r *PgxEntryRepository) AccountHasEntries(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM journal_entries WHERE account_id = $1 AND deleted_at IS NULL)",
		accountID,
	).Scan(&exists)
	if err != nil {
		return false, mapError(err, "account", accountID)
	}
	return exists, nil
}

// SaveEntries inserts all entries in one batch.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		if !e.Amount.IsPositive() {
			return fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
		}
		m := mapping.ToModelJournalEntry(e)
		batch.Queue(query,
			m.EntryID, m.TransactionID, m.AccountID, m.EntryType, m.Amount, m.Description,
			m.BoardingHouseID, m.EntryDate, m.DeletedAt,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			return mapError(err, "journal entry", e.EntryID)
		}
	}
	return nil
}

// SoftDeleteEntriesByTransactionID stamps deleted_at and returns the rows as they were.
func (r *PgxEntryRepository) SoftDeleteEntriesByTransactionID(ctx context.Context, transactionID string, now time.Time) ([]domain.JournalEntry, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE journal_entries
		SET deleted_at = $2
		WHERE transaction_id = $1 AND deleted_at IS NULL
		RETURNING `+entryColumns, transactionID, now)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to delete journal entries", err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, mapError(err, "transaction", transactionID)
	}
	removed := mapping.ToDomainJournalEntries(modelEntries)
	for i := range removed {
		removed[i].DeletedAt = nil
	}
	return removed, nil
}
