package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/models"
	"github.com/SscSPs/boarding_house_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `account_id, code, name, account_type, is_category, description, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	db querier
}

func newPgxAccountRepository(db querier) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, filter string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, "SELECT "+accountColumns+" FROM chart_of_accounts "+filter, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query accounts", err)
	}
	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect account rows", err)
	}
	accounts := make([]domain.Account, len(modelAccounts))
	for i, m := range modelAccounts {
		accounts[i] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// SaveAccount inserts a new account. The unique index on code rejects reused codes.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO chart_of_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID, m.Code, m.Name, m.AccountType, m.IsCategory, m.Description, m.DeletedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "account", m.Code)
}

// FindAccountByID retrieves an account by its ID, deleted or not.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accounts, err := r.queryAccounts(ctx, "WHERE account_id = $1", accountID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return &accounts[0], nil
}

// FindAccountByCode retrieves a live account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	accounts, err := r.queryAccounts(ctx, "WHERE code = $1 AND deleted_at IS NULL", code)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("account", code)
	}
	return &accounts[0], nil
}

// FindAccountsByIDs retrieves accounts by ID. Any missing ID is reported as not found.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}
	accounts, err := r.queryAccounts(ctx, "WHERE account_id = ANY($1)", accountIDs)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		out[a.AccountID] = a
	}
	var missing []string
	for _, id := range accountIDs {
		if _, ok := out[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: accounts %s", apperrors.ErrNotFound, strings.Join(missing, ", "))
	}
	return out, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeDeleted bool) ([]domain.Account, error) {
	filter := "WHERE deleted_at IS NULL ORDER BY code"
	if includeDeleted {
		filter = "ORDER BY code"
	}
	return r.queryAccounts(ctx, filter)
}

func (r *PgxAccountRepository) SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE chart_of_accounts
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return mapError(err, "account", accountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account", accountID)
	}
	return nil
}
