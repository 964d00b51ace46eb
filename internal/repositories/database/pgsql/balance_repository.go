package pgsql

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

const balanceColumns = `account_id, account_code, account_name, account_type, current_balance,
	total_debits, total_credits, transaction_count, last_transaction_date`

type PgxBalanceRepository struct {
	db querier
}

func newPgxBalanceRepository(db querier) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{db: db}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

func scanBalance(row pgx.CollectableRow) (domain.AccountBalance, error) {
	var b domain.AccountBalance
	err := row.Scan(
		&b.AccountID, &b.AccountCode, &b.AccountName, &b.AccountType, &b.CurrentBalance,
		&b.TotalDebits, &b.TotalCredits, &b.TransactionCount, &b.LastTransactionDate,
	)
	return b, err
}

// ApplyDelta adds the delta to the projection row in a single upsert, so concurrent
// postings against the same account never lose an update.
func (r *PgxBalanceRepository) ApplyDelta(ctx context.Context, delta domain.BalanceDelta) error {
	query := `
		INSERT INTO current_account_balances (` + balanceColumns + `, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (account_id) DO UPDATE SET
			account_code = EXCLUDED.account_code,
			account_name = EXCLUDED.account_name,
			account_type = EXCLUDED.account_type,
			current_balance = current_account_balances.current_balance + EXCLUDED.current_balance,
			total_debits = current_account_balances.total_debits + EXCLUDED.total_debits,
			total_credits = current_account_balances.total_credits + EXCLUDED.total_credits,
			transaction_count = current_account_balances.transaction_count + EXCLUDED.transaction_count,
			last_transaction_date = GREATEST(current_account_balances.last_transaction_date, EXCLUDED.last_transaction_date),
			last_updated_at = NOW();
	`
	_, err := r.db.Exec(ctx, query,
		delta.AccountID, delta.AccountCode, delta.AccountName, delta.AccountType, delta.Balance,
		delta.Debits, delta.Credits, delta.Count, delta.EntryDate,
	)
	return mapError(err, "account balance", delta.AccountID)
}

func (r *PgxBalanceRepository) FindBalanceByAccountID(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	rows, err := r.db.Query(ctx, "SELECT "+balanceColumns+" FROM current_account_balances WHERE account_id = $1", accountID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query account balance", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBalance)
	if err != nil {
		return nil, mapError(err, "account balance", accountID)
	}
	return &b, nil
}

func (r *PgxBalanceRepository) ListBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	rows, err := r.db.Query(ctx, "SELECT "+balanceColumns+" FROM current_account_balances ORDER BY account_code")
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query account balances", err)
	}
	balances, err := pgx.CollectRows(rows, scanBalance)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to collect account balance rows", err)
	}
	return balances, nil
}

// ReplaceAllBalances clears the projection and inserts rows in one batch.
func (r *PgxBalanceRepository) ReplaceAllBalances(ctx context.Context, rows []domain.AccountBalance) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM current_account_balances"); err != nil {
		return apperrors.NewStorageError("failed to clear account balances", err)
	}
	if len(rows) == 0 {
		return nil
	}
	query := `
		INSERT INTO current_account_balances (` + balanceColumns + `, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW());
	`
	batch := &pgx.Batch{}
	for _, b := range rows {
		batch.Queue(query,
			b.AccountID, b.AccountCode, b.AccountName, b.AccountType, b.CurrentBalance,
			b.TotalDebits, b.TotalCredits, b.TransactionCount, b.LastTransactionDate,
		)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for _, b := range rows {
		if _, err := br.Exec(); err != nil {
			return mapError(err, "account balance", b.AccountID)
		}
	}
	return nil
}
