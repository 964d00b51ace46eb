package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(id, code string, t domain.AccountType) domain.Account {
	return domain.Account{AccountID: id, Code: code, Name: code, AccountType: t}
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	err := s.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.AccountRepo.SaveAccount(ctx, testAccount("a1", "10002", domain.Asset))
	})
	require.NoError(t, err)

	got, err := s.Repositories().AccountRepo.FindAccountByCode(ctx, "10002")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.AccountID)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := repos.AccountRepo.SaveAccount(ctx, testAccount("a1", "10002", domain.Asset)); err != nil {
			return err
		}
		if err := repos.BalanceRepo.ApplyDelta(ctx, domain.BalanceDelta{AccountID: "a1", AccountCode: "10002", Balance: decimal.NewFromInt(5), Debits: decimal.NewFromInt(5), Credits: decimal.Zero, Count: 1}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.Repositories().AccountRepo.FindAccountByCode(ctx, "10002")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	balances, err := s.Repositories().BalanceRepo.ListBalances(ctx)
	require.NoError(t, err)
	assert.Empty(t, balances)
}

func TestWithinTx_PanicBecomesStorageError(t *testing.T) {
	s := NewStore()
	err := s.WithinTx(context.Background(), func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		panic("unexpected")
	})
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestWithinTx_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewStore().WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.False(t, called)
}

func TestApplyDelta_Accumulates(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()
	d1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	d0 := d1.AddDate(0, 0, -1)

	require.NoError(t, repos.BalanceRepo.ApplyDelta(ctx, domain.BalanceDelta{AccountID: "a1", AccountCode: "10002", AccountType: domain.Asset,
		Balance: decimal.NewFromInt(100), Debits: decimal.NewFromInt(100), Credits: decimal.Zero, Count: 1, EntryDate: &d1}))
	require.NoError(t, repos.BalanceRepo.ApplyDelta(ctx, domain.BalanceDelta{AccountID: "a1", AccountCode: "10002", AccountType: domain.Asset,
		Balance: decimal.NewFromInt(-30), Debits: decimal.Zero, Credits: decimal.NewFromInt(30), Count: 1, EntryDate: &d0}))

	row, err := repos.BalanceRepo.FindBalanceByAccountID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "70", row.CurrentBalance.String())
	assert.Equal(t, "100", row.TotalDebits.String())
	assert.Equal(t, "30", row.TotalCredits.String())
	assert.EqualValues(t, 2, row.TransactionCount)
	require.NotNil(t, row.LastTransactionDate)
	assert.Equal(t, d1, *row.LastTransactionDate)
}

func TestAdjustPettyCashAccount_RejectsOverdraw(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()
	now := time.Now().UTC()

	require.NoError(t, repos.PettyCashRepo.SavePettyCashAccount(ctx, domain.PettyCashAccount{UserID: "u1", Balance: decimal.Zero, Reserved: decimal.Zero}))
	require.NoError(t, repos.PettyCashRepo.AdjustPettyCashAccount(ctx, "u1", decimal.NewFromInt(50), decimal.Zero, "admin", now))

	err := repos.PettyCashRepo.AdjustPettyCashAccount(ctx, "u1", decimal.Zero, decimal.NewFromInt(60), "admin", now)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	err = repos.PettyCashRepo.AdjustPettyCashAccount(ctx, "u1", decimal.NewFromInt(-60), decimal.Zero, "admin", now)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	a, err := repos.PettyCashRepo.FindPettyCashAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "50", a.Balance.String())
	assert.True(t, a.Reserved.IsZero())

	err = repos.PettyCashRepo.AdjustPettyCashAccount(ctx, "nobody", decimal.NewFromInt(1), decimal.Zero, "admin", now)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdjustStudentBalance_GuardsOwnership(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.SeedEnrollment(domain.Enrollment{EnrollmentID: "e1", StudentID: "s1"})
	repos := s.Repositories()
	now := time.Now().UTC()

	bal, err := repos.StudentRepo.AdjustStudentBalance(ctx, "s1", "e1", decimal.NewFromInt(-500), "USD", now)
	require.NoError(t, err)
	assert.Equal(t, "-500", bal.String())

	_, err = repos.StudentRepo.AdjustStudentBalance(ctx, "s2", "e1", decimal.NewFromInt(10), "USD", now)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)

	_, err = repos.StudentRepo.AdjustStudentBalance(ctx, "s1", "missing", decimal.NewFromInt(10), "USD", now)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
