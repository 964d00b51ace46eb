package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
	"github.com/SscSPs/boarding_house_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceService maintains and serves the account balance projection.
type balanceService struct {
	BaseService
	store portsrepo.Store
}

// NewBalanceService creates the account balance projector.
func NewBalanceService(store portsrepo.Store) portssvc.BalanceSvcFacade {
	return &balanceService{store: store}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) ApplyEntry(ctx context.Context, repos portsrepo.RepositoryProvider, account domain.Account, entry domain.JournalEntry) error {
	delta, err := entryDelta(account, entry)
	if err != nil {
		return err
	}
	delta.Count = 1
	date := entry.EntryDate
	delta.EntryDate = &date
	return repos.BalanceRepo.ApplyDelta(ctx, delta)
}

func (s *balanceService) RevertEntry(ctx context.Context, repos portsrepo.RepositoryProvider, account domain.Account, entry domain.JournalEntry) error {
	delta, err := entryDelta(account, entry)
	if err != nil {
		return err
	}
	delta.Balance = delta.Balance.Neg()
	delta.Debits = delta.Debits.Neg()
	delta.Credits = delta.Credits.Neg()
	delta.Count = -1
	return repos.BalanceRepo.ApplyDelta(ctx, delta)
}

func entryDelta(account domain.Account, entry domain.JournalEntry) (domain.BalanceDelta, error) {
	signed, err := accounting.CalculateSignedAmount(entry, account.AccountType)
	if err != nil {
		return domain.BalanceDelta{}, err
	}
	delta := domain.BalanceDelta{
		AccountID:   account.AccountID,
		AccountCode: account.Code,
		AccountName: account.Name,
		AccountType: account.AccountType,
		Balance:     signed,
		Debits:      decimal.Zero,
		Credits:     decimal.Zero,
	}
	if entry.EntryType == domain.Debit {
		delta.Debits = entry.Amount
	} else {
		delta.Credits = entry.Amount
	}
	return delta, nil
}

// GetBalance returns the projection row of an account, or a zero row when the
// account has never been posted to.
func (s *balanceService) GetBalance(ctx context.Context, accountCode string) (*domain.AccountBalance, error) {
	repos := s.store.Repositories()
	account, err := repos.AccountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, err
	}
	bal, err := repos.BalanceRepo.FindBalanceByAccountID(ctx, account.AccountID)
	if errors.Is(err, apperrors.ErrNotFound) {
		row := accounting.NewBalanceRow(*account)
		return &row, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to read account balance", slog.String("code", accountCode))
		return nil, err
	}
	return bal, nil
}

func (s *balanceService) ListBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	rows, err := s.store.Repositories().BalanceRepo.ListBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account balances")
		return nil, err
	}
	if rows == nil {
		return []domain.AccountBalance{}, nil
	}
	return rows, nil
}

// TrialBalance places each balance in the column of its normal side. A debit-normal
// account with a negative balance is shown in the credit column and vice versa.
func (s *balanceService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	rows, err := s.ListBalances(ctx)
	if err != nil {
		return nil, err
	}

	tb := &domain.TrialBalance{Rows: rows, TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
	for _, r := range rows {
		debitNormal := r.AccountType == domain.Asset || r.AccountType == domain.ExpenseAccount
		// stored balances are already signed toward the normal side
		onDebitSide := debitNormal == r.CurrentBalance.IsPositive()
		switch {
		case r.CurrentBalance.IsZero():
		case onDebitSide:
			tb.TotalDebits = tb.TotalDebits.Add(r.CurrentBalance.Abs())
		default:
			tb.TotalCredits = tb.TotalCredits.Add(r.CurrentBalance.Abs())
		}
	}
	tb.Balanced = tb.TotalDebits.Equal(tb.TotalCredits)
	return tb, nil
}

func (s *balanceService) RebuildBalances(ctx context.Context) (int, error) {
	var rebuilt int
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		replayed, err := s.replay(ctx, repos)
		if err != nil {
			return err
		}
		rows := make([]domain.AccountBalance, 0, len(replayed))
		for _, r := range replayed {
			rows = append(rows, r)
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].AccountCode < rows[j].AccountCode })
		if err := repos.BalanceRepo.ReplaceAllBalances(ctx, rows); err != nil {
			return err
		}
		rebuilt = len(rows)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to rebuild account balances")
		return 0, err
	}

	s.LogInfo(ctx, "Account balances rebuilt", slog.Int("accounts", rebuilt))
	return rebuilt, nil
}

func (s *balanceService) VerifyBalances(ctx context.Context) ([]domain.BalanceDrift, error) {
	var drifts []domain.BalanceDrift
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		replayed, err := s.replay(ctx, repos)
		if err != nil {
			return err
		}
		rows, err := repos.BalanceRepo.ListBalances(ctx)
		if err != nil {
			return err
		}
		stored := make(map[string]domain.AccountBalance, len(rows))
		for _, r := range rows {
			stored[r.AccountID] = r
		}
		// Accounts never posted to have no stored row; that is not drift.
		for id, r := range replayed {
			if _, ok := stored[id]; !ok && r.TransactionCount == 0 && r.CurrentBalance.IsZero() {
				delete(replayed, id)
			}
		}
		drifts = accounting.CompareBalances(stored, replayed)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to verify account balances")
		return nil, err
	}

	sort.Slice(drifts, func(i, j int) bool { return drifts[i].AccountCode < drifts[j].AccountCode })
	if len(drifts) > 0 {
		middleware.GetLoggerFromCtx(ctx).Warn("Account balance drift detected", slog.Int("accounts", len(drifts)))
	}
	if drifts == nil {
		drifts = []domain.BalanceDrift{}
	}
	return drifts, nil
}

func (s *balanceService) replay(ctx context.Context, repos portsrepo.RepositoryProvider) (map[string]domain.AccountBalance, error) {
	accounts, err := repos.AccountRepo.ListAccounts(ctx, true)
	if err != nil {
		return nil, err
	}
	entries, err := repos.EntryRepo.ListAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.ReplayBalances(accounts, entries)
}
