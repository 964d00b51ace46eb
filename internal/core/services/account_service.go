package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
	"github.com/google/uuid"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	store portsrepo.Store
}

// NewAccountService creates a new chart of accounts service.
func NewAccountService(store portsrepo.Store) portssvc.AccountSvcFacade {
	return &accountService{store: store}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		AccountType: req.AccountType,
		IsCategory:  req.IsCategory,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(actor, nowFunc()),
	}

	if err := s.store.Repositories().AccountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("code", account.Code))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.store.Repositories().AccountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account by code", slog.String("error", err.Error()), slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.store.Repositories().AccountRepo.ListAccounts(ctx, params.IncludeDeleted)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// ResolveAccount accepts an account id or a chart code.
func (s *accountService) ResolveAccount(ctx context.Context, repos portsrepo.RepositoryProvider, ref string) (*domain.Account, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: account reference is required", apperrors.ErrValidation)
	}

	account, err := repos.AccountRepo.FindAccountByID(ctx, ref)
	if errors.Is(err, apperrors.ErrNotFound) {
		account, err = repos.AccountRepo.FindAccountByCode(ctx, ref)
	}
	if err != nil {
		return nil, err
	}
	if account.IsDeleted() {
		return nil, apperrors.NewNotFoundError("account", ref)
	}
	if account.IsCategory {
		return nil, fmt.Errorf("%w: account %s is a category and cannot be posted to", apperrors.ErrValidation, account.Code)
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, code string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return err
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		account, err := repos.AccountRepo.FindAccountByCode(ctx, code)
		if err != nil {
			return err
		}
		referenced, err := repos.EntryRepo.AccountHasEntries(ctx, account.AccountID)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%w: account %s is referenced by journal entries", apperrors.ErrConflict, code)
		}
		return repos.AccountRepo.SoftDeleteAccount(ctx, account.AccountID, actor.UserID(), nowFunc())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("code", code))
		}
		return err
	}

	logger.Info("Account soft-deleted", slog.String("code", code))
	return nil
}

func (s *accountService) SeedDefaultChart(ctx context.Context, actor domain.Actor) ([]domain.Account, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	var created []domain.Account
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		created = created[:0]
		now := nowFunc()
		for _, tmpl := range domain.DefaultChart() {
			_, err := repos.AccountRepo.FindAccountByCode(ctx, tmpl.Code)
			if err == nil {
				continue
			}
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			tmpl.AccountID = uuid.NewString()
			tmpl.AuditFields = domain.NewAuditFields(actor, now)
			if err := repos.AccountRepo.SaveAccount(ctx, tmpl); err != nil {
				return err
			}
			created = append(created, tmpl)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default chart of accounts")
		return nil, err
	}

	s.LogInfo(ctx, "Default chart of accounts seeded", slog.Int("created", len(created)))
	return created, nil
}
