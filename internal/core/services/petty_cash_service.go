package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// pettyCashService runs the petty-cash approval workflow on top of one float row per user.
//
// Submitting an expense reserves its amount, so the available cash drops immediately.
// Approval spends the reservation and posts the ledger entries; rejection releases it.
type pettyCashService struct {
	BaseService
	store    portsrepo.Store
	ledger   portssvc.LedgerPoster
	accounts portssvc.AccountReaderSvc
	currency string
}

// NewPettyCashService creates the petty-cash approval state machine.
func NewPettyCashService(store portsrepo.Store, ledger portssvc.LedgerPoster, accounts portssvc.AccountReaderSvc, publisher events.Publisher, currency string) portssvc.PettyCashSvcFacade {
	return &pettyCashService{
		BaseService: BaseService{Publisher: publisher},
		store:       store,
		ledger:      ledger,
		accounts:    accounts,
		currency:    currency,
	}
}

var _ portssvc.PettyCashSvcFacade = (*pettyCashService)(nil)

// FundPettyCash moves money from the bank into the user's float, opening it when needed.
func (s *pettyCashService) FundPettyCash(ctx context.Context, userID string, req dto.FundPettyCashRequest, actor domain.Actor) (*domain.PettyCashAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Petty cash funding for " + userID
	}

	var account *domain.PettyCashAccount
	var posted *domain.TransactionWithEntries
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		now := nowFunc()
		_, err := repos.PettyCashRepo.FindPettyCashAccountForUpdate(ctx, userID)
		if errors.Is(err, apperrors.ErrNotFound) {
			err = repos.PettyCashRepo.SavePettyCashAccount(ctx, domain.PettyCashAccount{
				UserID:          userID,
				BoardingHouseID: req.BoardingHouseID,
				Balance:         decimal.Zero,
				Reserved:        decimal.Zero,
				AuditFields:     domain.NewAuditFields(actor, now),
			})
		}
		if err != nil {
			return err
		}

		posted, err = s.postMovement(ctx, repos, domain.TxnPettyCashFunding, domain.CodePettyCash, domain.CodeBank,
			req.Amount, description, req.BoardingHouseID, actor)
		if err != nil {
			return err
		}
		if err := repos.PettyCashRepo.AdjustPettyCashAccount(ctx, userID, req.Amount, decimal.Zero, actor.UserID(), now); err != nil {
			return err
		}
		account, err = repos.PettyCashRepo.FindPettyCashAccount(ctx, userID)
		return err
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to fund petty cash", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Petty cash funded", slog.String("user_id", userID), slog.String("amount", req.Amount.String()))
	return account, nil
}

func (s *pettyCashService) SubmitExpense(ctx context.Context, userID string, req dto.SubmitPettyCashExpenseRequest, actor domain.Actor) (*dto.PendingPettyCashResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	accountRef := strings.TrimSpace(req.ExpenseAccountID)
	if accountRef == "" {
		accountRef = domain.CodeGeneralExpense
	}

	var pending domain.PendingPettyCashTransaction
	var available decimal.Decimal
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		float, err := repos.PettyCashRepo.FindPettyCashAccountForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if float.Available().LessThan(req.Amount) {
			return &apperrors.InsufficientBalanceError{Available: float.Available().StringFixed(2), Requested: req.Amount.StringFixed(2)}
		}

		expenseAccount, err := s.accounts.ResolveAccount(ctx, repos, accountRef)
		if err != nil {
			return err
		}
		if expenseAccount.AccountType != domain.ExpenseAccount {
			return fmt.Errorf("%w: account %s is not an expense account", apperrors.ErrValidation, expenseAccount.Code)
		}

		now := nowFunc()
		pending = domain.PendingPettyCashTransaction{
			PendingID:        uuid.NewString(),
			UserID:           userID,
			BoardingHouseID:  float.BoardingHouseID,
			Kind:             domain.PettyCashExpense,
			Amount:           req.Amount,
			Description:      strings.TrimSpace(req.Description),
			ExpenseAccountID: expenseAccount.AccountID,
			Status:           domain.PendingStatusPending,
			AuditFields:      domain.NewAuditFields(actor, now),
		}
		if err := repos.PettyCashRepo.SavePending(ctx, pending); err != nil {
			return err
		}
		if err := repos.PettyCashRepo.AdjustPettyCashAccount(ctx, userID, decimal.Zero, req.Amount, actor.UserID(), now); err != nil {
			return err
		}
		available = float.Available().Sub(req.Amount)
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to submit petty cash expense", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}

	logger.Info("Petty cash expense submitted",
		slog.String("pending_id", pending.PendingID),
		slog.String("user_id", userID),
		slog.String("amount", req.Amount.String()))
	return &dto.PendingPettyCashResponse{
		PendingExpenseID: pending.PendingID,
		Status:           string(pending.Status),
		Kind:             string(pending.Kind),
		Available:        available,
	}, nil
}

// SubmitReplenishment records a pending top-up. Nothing is reserved until it is approved.
func (s *pettyCashService) SubmitReplenishment(ctx context.Context, userID string, req dto.SubmitReplenishmentRequest, actor domain.Actor) (*dto.PendingPettyCashResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var pending domain.PendingPettyCashTransaction
	var available decimal.Decimal
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		float, err := repos.PettyCashRepo.FindPettyCashAccount(ctx, userID)
		if err != nil {
			return err
		}
		pending = domain.PendingPettyCashTransaction{
			PendingID:       uuid.NewString(),
			UserID:          userID,
			BoardingHouseID: float.BoardingHouseID,
			Kind:            domain.PettyCashReplenishment,
			Amount:          req.Amount,
			Description:     strings.TrimSpace(req.Description),
			Status:          domain.PendingStatusPending,
			AuditFields:     domain.NewAuditFields(actor, nowFunc()),
		}
		available = float.Available()
		return repos.PettyCashRepo.SavePending(ctx, pending)
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to submit petty cash replenishment", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}

	logger.Info("Petty cash replenishment submitted", slog.String("pending_id", pending.PendingID), slog.String("user_id", userID))
	return &dto.PendingPettyCashResponse{
		PendingExpenseID: pending.PendingID,
		Status:           string(pending.Status),
		Kind:             string(pending.Kind),
		Available:        available,
	}, nil
}

// Approve posts a pending request. An expense spends its reservation, so the available
// cash does not move a second time; a replenishment increases the balance.
func (s *pettyCashService) Approve(ctx context.Context, pendingID string, actor domain.Actor) (*dto.PettyCashReviewResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	var resp *dto.PettyCashReviewResponse
	var posted *domain.TransactionWithEntries
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		pending, err := s.reviewable(ctx, repos, pendingID)
		if err != nil {
			return err
		}
		float, err := repos.PettyCashRepo.FindPettyCashAccountForUpdate(ctx, pending.UserID)
		if err != nil {
			return err
		}

		now := nowFunc()
		var balanceDelta, reservedDelta decimal.Decimal
		switch pending.Kind {
		case domain.PettyCashExpense:
			if float.Balance.LessThan(pending.Amount) || float.Reserved.LessThan(pending.Amount) {
				return &apperrors.InsufficientBalanceError{Available: float.Balance.StringFixed(2), Requested: pending.Amount.StringFixed(2)}
			}
			expenseAccount, err := repos.AccountRepo.FindAccountByID(ctx, pending.ExpenseAccountID)
			if err != nil {
				return err
			}
			posted, err = s.postMovement(ctx, repos, domain.TxnPettyCashExpense, expenseAccount.Code, domain.CodePettyCash,
				pending.Amount, pending.Description, pending.BoardingHouseID, actor)
			if err != nil {
				return err
			}
			balanceDelta, reservedDelta = pending.Amount.Neg(), pending.Amount.Neg()
		case domain.PettyCashReplenishment:
			posted, err = s.postMovement(ctx, repos, domain.TxnPettyCashReplenishment, domain.CodePettyCash, domain.CodeBank,
				pending.Amount, pending.Description, pending.BoardingHouseID, actor)
			if err != nil {
				return err
			}
			balanceDelta, reservedDelta = pending.Amount, decimal.Zero
		default:
			return fmt.Errorf("%w: unknown petty cash request kind '%s'", apperrors.ErrInvariantViolation, pending.Kind)
		}

		if err := repos.PettyCashRepo.AdjustPettyCashAccount(ctx, pending.UserID, balanceDelta, reservedDelta, actor.UserID(), now); err != nil {
			return err
		}
		if err := repos.PettyCashRepo.SavePettyCashTransaction(ctx, domain.PettyCashTransaction{
			PettyCashTransactionID: uuid.NewString(),
			UserID:                 pending.UserID,
			PendingID:              pending.PendingID,
			Kind:                   pending.Kind,
			Amount:                 pending.Amount,
			TransactionID:          posted.TransactionID,
			AuditFields:            domain.NewAuditFields(actor, now),
		}); err != nil {
			return err
		}

		pending.Status = domain.PendingStatusApproved
		pending.ReviewedBy = actor.UserID()
		pending.ReviewedAt = &now
		pending.Touch(actor, now)
		if err := repos.PettyCashRepo.UpdatePending(ctx, *pending); err != nil {
			return err
		}

		resp, err = s.reviewResponse(ctx, repos, pending, posted.TransactionID)
		return err
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to approve petty cash request", slog.String("error", err.Error()), slog.String("pending_id", pendingID))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Petty cash request approved", slog.String("pending_id", pendingID), slog.String("transaction_id", resp.TransactionID))
	return resp, nil
}

// Reject closes a pending request and releases the reservation of an expense.
func (s *pettyCashService) Reject(ctx context.Context, pendingID string, req dto.RejectPettyCashRequest, actor domain.Actor) (*dto.PettyCashReviewResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}

	var resp *dto.PettyCashReviewResponse
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		pending, err := s.reviewable(ctx, repos, pendingID)
		if err != nil {
			return err
		}
		if _, err := repos.PettyCashRepo.FindPettyCashAccountForUpdate(ctx, pending.UserID); err != nil {
			return err
		}

		now := nowFunc()
		if pending.Kind == domain.PettyCashExpense {
			if err := repos.PettyCashRepo.AdjustPettyCashAccount(ctx, pending.UserID, decimal.Zero, pending.Amount.Neg(), actor.UserID(), now); err != nil {
				return err
			}
		}

		pending.Status = domain.PendingStatusRejected
		pending.RejectionReason = reason
		pending.ReviewedBy = actor.UserID()
		pending.ReviewedAt = &now
		pending.Touch(actor, now)
		if err := repos.PettyCashRepo.UpdatePending(ctx, *pending); err != nil {
			return err
		}

		resp, err = s.reviewResponse(ctx, repos, pending, "")
		return err
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to reject petty cash request", slog.String("error", err.Error()), slog.String("pending_id", pendingID))
		}
		return nil, err
	}

	logger.Info("Petty cash request rejected", slog.String("pending_id", pendingID), slog.String("reason", reason))
	return resp, nil
}

// reviewable locks a request and refuses terminal ones.
func (s *pettyCashService) reviewable(ctx context.Context, repos portsrepo.RepositoryProvider, pendingID string) (*domain.PendingPettyCashTransaction, error) {
	pending, err := repos.PettyCashRepo.FindPendingByIDForUpdate(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	if pending.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: petty cash request %s is already %s", apperrors.ErrInvalidState, pendingID, pending.Status)
	}
	return pending, nil
}

func (s *pettyCashService) reviewResponse(ctx context.Context, repos portsrepo.RepositoryProvider, pending *domain.PendingPettyCashTransaction, transactionID string) (*dto.PettyCashReviewResponse, error) {
	float, err := repos.PettyCashRepo.FindPettyCashAccount(ctx, pending.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.PettyCashReviewResponse{
		PendingExpenseID: pending.PendingID,
		Status:           string(pending.Status),
		TransactionID:    transactionID,
		Balance:          float.Balance,
		Reserved:         float.Reserved,
		Available:        float.Available(),
	}, nil
}

// postMovement records a two-account petty-cash transaction between chart codes.
func (s *pettyCashService) postMovement(ctx context.Context, repos portsrepo.RepositoryProvider, txnType domain.TransactionType, debitCode, creditCode string, amount decimal.Decimal, description, boardingHouseID string, actor domain.Actor) (*domain.TransactionWithEntries, error) {
	debit, err := repos.AccountRepo.FindAccountByCode(ctx, debitCode)
	if err != nil {
		return nil, err
	}
	credit, err := repos.AccountRepo.FindAccountByCode(ctx, creditCode)
	if err != nil {
		return nil, err
	}
	now := nowFunc()
	return s.ledger.Record(ctx, repos, domain.OpenTransactionParams{
		Type:            txnType,
		Reference:       fmt.Sprintf("PC-%s-%s", now.Format("20060102"), strings.ToUpper(shortID())),
		Date:            now,
		Amount:          amount,
		Currency:        s.currency,
		Description:     description,
		BoardingHouseID: boardingHouseID,
	}, []domain.EntryPair{{
		DebitAccountID:  debit.AccountID,
		CreditAccountID: credit.AccountID,
		Amount:          amount,
	}}, actor)
}

func (s *pettyCashService) GetPettyCashAccount(ctx context.Context, userID string) (*domain.PettyCashAccount, error) {
	return s.store.Repositories().PettyCashRepo.FindPettyCashAccount(ctx, userID)
}

// ListPending returns the requests of a user still awaiting review.
func (s *pettyCashService) ListPending(ctx context.Context, userID string) ([]domain.PendingPettyCashTransaction, error) {
	pending, err := s.store.Repositories().PettyCashRepo.ListPendingByUser(ctx, userID, domain.PendingStatusPending)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return []domain.PendingPettyCashTransaction{}, nil
	}
	return pending, nil
}
