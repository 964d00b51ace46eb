package services

import (
	"context"
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

// expenseService books expenses and settles what is owed to suppliers.
type expenseService struct {
	BaseService
	store    portsrepo.Store
	ledger   portssvc.LedgerPoster
	accounts portssvc.AccountReaderSvc
	currency string
}

// NewExpenseService creates the payable and settlement manager.
func NewExpenseService(store portsrepo.Store, ledger portssvc.LedgerPoster, accounts portssvc.AccountReaderSvc, publisher events.Publisher, currency string) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{Publisher: publisher},
		store:       store,
		ledger:      ledger,
		accounts:    accounts,
		currency:    currency,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, actor domain.Actor) (*dto.RecordExpenseResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	method := domain.PaymentMethod(req.PaymentMethod)
	settlementCode, err := method.SettlementAccountCode()
	if err != nil {
		return nil, err
	}

	reference := strings.TrimSpace(req.ReferenceNumber)
	if reference == "" {
		reference = fmt.Sprintf("EXP-%s-%s", date.Format("20060102"), strings.ToUpper(shortID()))
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Expense " + reference
	}

	var expense domain.Expense
	var posted *domain.TransactionWithEntries
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		expenseAccount, err := s.expenseAccount(ctx, repos, req.AccountID)
		if err != nil {
			return err
		}
		settlement, err := repos.AccountRepo.FindAccountByCode(ctx, settlementCode)
		if err != nil {
			return err
		}

		posted, err = s.ledger.Record(ctx, repos, domain.OpenTransactionParams{
			Type:            domain.TxnExpense,
			Reference:       reference,
			Date:            date,
			Amount:          req.Amount,
			Currency:        s.currency,
			Description:     description,
			BoardingHouseID: req.BoardingHouseID,
		}, []domain.EntryPair{{
			DebitAccountID:  expenseAccount.AccountID,
			CreditAccountID: settlement.AccountID,
			Amount:          req.Amount,
		}}, actor)
		if err != nil {
			return err
		}

		expense = domain.Expense{
			ExpenseID:        uuid.NewString(),
			TransactionID:    posted.TransactionID,
			BoardingHouseID:  req.BoardingHouseID,
			ExpenseDate:      date,
			Amount:           req.Amount,
			TotalAmount:      req.Amount,
			RemainingBalance: decimal.Zero,
			PaymentMethod:    method,
			PaymentStatus:    domain.PaymentFull,
			ExpenseAccountID: expenseAccount.AccountID,
			SupplierID:       req.SupplierID,
			ReferenceNumber:  reference,
			ReceiptPath:      req.ReceiptPath,
			Description:      description,
			AuditFields:      domain.NewAuditFields(actor, nowFunc()),
		}
		if method == domain.PaymentCredit {
			expense.PaymentStatus = domain.PaymentDebt
			expense.RemainingBalance = req.Amount
		}
		return repos.ExpenseRepo.SaveExpense(ctx, expense)
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to record expense", slog.String("error", err.Error()))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("payment_method", string(method)),
		slog.String("amount", req.Amount.String()))
	return &dto.RecordExpenseResponse{ExpenseID: expense.ExpenseID, TransactionID: expense.TransactionID}, nil
}

// expenseAccount resolves ref and requires an account of type EXPENSE.
func (s *expenseService) expenseAccount(ctx context.Context, repos portsrepo.RepositoryProvider, ref string) (*domain.Account, error) {
	account, err := s.accounts.ResolveAccount(ctx, repos, ref)
	if err != nil {
		return nil, err
	}
	if account.AccountType != domain.ExpenseAccount {
		return nil, fmt.Errorf("%w: account %s is not an expense account", apperrors.ErrValidation, account.Code)
	}
	return account, nil
}

// UpdateExpense edits an expense that has no settlements and replaces its journal entries.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var updated *domain.Expense
	var posted *domain.TransactionWithEntries
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		expense, err := repos.ExpenseRepo.FindExpenseByIDForUpdate(ctx, expenseID)
		if err != nil {
			return err
		}
		paid, err := repos.ExpenseRepo.SumSupplierPayments(ctx, expenseID)
		if err != nil {
			return err
		}
		if paid.IsPositive() {
			return fmt.Errorf("%w: expense %s already has supplier payments", apperrors.ErrConflict, expenseID)
		}

		if req.Amount != nil {
			expense.Amount = *req.Amount
			expense.TotalAmount = *req.Amount
			if expense.PaymentMethod == domain.PaymentCredit {
				expense.RemainingBalance = *req.Amount
			}
		}
		if req.AccountID != nil {
			account, err := s.expenseAccount(ctx, repos, *req.AccountID)
			if err != nil {
				return err
			}
			expense.ExpenseAccountID = account.AccountID
		}
		if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
			expense.Description = strings.TrimSpace(*req.Description)
		}
		if req.Date != nil {
			date, err := dto.ParseDate(*req.Date)
			if err != nil {
				return err
			}
			expense.ExpenseDate = date
		}

		txn, err := repos.TransactionRepo.FindTransactionByID(ctx, expense.TransactionID)
		if err != nil {
			return err
		}
		if txn.Status != domain.TransactionPosted {
			return fmt.Errorf("%w: transaction of expense %s is %s", apperrors.ErrInvalidState, expenseID, txn.Status)
		}
		now := nowFunc()
		txn.Amount = expense.TotalAmount
		txn.Description = expense.Description
		txn.TransactionDate = expense.ExpenseDate
		txn.Touch(actor, now)
		if err := repos.TransactionRepo.UpdateTransaction(ctx, *txn); err != nil {
			return err
		}

		settlementCode, err := expense.PaymentMethod.SettlementAccountCode()
		if err != nil {
			return err
		}
		settlement, err := repos.AccountRepo.FindAccountByCode(ctx, settlementCode)
		if err != nil {
			return err
		}
		entries, err := s.ledger.ReplaceEntries(ctx, repos, txn, []domain.EntryPair{{
			DebitAccountID:  expense.ExpenseAccountID,
			CreditAccountID: settlement.AccountID,
			Amount:          expense.TotalAmount,
		}}, actor)
		if err != nil {
			return err
		}

		expense.Touch(actor, now)
		if err := repos.ExpenseRepo.UpdateExpense(ctx, *expense); err != nil {
			return err
		}
		updated = expense
		posted = &domain.TransactionWithEntries{Transaction: *txn, Entries: entries}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Expense updated", slog.String("expense_id", expenseID))
	return updated, nil
}

func (s *expenseService) RecordSupplierPayment(ctx context.Context, req dto.RecordSupplierPaymentRequest, actor domain.Actor) (*dto.SupplierPaymentResponse, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	payment, expense, err := s.settle(ctx, req.ExpenseID, req.Amount, req.Method, req.Date, domain.TxnSupplierPayment, actor)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierPaymentResponse{
		PaymentID:        payment.PaymentID,
		TransactionID:    payment.TransactionID,
		RemainingBalance: expense.RemainingBalance,
		PaymentStatus:    string(expense.PaymentStatus),
	}, nil
}

func (s *expenseService) PayAccountsPayable(ctx context.Context, expenseID string, req dto.AccountsPayablePaymentRequest, actor domain.Actor) (*dto.AccountsPayablePaymentResponse, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	payment, expense, err := s.settle(ctx, expenseID, req.Amount, req.Method, req.Date, domain.TxnAccountsPayablePayment, actor)
	if err != nil {
		return nil, err
	}
	return &dto.AccountsPayablePaymentResponse{
		PaymentTransactionID: payment.TransactionID,
		PaymentID:            payment.PaymentID,
		RemainingBalance:     expense.RemainingBalance,
	}, nil
}

// settle pays down a credit expense: Debit Accounts Payable, Credit the account of method.
// The remaining balance is recomputed from the stored payments, never trusted from the row.
func (s *expenseService) settle(ctx context.Context, expenseID string, amount decimal.Decimal, methodName, dateValue string, txnType domain.TransactionType, actor domain.Actor) (*domain.SupplierPayment, *domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date, err := dto.ParseDate(dateValue)
	if err != nil {
		return nil, nil, err
	}
	method := domain.PaymentMethod(methodName)
	if method == domain.PaymentCredit {
		return nil, nil, fmt.Errorf("%w: a payable cannot be settled on credit", apperrors.ErrValidation)
	}
	code, err := method.SettlementAccountCode()
	if err != nil {
		return nil, nil, err
	}

	var payment domain.SupplierPayment
	var expense *domain.Expense
	var posted *domain.TransactionWithEntries
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		expense, err = repos.ExpenseRepo.FindExpenseByIDForUpdate(ctx, expenseID)
		if err != nil {
			return err
		}
		if expense.PaymentMethod != domain.PaymentCredit {
			return fmt.Errorf("%w: expense %s was not bought on credit", apperrors.ErrValidation, expenseID)
		}

		paid, err := repos.ExpenseRepo.SumSupplierPayments(ctx, expenseID)
		if err != nil {
			return err
		}
		remaining := expense.TotalAmount.Sub(paid)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		if amount.GreaterThan(remaining) {
			return &apperrors.OverpaymentError{Remaining: remaining.StringFixed(2), Requested: amount.StringFixed(2)}
		}

		payable, err := repos.AccountRepo.FindAccountByCode(ctx, domain.CodeAccountsPayable)
		if err != nil {
			return err
		}
		cash, err := repos.AccountRepo.FindAccountByCode(ctx, code)
		if err != nil {
			return err
		}

		reference := fmt.Sprintf("PAY-%s-%s", date.Format("20060102"), strings.ToUpper(shortID()))
		posted, err = s.ledger.Record(ctx, repos, domain.OpenTransactionParams{
			Type:            txnType,
			Reference:       reference,
			Date:            date,
			Amount:          amount,
			Currency:        s.currency,
			Description:     "Payment of expense " + expense.ReferenceNumber,
			BoardingHouseID: expense.BoardingHouseID,
		}, []domain.EntryPair{{
			DebitAccountID:  payable.AccountID,
			CreditAccountID: cash.AccountID,
			Amount:          amount,
		}}, actor)
		if err != nil {
			return err
		}

		now := nowFunc()
		payment = domain.SupplierPayment{
			PaymentID:       uuid.NewString(),
			SupplierID:      expense.SupplierID,
			ExpenseID:       expense.ExpenseID,
			Amount:          amount,
			PaymentDate:     date,
			PaymentMethod:   method,
			TransactionID:   posted.TransactionID,
			ReferenceNumber: reference,
			AuditFields:     domain.NewAuditFields(actor, now),
		}
		if err := repos.ExpenseRepo.SaveSupplierPayment(ctx, payment); err != nil {
			return err
		}

		expense.RemainingBalance = remaining
		expense.ApplyPayment(amount)
		expense.Touch(actor, now)
		return repos.ExpenseRepo.UpdateExpense(ctx, *expense)
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to settle expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		}
		return nil, nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Expense settled",
		slog.String("expense_id", expenseID),
		slog.String("amount", amount.String()),
		slog.String("remaining", expense.RemainingBalance.String()),
		slog.String("status", string(expense.PaymentStatus)))
	return &payment, expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, []domain.SupplierPayment, error) {
	repos := s.store.Repositories()
	expense, err := repos.ExpenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := repos.ExpenseRepo.ListSupplierPaymentsByExpense(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	return expense, payments, nil
}

