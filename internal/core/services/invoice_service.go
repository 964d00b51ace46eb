package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

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

// invoiceService bills students and tracks what they owe.
type invoiceService struct {
	BaseService
	store    portsrepo.Store
	ledger   portssvc.LedgerPoster
	currency string
}

// NewInvoiceService creates the invoice and receivable manager.
func NewInvoiceService(store portsrepo.Store, ledger portssvc.LedgerPoster, publisher events.Publisher, currency string) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService: BaseService{Publisher: publisher},
		store:       store,
		ledger:      ledger,
		currency:    currency,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// invoiceInput is the normalized form shared by single and monthly billing.
type invoiceInput struct {
	StudentID    string
	EnrollmentID string
	Amount       decimal.Decimal
	Description  string
	Date         time.Time
	Kind         domain.TransactionType
	Reference    string
	Notes        string
}

func (s *invoiceService) GenerateInvoice(ctx context.Context, req dto.GenerateInvoiceRequest, actor domain.Actor) (*dto.GenerateInvoiceResponse, error) {
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

	in := invoiceInput{
		StudentID:    req.StudentID,
		EnrollmentID: req.EnrollmentID,
		Amount:       req.Amount,
		Description:  strings.TrimSpace(req.Description),
		Date:         date,
		Kind:         domain.TxnInitialInvoice,
		Reference:    strings.TrimSpace(req.Reference),
		Notes:        req.Notes,
	}
	if req.Kind != "" {
		in.Kind = domain.TransactionType(req.Kind)
	}
	if in.Reference == "" {
		in.Reference = fmt.Sprintf("INV-%s-%s", date.Format("20060102"), strings.ToUpper(shortID()))
	}

	var invoice *domain.Invoice
	var posted *domain.TransactionWithEntries
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		invoice, posted, err = s.generateInTx(ctx, repos, in, actor)
		return err
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to generate invoice", slog.String("error", err.Error()), slog.String("enrollment_id", in.EnrollmentID))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Invoice generated", slog.String("invoice_id", invoice.InvoiceID), slog.String("reference", invoice.ReferenceNumber))
	return &dto.GenerateInvoiceResponse{InvoiceID: invoice.InvoiceID, TransactionID: invoice.TransactionID}, nil
}

// generateInTx performs the whole single-invoice algorithm inside the caller's unit of work.
func (s *invoiceService) generateInTx(ctx context.Context, repos portsrepo.RepositoryProvider, in invoiceInput, actor domain.Actor) (*domain.Invoice, *domain.TransactionWithEntries, error) {
	enrollment, err := repos.StudentRepo.FindEnrollmentByID(ctx, in.EnrollmentID)
	if err != nil {
		return nil, nil, err
	}
	if enrollment.DeletedAt != nil {
		return nil, nil, apperrors.NewNotFoundError("enrollment", in.EnrollmentID)
	}
	if enrollment.StudentID != in.StudentID {
		return nil, nil, fmt.Errorf("%w: enrollment %s does not belong to student %s", apperrors.ErrValidation, in.EnrollmentID, in.StudentID)
	}
	student, err := repos.StudentRepo.FindStudentByID(ctx, in.StudentID)
	if err != nil {
		return nil, nil, err
	}
	if student.DeletedAt != nil {
		return nil, nil, apperrors.NewNotFoundError("student", in.StudentID)
	}

	receivable, err := repos.AccountRepo.FindAccountByCode(ctx, domain.CodeAccountsReceivable)
	if err != nil {
		return nil, nil, err
	}
	revenue, err := repos.AccountRepo.FindAccountByCode(ctx, domain.CodeRentalsIncome)
	if err != nil {
		return nil, nil, err
	}

	description := in.Description
	if description == "" {
		description = fmt.Sprintf("Rent invoice %s for %s", in.Reference, student.FullName)
	}

	posted, err := s.ledger.Record(ctx, repos, domain.OpenTransactionParams{
		Type:            in.Kind,
		Reference:       in.Reference,
		Date:            in.Date,
		Amount:          in.Amount,
		Currency:        s.currency,
		Description:     description,
		BoardingHouseID: enrollment.BoardingHouseID,
	}, []domain.EntryPair{{
		DebitAccountID:  receivable.AccountID,
		CreditAccountID: revenue.AccountID,
		Amount:          in.Amount,
	}}, actor)
	if err != nil {
		return nil, nil, err
	}

	now := nowFunc()
	invoice := domain.Invoice{
		InvoiceID:       uuid.NewString(),
		StudentID:       in.StudentID,
		EnrollmentID:    in.EnrollmentID,
		BoardingHouseID: enrollment.BoardingHouseID,
		Amount:          in.Amount,
		AmountPaid:      decimal.Zero,
		Description:     description,
		InvoiceDate:     in.Date,
		ReferenceNumber: in.Reference,
		Status:          domain.InvoicePending,
		Notes:           in.Notes,
		TransactionID:   posted.TransactionID,
		AuditFields:     domain.NewAuditFields(actor, now),
	}
	if err := repos.InvoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, nil, err
	}

	if _, err := repos.StudentRepo.AdjustStudentBalance(ctx, in.StudentID, in.EnrollmentID, in.Amount.Neg(), s.currency, now); err != nil {
		return nil, nil, err
	}
	return &invoice, posted, nil
}

func (s *invoiceService) GenerateMonthlyInvoices(ctx context.Context, req dto.GenerateMonthlyInvoicesRequest, actor domain.Actor) (*dto.GenerateMonthlyInvoicesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	month, err := dto.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]decimal.Decimal, len(req.Students))
	for _, o := range req.Students {
		overrides[o.EnrollmentID] = o.Amount
	}

	reads := s.store.Repositories()
	eligible, err := reads.StudentRepo.ListBillableEnrollments(ctx, req.BoardingHouseID)
	if err != nil {
		logger.Error("Failed to list billable enrollments", slog.String("error", err.Error()), slog.String("boarding_house_id", req.BoardingHouseID))
		return nil, err
	}

	resp := &dto.GenerateMonthlyInvoicesResponse{
		TotalAmount: decimal.Zero,
		Invoices:    []dto.MonthlyInvoiceResult{},
		Skipped:     []dto.MonthlyInvoiceSkip{},
		Errors:      []dto.MonthlyInvoiceError{},
	}

	billable := make(map[string]struct{}, len(eligible))
	for _, e := range eligible {
		billable[e.EnrollmentID] = struct{}{}
	}
	for _, o := range req.Students {
		if _, ok := billable[o.EnrollmentID]; !ok {
			resp.Errors = append(resp.Errors, dto.MonthlyInvoiceError{
				EnrollmentID: o.EnrollmentID,
				Error:        "enrollment is not billable: student inactive or no occupied bed",
			})
		}
	}

	for _, e := range eligible {
		reference := domain.MonthlyInvoiceReference(month, e.EnrollmentID)

		existing, err := reads.InvoiceRepo.FindInvoiceByReference(ctx, reference)
		if err == nil {
			resp.Skipped = append(resp.Skipped, dto.MonthlyInvoiceSkip{EnrollmentID: e.EnrollmentID, ReferenceNumber: reference, InvoiceID: existing.InvoiceID})
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			resp.Errors = append(resp.Errors, dto.MonthlyInvoiceError{EnrollmentID: e.EnrollmentID, StudentID: e.StudentID, Error: err.Error()})
			continue
		}

		amount := e.MonthlyRent
		if o, ok := overrides[e.EnrollmentID]; ok {
			amount = o
		}
		if !amount.IsPositive() {
			resp.Errors = append(resp.Errors, dto.MonthlyInvoiceError{EnrollmentID: e.EnrollmentID, StudentID: e.StudentID, Error: "invoice amount must be positive"})
			continue
		}

		in := invoiceInput{
			StudentID:    e.StudentID,
			EnrollmentID: e.EnrollmentID,
			Amount:       amount,
			Description:  fmt.Sprintf("Monthly rent %s - %s", month.Format("January 2006"), e.StudentName),
			Date:         month,
			Kind:         domain.TxnMonthlyInvoice,
			Reference:    reference,
		}

		var invoice *domain.Invoice
		var posted *domain.TransactionWithEntries
		err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			var err error
			invoice, posted, err = s.generateInTx(ctx, repos, in, actor)
			return err
		})
		if errors.Is(err, apperrors.ErrDuplicate) {
			resp.Skipped = append(resp.Skipped, dto.MonthlyInvoiceSkip{EnrollmentID: e.EnrollmentID, ReferenceNumber: reference})
			continue
		}
		if err != nil {
			logger.Warn("Monthly invoice failed", slog.String("enrollment_id", e.EnrollmentID), slog.String("error", err.Error()))
			resp.Errors = append(resp.Errors, dto.MonthlyInvoiceError{EnrollmentID: e.EnrollmentID, StudentID: e.StudentID, Error: err.Error()})
			continue
		}

		s.publish(ctx, postedEvent(posted, actor))
		resp.Invoices = append(resp.Invoices, dto.MonthlyInvoiceResult{
			InvoiceID:       invoice.InvoiceID,
			TransactionID:   invoice.TransactionID,
			EnrollmentID:    e.EnrollmentID,
			StudentID:       e.StudentID,
			StudentName:     e.StudentName,
			Amount:          amount,
			ReferenceNumber: reference,
		})
		resp.TotalAmount = resp.TotalAmount.Add(amount)
	}
	resp.TotalInvoices = len(resp.Invoices)

	logger.Info("Monthly invoices generated",
		slog.String("boarding_house_id", req.BoardingHouseID),
		slog.String("month", req.Month),
		slog.Int("created", resp.TotalInvoices),
		slog.Int("skipped", len(resp.Skipped)),
		slog.Int("failed", len(resp.Errors)))
	return resp, nil
}

func (s *invoiceService) RecordStudentPayment(ctx context.Context, invoiceID string, req dto.RecordStudentPaymentRequest, actor domain.Actor) (*dto.StudentPaymentResponse, error) {
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
	code, err := domain.PaymentMethod(req.Method).SettlementAccountCode()
	if err != nil {
		return nil, err
	}

	var resp *dto.StudentPaymentResponse
	var posted *domain.TransactionWithEntries
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		invoice, err := repos.InvoiceRepo.FindInvoiceByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if !invoice.Status.IsOpen() {
			return fmt.Errorf("%w: invoice %s is %s", apperrors.ErrInvalidState, invoiceID, invoice.Status)
		}
		outstanding := invoice.Outstanding()
		if req.Amount.GreaterThan(outstanding) {
			return &apperrors.OverpaymentError{Remaining: outstanding.StringFixed(2), Requested: req.Amount.StringFixed(2)}
		}

		cash, err := repos.AccountRepo.FindAccountByCode(ctx, code)
		if err != nil {
			return err
		}
		receivable, err := repos.AccountRepo.FindAccountByCode(ctx, domain.CodeAccountsReceivable)
		if err != nil {
			return err
		}

		posted, err = s.ledger.Record(ctx, repos, domain.OpenTransactionParams{
			Type:            domain.TxnInvoicePayment,
			Reference:       invoice.ReferenceNumber,
			Date:            date,
			Amount:          req.Amount,
			Currency:        s.currency,
			Description:     "Payment for invoice " + invoice.ReferenceNumber,
			BoardingHouseID: invoice.BoardingHouseID,
		}, []domain.EntryPair{{
			DebitAccountID:  cash.AccountID,
			CreditAccountID: receivable.AccountID,
			Amount:          req.Amount,
		}}, actor)
		if err != nil {
			return err
		}

		now := nowFunc()
		invoice.AmountPaid = invoice.AmountPaid.Add(req.Amount)
		if invoice.Outstanding().IsZero() {
			invoice.Status = domain.InvoicePaid
		}
		invoice.Touch(actor, now)
		if err := repos.InvoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
			return err
		}

		balance, err := repos.StudentRepo.AdjustStudentBalance(ctx, invoice.StudentID, invoice.EnrollmentID, req.Amount, s.currency, now)
		if err != nil {
			return err
		}

		resp = &dto.StudentPaymentResponse{
			InvoiceID:      invoice.InvoiceID,
			TransactionID:  posted.TransactionID,
			Status:         string(invoice.Status),
			Outstanding:    invoice.Outstanding(),
			StudentBalance: balance,
		}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to record student payment", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Student payment recorded", slog.String("invoice_id", invoiceID), slog.String("amount", req.Amount.String()))
	return resp, nil
}

func (s *invoiceService) CancelInvoice(ctx context.Context, invoiceID string, req dto.CancelInvoiceRequest, actor domain.Actor) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var cancelled *domain.Invoice
	var posted *domain.TransactionWithEntries
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		invoice, err := repos.InvoiceRepo.FindInvoiceByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if !invoice.Status.IsOpen() {
			return fmt.Errorf("%w: invoice %s is %s", apperrors.ErrInvalidState, invoiceID, invoice.Status)
		}
		if invoice.AmountPaid.IsPositive() {
			return fmt.Errorf("%w: invoice %s has payments recorded", apperrors.ErrConflict, invoiceID)
		}

		revenue, err := repos.AccountRepo.FindAccountByCode(ctx, domain.CodeRentalsIncome)
		if err != nil {
			return err
		}
		receivable, err := repos.AccountRepo.FindAccountByCode(ctx, domain.CodeAccountsReceivable)
		if err != nil {
			return err
		}

		now := nowFunc()
		posted, err = s.ledger.Record(ctx, repos, domain.OpenTransactionParams{
			Type:            domain.TxnInvoiceCancellation,
			Reference:       invoice.ReferenceNumber,
			Date:            now,
			Amount:          invoice.Amount,
			Currency:        s.currency,
			Description:     "Cancellation of invoice " + invoice.ReferenceNumber + ": " + req.Reason,
			BoardingHouseID: invoice.BoardingHouseID,
		}, []domain.EntryPair{{
			DebitAccountID:  revenue.AccountID,
			CreditAccountID: receivable.AccountID,
			Amount:          invoice.Amount,
		}}, actor)
		if err != nil {
			return err
		}

		invoice.Status = domain.InvoiceCancelled
		if invoice.Notes != "" {
			invoice.Notes += "\n"
		}
		invoice.Notes += "Cancelled: " + req.Reason
		invoice.Touch(actor, now)
		if err := repos.InvoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
			return err
		}
		if _, err := repos.StudentRepo.AdjustStudentBalance(ctx, invoice.StudentID, invoice.EnrollmentID, invoice.Amount, s.currency, now); err != nil {
			return err
		}
		cancelled = invoice
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to cancel invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Invoice cancelled", slog.String("invoice_id", invoiceID))
	return cancelled, nil
}

func (s *invoiceService) MarkOverdueInvoices(ctx context.Context, asOf time.Time, graceDays int, actor domain.Actor) (int, error) {
	if err := actor.Validate(); err != nil {
		return 0, err
	}
	if graceDays < 0 {
		return 0, fmt.Errorf("%w: grace days cannot be negative", apperrors.ErrValidation)
	}
	cutoff := asOf.AddDate(0, 0, -graceDays)

	var updated int
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		updated = 0
		invoices, err := repos.InvoiceRepo.ListPendingInvoicesBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		now := nowFunc()
		for _, inv := range invoices {
			inv.Status = domain.InvoiceOverdue
			inv.Touch(actor, now)
			if err := repos.InvoiceRepo.UpdateInvoice(ctx, inv); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to mark overdue invoices")
		return 0, err
	}

	s.LogInfo(ctx, "Overdue invoices marked", slog.Int("updated", updated), slog.Time("cutoff", cutoff))
	return updated, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.store.Repositories().InvoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// GetStudentBalance returns a zero balance for an enrollment that has never been billed.
func (s *invoiceService) GetStudentBalance(ctx context.Context, enrollmentID string) (*domain.StudentAccountBalance, error) {
	repos := s.store.Repositories()
	bal, err := repos.StudentRepo.FindStudentBalance(ctx, enrollmentID)
	if err == nil {
		return bal, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	enrollment, err := repos.StudentRepo.FindEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	return &domain.StudentAccountBalance{
		StudentID:      enrollment.StudentID,
		EnrollmentID:   enrollment.EnrollmentID,
		CurrentBalance: decimal.Zero,
		Currency:       s.currency,
	}, nil
}

// isClientError reports errors caused by the request rather than by the system.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrInvariantViolation)
}
