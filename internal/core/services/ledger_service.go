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
	"github.com/SscSPs/boarding_house_ledger/internal/utils/accounting"
	"github.com/SscSPs/boarding_house_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultEntryPageSize = 50

// ledgerService owns transaction headers and journal entries.
type ledgerService struct {
	BaseService
	store     portsrepo.Store
	projector portssvc.BalanceProjector
	accounts  portssvc.AccountReaderSvc
	currency  string
}

// NewLedgerService creates the transaction ledger and journal entry poster.
func NewLedgerService(store portsrepo.Store, projector portssvc.BalanceProjector, accounts portssvc.AccountReaderSvc, publisher events.Publisher, currency string) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: BaseService{Publisher: publisher},
		store:       store,
		projector:   projector,
		accounts:    accounts,
		currency:    currency,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) OpenTransaction(ctx context.Context, repos portsrepo.RepositoryProvider, params domain.OpenTransactionParams, actor domain.Actor) (*domain.Transaction, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := validateOpenParams(params); err != nil {
		return nil, err
	}

	currency := params.Currency
	if currency == "" {
		currency = s.currency
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionType: params.Type,
		Reference:       params.Reference,
		Amount:          params.Amount,
		Currency:        currency,
		Description:     strings.TrimSpace(params.Description),
		TransactionDate: params.Date,
		BoardingHouseID: params.BoardingHouseID,
		Status:          domain.TransactionPosted,
		AuditFields:     domain.NewAuditFields(actor, nowFunc()),
	}

	if err := repos.TransactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Transaction opened",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func validateOpenParams(p domain.OpenTransactionParams) error {
	var missing []string
	if p.Type == "" {
		missing = append(missing, "type")
	}
	if p.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(p.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(p.BoardingHouseID) == "" {
		missing = append(missing, "boardingHouseId")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: transaction requires %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (s *ledgerService) PostEntryPairs(ctx context.Context, repos portsrepo.RepositoryProvider, txn *domain.Transaction, pairs []domain.EntryPair, actor domain.Actor) ([]domain.JournalEntry, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, fmt.Errorf("%w: transaction is required", apperrors.ErrValidation)
	}
	if txn.Status != domain.TransactionPosted {
		return nil, fmt.Errorf("%w: cannot post entries to a %s transaction", apperrors.ErrInvalidState, txn.Status)
	}
	if err := accounting.ValidatePairs(pairs); err != nil {
		return nil, err
	}

	accounts, err := s.postableAccounts(ctx, repos, pairs)
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	entries := make([]domain.JournalEntry, 0, len(pairs)*2)
	for _, p := range pairs {
		description := p.Description
		if description == "" {
			description = txn.Description
		}
		for _, side := range []struct {
			accountID string
			entryType domain.EntryType
		}{{p.DebitAccountID, domain.Debit}, {p.CreditAccountID, domain.Credit}} {
			entries = append(entries, domain.JournalEntry{
				EntryID:         uuid.NewString(),
				TransactionID:   txn.TransactionID,
				AccountID:       side.accountID,
				EntryType:       side.entryType,
				Amount:          p.Amount,
				Description:     description,
				BoardingHouseID: txn.BoardingHouseID,
				EntryDate:       txn.TransactionDate,
				AuditFields:     domain.NewAuditFields(actor, now),
			})
		}
	}

	if err := repos.EntryRepo.SaveEntries(ctx, entries); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := s.projector.ApplyEntry(ctx, repos, accounts[e.AccountID], e); err != nil {
			return nil, err
		}
	}

	// The stored entries, not the ones built above, must balance.
	live, err := repos.EntryRepo.FindEntriesByTransactionID(ctx, txn.TransactionID)
	if err != nil {
		return nil, err
	}
	if err := accounting.ValidateEntriesBalance(live); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Transaction does not balance after posting",
			slog.String("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
		return nil, err
	}

	return entries, nil
}

// postableAccounts loads every account referenced by pairs and rejects deleted or category accounts.
func (s *ledgerService) postableAccounts(ctx context.Context, repos portsrepo.RepositoryProvider, pairs []domain.EntryPair) (map[string]domain.Account, error) {
	seen := make(map[string]struct{}, len(pairs)*2)
	ids := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		for _, id := range []string{p.DebitAccountID, p.CreditAccountID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	accounts, err := repos.AccountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		a, ok := accounts[id]
		if !ok || a.IsDeleted() {
			return nil, apperrors.NewNotFoundError("account", id)
		}
		if a.IsCategory {
			return nil, fmt.Errorf("%w: account %s is a category and cannot be posted to", apperrors.ErrValidation, a.Code)
		}
	}
	return accounts, nil
}

func (s *ledgerService) Record(ctx context.Context, repos portsrepo.RepositoryProvider, params domain.OpenTransactionParams, pairs []domain.EntryPair, actor domain.Actor) (*domain.TransactionWithEntries, error) {
	txn, err := s.OpenTransaction(ctx, repos, params, actor)
	if err != nil {
		return nil, err
	}
	entries, err := s.PostEntryPairs(ctx, repos, txn, pairs, actor)
	if err != nil {
		return nil, err
	}
	return &domain.TransactionWithEntries{Transaction: *txn, Entries: entries}, nil
}

func (s *ledgerService) ReplaceEntries(ctx context.Context, repos portsrepo.RepositoryProvider, txn *domain.Transaction, pairs []domain.EntryPair, actor domain.Actor) ([]domain.JournalEntry, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if err := accounting.ValidatePairs(pairs); err != nil {
		return nil, err
	}

	removed, err := repos.EntryRepo.SoftDeleteEntriesByTransactionID(ctx, txn.TransactionID, nowFunc())
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		ids := make([]string, 0, len(removed))
		for _, e := range removed {
			ids = append(ids, e.AccountID)
		}
		accounts, err := repos.AccountRepo.FindAccountsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, e := range removed {
			if err := s.projector.RevertEntry(ctx, repos, accounts[e.AccountID], e); err != nil {
				return nil, err
			}
		}
	}

	return s.PostEntryPairs(ctx, repos, txn, pairs, actor)
}

func (s *ledgerService) PostAdjustment(ctx context.Context, req dto.PostAdjustmentRequest, actor domain.Actor) (*domain.TransactionWithEntries, error) {
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

	total := decimal.Zero
	for _, p := range req.Pairs {
		total = total.Add(p.Amount)
	}
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = fmt.Sprintf("ADJ-%s-%s", date.Format("20060102"), strings.ToUpper(shortID()))
	}

	var posted *domain.TransactionWithEntries
	err = s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		pairs := make([]domain.EntryPair, 0, len(req.Pairs))
		for _, p := range req.Pairs {
			debit, err := s.accounts.ResolveAccount(ctx, repos, p.DebitAccount)
			if err != nil {
				return err
			}
			credit, err := s.accounts.ResolveAccount(ctx, repos, p.CreditAccount)
			if err != nil {
				return err
			}
			pairs = append(pairs, domain.EntryPair{
				DebitAccountID:  debit.AccountID,
				CreditAccountID: credit.AccountID,
				Amount:          p.Amount,
				Description:     strings.TrimSpace(p.Description),
			})
		}

		posted, err = s.Record(ctx, repos, domain.OpenTransactionParams{
			Type:            domain.TxnAdjustment,
			Reference:       reference,
			Date:            date,
			Amount:          total,
			Currency:        s.currency,
			Description:     req.Description,
			BoardingHouseID: req.BoardingHouseID,
		}, pairs, actor)
		return err
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to post adjustment", slog.String("error", err.Error()))
		}
		return nil, err
	}

	s.publish(ctx, postedEvent(posted, actor))
	logger.Info("Adjustment posted",
		slog.String("transaction_id", posted.TransactionID),
		slog.Int("pairs", len(req.Pairs)),
		slog.String("amount", total.String()))
	return posted, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionWithEntries, error) {
	repos := s.store.Repositories()
	txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	entries, err := repos.EntryRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return &domain.TransactionWithEntries{Transaction: *txn, Entries: entries}, nil
}

func (s *ledgerService) ListEntriesByAccount(ctx context.Context, accountCode string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	repos := s.store.Repositories()
	account, err := repos.AccountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}

	var cursor *portsrepo.EntryCursor
	if params.NextToken != "" {
		entryDate, createdAt, entryID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &portsrepo.EntryCursor{EntryDate: entryDate, CreatedAt: createdAt, EntryID: entryID}
	}

	entries, err := repos.EntryRepo.ListEntriesByAccount(ctx, account.AccountID, limit+1, cursor)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListEntriesResponse{}
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		resp.NextToken = &token
	}
	resp.Entries = dto.ToJournalEntryResponses(entries)
	return resp, nil
}

func (s *ledgerService) VoidTransaction(ctx context.Context, transactionID string, reason string, actor domain.Actor) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: a reason is required to void a transaction", apperrors.ErrValidation)
	}

	var voided *domain.Transaction
	var reversal *domain.TransactionWithEntries
	var original []domain.JournalEntry
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		txn, err := repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if txn.Status == domain.TransactionVoided {
			return fmt.Errorf("%w: transaction %s is already voided", apperrors.ErrInvalidState, transactionID)
		}
		if !txn.TransactionType.Voidable() {
			return fmt.Errorf("%w: %s transaction %s cannot be voided, use %s instead",
				apperrors.ErrConflict, txn.TransactionType, transactionID, txn.TransactionType.OwningOperation())
		}

		original, err = repos.EntryRepo.FindEntriesByTransactionID(ctx, transactionID)
		if err != nil {
			return err
		}
		pairs, err := reversalPairs(original)
		if err != nil {
			return err
		}

		reversal, err = s.Record(ctx, repos, domain.OpenTransactionParams{
			Type:            domain.TxnReversal,
			Reference:       "VOID-" + txn.TransactionID,
			Date:            nowFunc(),
			Amount:          txn.Amount,
			Currency:        txn.Currency,
			Description:     "Void of " + txn.TransactionID + ": " + reason,
			BoardingHouseID: txn.BoardingHouseID,
		}, pairs, actor)
		if err != nil {
			return err
		}

		txn.Status = domain.TransactionVoided
		txn.VoidReason = reason
		txn.Touch(actor, nowFunc())
		if err := repos.TransactionRepo.UpdateTransaction(ctx, *txn); err != nil {
			return err
		}
		voided = txn
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			logger.Error("Failed to void transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.publish(ctx,
		newLedgerEvent(domain.EventTransactionVoided, *voided, original, actor),
		postedEvent(reversal, actor))
	logger.Info("Transaction voided", slog.String("transaction_id", transactionID), slog.String("reversal_id", reversal.TransactionID))
	return voided, nil
}

// reversalPairs builds pairs that undo entries: every original debit is credited back
// and every original credit is debited back, matched greedily by amount.
func reversalPairs(entries []domain.JournalEntry) ([]domain.EntryPair, error) {
	type side struct {
		accountID string
		amount    decimal.Decimal
	}
	var debits, credits []side
	for _, e := range entries {
		if e.EntryType == domain.Debit {
			debits = append(debits, side{e.AccountID, e.Amount})
		} else {
			credits = append(credits, side{e.AccountID, e.Amount})
		}
	}
	if err := accounting.ValidateEntriesBalance(entries); err != nil {
		return nil, err
	}

	var pairs []domain.EntryPair
	i, j := 0, 0
	for i < len(debits) && j < len(credits) {
		amount := decimal.Min(debits[i].amount, credits[j].amount)
		pairs = append(pairs, domain.EntryPair{
			DebitAccountID:  credits[j].accountID,
			CreditAccountID: debits[i].accountID,
			Amount:          amount,
			Description:     "Reversal",
		})
		debits[i].amount = debits[i].amount.Sub(amount)
		credits[j].amount = credits[j].amount.Sub(amount)
		if debits[i].amount.IsZero() {
			i++
		}
		if credits[j].amount.IsZero() {
			j++
		}
	}
	return pairs, nil
}
