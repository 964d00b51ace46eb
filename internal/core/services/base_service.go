package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/core/ports/events"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
	"github.com/google/uuid"
)

// nowFunc is the clock of the service layer.
var nowFunc = func() time.Time { return time.Now().UTC() }

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher events.Publisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// publish hands committed events to the publisher. The unit of work has already
// committed, so a delivery failure is logged and not returned.
func (s *BaseService) publish(ctx context.Context, evts ...domain.LedgerEvent) {
	if s.Publisher == nil || len(evts) == 0 {
		return
	}
	if err := s.Publisher.Publish(ctx, evts...); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger events", slog.Int("event_count", len(evts)))
	}
}

// newLedgerEvent builds the notification for a posted or voided transaction.
func newLedgerEvent(eventType domain.LedgerEventType, txn domain.Transaction, entries []domain.JournalEntry, actor domain.Actor) domain.LedgerEvent {
	evt := domain.LedgerEvent{
		EventID:         uuid.NewString(),
		Type:            eventType,
		TransactionID:   txn.TransactionID,
		TransactionType: txn.TransactionType,
		Reference:       txn.Reference,
		Amount:          txn.Amount,
		Currency:        txn.Currency,
		BoardingHouseID: txn.BoardingHouseID,
		ActorID:         actor.UserID(),
		OccurredAt:      nowFunc(),
		Entries:         make([]domain.EventEntry, 0, len(entries)),
	}
	for _, e := range entries {
		evt.Entries = append(evt.Entries, domain.EventEntry{AccountID: e.AccountID, EntryType: e.EntryType, Amount: e.Amount})
	}
	return evt
}

// postedEvent is the event of a freshly recorded transaction.
func postedEvent(posted *domain.TransactionWithEntries, actor domain.Actor) domain.LedgerEvent {
	return newLedgerEvent(domain.EventTransactionPosted, posted.Transaction, posted.Entries, actor)
}

// shortID returns the first block of a new uuid, used to make references readable.
func shortID() string {
	return uuid.NewString()[:8]
}
