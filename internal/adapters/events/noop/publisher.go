package noop

import (
	"context"
	"log/slog"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/core/ports/events"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
)

// Publisher drops events after logging them at debug level.
// It is used when no brokers are configured.
type Publisher struct{}

var _ events.Publisher = Publisher{}

func (Publisher) Publish(ctx context.Context, evts ...domain.LedgerEvent) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, evt := range evts {
		logger.Debug("Ledger event",
			slog.String("type", string(evt.Type)),
			slog.String("transaction_id", evt.TransactionID),
			slog.String("reference", evt.Reference),
		)
	}
	return nil
}

func (Publisher) Close() error { return nil }
