package events

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
)

// Publisher delivers committed ledger events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, events ...domain.LedgerEvent) error
	Close() error
}
