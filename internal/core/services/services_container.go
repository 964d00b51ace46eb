package services

import (
	"github.com/SscSPs/boarding_house_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store portsrepo.Store, publisher events.Publisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The projector and the chart come first since every manager posts through them
	container.Balance = NewBalanceService(store)
	container.Account = NewAccountService(store)
	container.Ledger = NewLedgerService(store, container.Balance, container.Account, publisher, cfg.DefaultCurrency)

	container.Invoice = NewInvoiceService(store, container.Ledger, publisher, cfg.DefaultCurrency)
	container.Expense = NewExpenseService(store, container.Ledger, container.Account, publisher, cfg.DefaultCurrency)
	container.PettyCash = NewPettyCashService(store, container.Ledger, container.Account, publisher, cfg.DefaultCurrency)

	return container
}
