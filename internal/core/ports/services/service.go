package services

// ServiceContainer holds instances of all the application services.
// It is the entry point used by handlers and CLI commands.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Ledger    LedgerSvcFacade
	Balance   BalanceSvcFacade
	Invoice   InvoiceSvcFacade
	Expense   ExpenseSvcFacade
	PettyCash PettyCashSvcFacade
}
