package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Inside a unit of work every field is bound to the same store transaction.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	EntryRepo       JournalEntryRepositoryFacade
	BalanceRepo     BalanceRepositoryFacade
	StudentRepo     StudentRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	PettyCashRepo   PettyCashRepositoryFacade
}
