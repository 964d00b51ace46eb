package pgsql

import (
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
)

func newRepositoryProvider(db querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(db),
		TransactionRepo: newPgxTransactionRepository(db),
		EntryRepo:       newPgxEntryRepository(db),
		BalanceRepo:     newPgxBalanceRepository(db),
		StudentRepo:     newPgxStudentRepository(db),
		InvoiceRepo:     newPgxInvoiceRepository(db),
		ExpenseRepo:     newPgxExpenseRepository(db),
		PettyCashRepo:   newPgxPettyCashRepository(db),
	}
}
