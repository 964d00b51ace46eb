package memory

import (
	"maps"
	"slices"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
)

type state struct {
	accounts         map[string]domain.Account
	transactions     map[string]domain.Transaction
	entries          []domain.JournalEntry
	balances         map[string]domain.AccountBalance
	students         map[string]domain.Student
	beds             map[string]domain.Bed
	enrollments      map[string]domain.Enrollment
	studentBalances  map[string]domain.StudentAccountBalance // keyed by enrollment id
	invoices         map[string]domain.Invoice
	expenses         map[string]domain.Expense
	supplierPayments []domain.SupplierPayment
	pettyAccounts    map[string]domain.PettyCashAccount // keyed by user id
	pending          map[string]domain.PendingPettyCashTransaction
	pettyTxns        []domain.PettyCashTransaction
}

func newState() *state {
	return &state{
		accounts:        map[string]domain.Account{},
		transactions:    map[string]domain.Transaction{},
		balances:        map[string]domain.AccountBalance{},
		students:        map[string]domain.Student{},
		beds:            map[string]domain.Bed{},
		enrollments:     map[string]domain.Enrollment{},
		studentBalances: map[string]domain.StudentAccountBalance{},
		invoices:        map[string]domain.Invoice{},
		expenses:        map[string]domain.Expense{},
		pettyAccounts:   map[string]domain.PettyCashAccount{},
		pending:         map[string]domain.PendingPettyCashTransaction{},
	}
}

// clone copies every table. Rows are values; pointer fields are never mutated in place.
func (s *state) clone() *state {
	return &state{
		accounts:         maps.Clone(s.accounts),
		transactions:     maps.Clone(s.transactions),
		entries:          slices.Clone(s.entries),
		balances:         maps.Clone(s.balances),
		students:         maps.Clone(s.students),
		beds:             maps.Clone(s.beds),
		enrollments:      maps.Clone(s.enrollments),
		studentBalances:  maps.Clone(s.studentBalances),
		invoices:         maps.Clone(s.invoices),
		expenses:         maps.Clone(s.expenses),
		supplierPayments: slices.Clone(s.supplierPayments),
		pettyAccounts:    maps.Clone(s.pettyAccounts),
		pending:          maps.Clone(s.pending),
		pettyTxns:        slices.Clone(s.pettyTxns),
	}
}
