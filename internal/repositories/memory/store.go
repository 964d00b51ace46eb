// Package memory is an in-process implementation of the ledger store.
// Units of work run serially against a copy of the state that replaces the
// committed state only when the unit of work succeeds.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store is a mutex-guarded ledger store.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

var _ portsrepo.Store = (*Store)(nil)

// access is how a repository reaches the state it is bound to.
type access interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

// committed runs every call against the committed state under the store lock.
type committed struct{ s *Store }

func (c committed) read(fn func(st *state) error) error {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	return fn(c.s.state)
}

func (c committed) write(fn func(st *state) error) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return fn(c.s.state)
}

// txAccess runs every call against the working copy of a unit of work.
// The store lock is already held by WithinTx.
type txAccess struct{ st *state }

func (t txAccess) read(fn func(st *state) error) error  { return fn(t.st) }
func (t txAccess) write(fn func(st *state) error) error { return fn(t.st) }

// WithinTx runs fn against a copy of the state and publishes the copy when fn succeeds.
// Units of work are serialized, which is what row locks give the SQL store.
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}

	working := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewStorageError("unit of work panicked", fmt.Errorf("%v", r))
		}
	}()

	if err := fn(ctx, providerFor(txAccess{st: working})); err != nil {
		return err
	}
	s.state = working
	return nil
}

// Repositories returns repositories bound to the committed state.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return providerFor(committed{s: s})
}

func providerFor(a access) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     &accountRepository{db: a},
		TransactionRepo: &transactionRepository{db: a},
		EntryRepo:       &entryRepository{db: a},
		BalanceRepo:     &balanceRepository{db: a},
		StudentRepo:     &studentRepository{db: a},
		InvoiceRepo:     &invoiceRepository{db: a},
		ExpenseRepo:     &expenseRepository{db: a},
		PettyCashRepo:   &pettyCashRepository{db: a},
	}
}

// SeedStudent stores a student. Student maintenance lives outside the ledger, so
// this is how tests and the memory driver get billable data.
func (s *Store) SeedStudent(st domain.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.students[st.StudentID] = st
}

// SeedBed stores a bed.
func (s *Store) SeedBed(b domain.Bed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.beds[b.BedID] = b
}

// SeedEnrollment stores an enrollment.
func (s *Store) SeedEnrollment(e domain.Enrollment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.enrollments[e.EnrollmentID] = e
}

// CorruptBalance overwrites a projection row without touching the entry log.
// It exists so drift detection can be exercised.
func (s *Store) CorruptBalance(accountID string, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.state.balances[accountID]
	row.AccountID = accountID
	row.CurrentBalance = balance
	s.state.balances[accountID] = row
}
