package services_test

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

func (s *LedgerServiceTestSuite) TestCashExpense_PostsBalancedPair() {
	resp := s.recordExpense("150", "cash", "2026-03-10")

	txn, err := s.svc.Ledger.GetTransaction(s.ctx, resp.TransactionID)
	s.Require().NoError(err)
	s.Equal(domain.TxnExpense, txn.TransactionType)
	s.Equal(domain.TransactionPosted, txn.Status)
	s.Equal("USD", txn.Currency)
	s.Require().Len(txn.Entries, 2)

	var debits, credits int
	for _, e := range txn.Entries {
		s.Equal("150.00", e.Amount.StringFixed(2))
		if e.EntryType == domain.Debit {
			debits++
		} else {
			credits++
		}
	}
	s.Equal(1, debits)
	s.Equal(1, credits)

	s.assertBalance(domain.CodeGeneralExpense, "150")
	s.assertBalance(domain.CodeCash, "-150")
	s.assertTrialBalanced()

	posted := s.publisher.ofType(domain.EventTransactionPosted)
	s.Require().Len(posted, 1)
	s.Equal(resp.TransactionID, posted[0].TransactionID)
	s.Equal("user-admin", posted[0].ActorID)
}

func (s *LedgerServiceTestSuite) TestRecord_RejectsZeroActor() {
	_, err := s.svc.Expense.RecordExpense(s.ctx, dto.RecordExpenseRequest{
		BoardingHouseID: testBoardingHouse,
		Amount:          dec("10"),
		AccountID:       domain.CodeGeneralExpense,
		PaymentMethod:   "cash",
	}, domain.Actor{})
	s.ErrorIs(err, apperrors.ErrValidation)

	balances, err := s.svc.Balance.ListBalances(s.ctx)
	s.Require().NoError(err)
	s.Empty(balances)
}

func (s *LedgerServiceTestSuite) TestRecord_RejectsCategoryAccount() {
	_, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "5100",
		Name:        "Utilities",
		AccountType: domain.ExpenseAccount,
		IsCategory:  true,
	}, s.actor)
	s.Require().NoError(err)

	_, err = s.svc.Expense.RecordExpense(s.ctx, dto.RecordExpenseRequest{
		BoardingHouseID: testBoardingHouse,
		Amount:          dec("10"),
		AccountID:       "5100",
		PaymentMethod:   "cash",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.assertBalance(domain.CodeCash, "0")
}

func (s *LedgerServiceTestSuite) TestPostEntryPairs_RollsBackOnFailure() {
	cash, err := s.svc.Account.GetAccountByCode(s.ctx, domain.CodeCash)
	s.Require().NoError(err)

	err = s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		txn, err := s.svc.Ledger.OpenTransaction(ctx, repos, domain.OpenTransactionParams{
			Type:            domain.TxnExpense,
			Date:            mustDate("2026-03-01"),
			Amount:          dec("25"),
			Description:     "Broken posting",
			BoardingHouseID: testBoardingHouse,
		}, s.actor)
		if err != nil {
			return err
		}
		_, err = s.svc.Ledger.PostEntryPairs(ctx, repos, txn, []domain.EntryPair{{
			DebitAccountID:  "missing-account",
			CreditAccountID: cash.AccountID,
			Amount:          dec("25"),
		}}, s.actor)
		return err
	})
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.assertBalance(domain.CodeCash, "0")
	entries, err := s.store.Repositories().EntryRepo.ListAllEntries(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *LedgerServiceTestSuite) TestPostEntryPairs_RejectsSameAccountAndNonPositive() {
	cash, err := s.svc.Account.GetAccountByCode(s.ctx, domain.CodeCash)
	s.Require().NoError(err)
	bank, err := s.svc.Account.GetAccountByCode(s.ctx, domain.CodeBank)
	s.Require().NoError(err)

	cases := []struct {
		name string
		pair domain.EntryPair
	}{
		{"same account", domain.EntryPair{DebitAccountID: cash.AccountID, CreditAccountID: cash.AccountID, Amount: dec("5")}},
		{"zero amount", domain.EntryPair{DebitAccountID: cash.AccountID, CreditAccountID: bank.AccountID, Amount: dec("0")}},
		{"negative amount", domain.EntryPair{DebitAccountID: cash.AccountID, CreditAccountID: bank.AccountID, Amount: dec("-5")}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := s.store.WithinTx(s.ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
				_, err := s.svc.Ledger.Record(ctx, repos, domain.OpenTransactionParams{
					Type:            domain.TxnExpense,
					Date:            mustDate("2026-03-01"),
					Amount:          dec("5"),
					Description:     tc.name,
					BoardingHouseID: testBoardingHouse,
				}, []domain.EntryPair{tc.pair}, s.actor)
				return err
			})
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *LedgerServiceTestSuite) TestPostAdjustment_MultiplePairs() {
	posted := s.postAdjustment("2026-01-01",
		adj(domain.CodeCash, domain.CodeOwnersEquity, "1000"),
		adj(domain.CodeBank, domain.CodeOwnersEquity, "2500.50"),
	)
	s.Equal(domain.TxnAdjustment, posted.TransactionType)
	s.Equal("3500.50", posted.Amount.StringFixed(2))
	s.Len(posted.Entries, 4)
	s.Contains(posted.Reference, "ADJ-20260101-")

	s.assertBalance(domain.CodeCash, "1000")
	s.assertBalance(domain.CodeBank, "2500.50")
	s.assertBalance(domain.CodeOwnersEquity, "3500.50")
	s.assertTrialBalanced()

	_, err := s.svc.Ledger.PostAdjustment(s.ctx, dto.PostAdjustmentRequest{
		BoardingHouseID: testBoardingHouse,
		Description:     "Unknown account",
		Pairs:           []dto.AdjustmentPairRequest{adj("99999", domain.CodeOwnersEquity, "5")},
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.assertBalance(domain.CodeOwnersEquity, "3500.50")
}

func (s *LedgerServiceTestSuite) TestVoidTransaction_PostsReversal() {
	posted := s.postAdjustment("2026-03-10", adj(domain.CodeGeneralExpense, domain.CodeCash, "150"))

	voided, err := s.svc.Ledger.VoidTransaction(s.ctx, posted.TransactionID, "entered twice", s.actor)
	s.Require().NoError(err)
	s.Equal(domain.TransactionVoided, voided.Status)
	s.Equal("entered twice", voided.VoidReason)

	s.assertBalance(domain.CodeGeneralExpense, "0")
	s.assertBalance(domain.CodeCash, "0")
	s.assertTrialBalanced()

	bal, err := s.svc.Balance.GetBalance(s.ctx, domain.CodeCash)
	s.Require().NoError(err)
	s.EqualValues(2, bal.TransactionCount)
	s.Equal("150.00", bal.TotalDebits.StringFixed(2))
	s.Equal("150.00", bal.TotalCredits.StringFixed(2))

	voidEvents := s.publisher.ofType(domain.EventTransactionVoided)
	s.Require().Len(voidEvents, 1)

	_, err = s.svc.Ledger.VoidTransaction(s.ctx, posted.TransactionID, "again", s.actor)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	_, err = s.svc.Ledger.VoidTransaction(s.ctx, posted.TransactionID, "  ", s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Ledger.VoidTransaction(s.ctx, "unknown", "reason", s.actor)
	s.ErrorIs(err, apperrors.ErrNotFound)

	// the reversal itself is not voidable
	posted2 := s.publisher.ofType(domain.EventTransactionPosted)
	reversalID := posted2[len(posted2)-1].TransactionID
	s.NotEqual(posted.TransactionID, reversalID)
	_, err = s.svc.Ledger.VoidTransaction(s.ctx, reversalID, "undo the undo", s.actor)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LedgerServiceTestSuite) TestVoidTransaction_RefusesOwnedTransactions() {
	studentID, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")
	invoice, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    studentID,
		EnrollmentID: enrollmentID,
		Amount:       dec("500"),
	}, s.actor)
	s.Require().NoError(err)
	expense := s.recordExpense("300", "credit", "2026-03-01")
	s.fundPettyCash("200")
	funding := s.publisher.ofType(domain.EventTransactionPosted)
	fundingID := funding[len(funding)-1].TransactionID

	for name, id := range map[string]string{
		"invoice":          invoice.TransactionID,
		"credit expense":   expense.TransactionID,
		"petty cash float": fundingID,
	} {
		_, err := s.svc.Ledger.VoidTransaction(s.ctx, id, "undo", s.actor)
		s.ErrorIs(err, apperrors.ErrConflict, name)

		txn, err := s.svc.Ledger.GetTransaction(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(domain.TransactionPosted, txn.Status, name)
	}

	s.Empty(s.publisher.ofType(domain.EventTransactionVoided))
	s.assertBalance(domain.CodeAccountsReceivable, "500")
	s.assertBalance(domain.CodeAccountsPayable, "300")
	s.assertBalance(domain.CodePettyCash, "200")

	bal, err := s.svc.Invoice.GetStudentBalance(s.ctx, enrollmentID)
	s.Require().NoError(err)
	s.Equal("-500.00", bal.CurrentBalance.StringFixed(2))

	// the owning operation still settles the debt
	paid, err := s.svc.Expense.PayAccountsPayable(s.ctx, expense.ExpenseID, dto.AccountsPayablePaymentRequest{
		Amount: dec("300"),
		Method: "cash",
	}, s.actor)
	s.Require().NoError(err)
	s.True(paid.RemainingBalance.IsZero())
	s.assertBalance(domain.CodeAccountsPayable, "0")
	s.assertTrialBalanced()
}

func (s *LedgerServiceTestSuite) TestListEntriesByAccount_PagesNewestFirst() {
	s.recordExpense("10", "cash", "2026-01-01")
	s.recordExpense("20", "cash", "2026-01-02")
	s.recordExpense("30", "cash", "2026-01-03")

	page, err := s.svc.Ledger.ListEntriesByAccount(s.ctx, domain.CodeGeneralExpense, dto.ListEntriesParams{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page.Entries, 2)
	s.Equal("30.00", page.Entries[0].Amount.StringFixed(2))
	s.Equal("20.00", page.Entries[1].Amount.StringFixed(2))
	s.Require().NotNil(page.NextToken)

	next, err := s.svc.Ledger.ListEntriesByAccount(s.ctx, domain.CodeGeneralExpense, dto.ListEntriesParams{Limit: 2, NextToken: *page.NextToken})
	s.Require().NoError(err)
	s.Require().Len(next.Entries, 1)
	s.Equal("10.00", next.Entries[0].Amount.StringFixed(2))
	s.Nil(next.NextToken)

	_, err = s.svc.Ledger.ListEntriesByAccount(s.ctx, domain.CodeGeneralExpense, dto.ListEntriesParams{NextToken: "%%%"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestListEntriesByAccount_PagesEntriesOfOnePosting() {
	// every entry of one posting shares its entry date and creation time
	posted := s.postAdjustment("2026-02-01",
		adj(domain.CodeCash, domain.CodeOwnersEquity, "10"),
		adj(domain.CodeCash, domain.CodeOwnersEquity, "20"),
		adj(domain.CodeCash, domain.CodeOwnersEquity, "30"),
		adj(domain.CodeCash, domain.CodeOwnersEquity, "40"),
	)
	want := map[string]bool{}
	for _, e := range posted.Entries {
		if e.EntryType == domain.Debit {
			want[e.EntryID] = true
		}
	}
	s.Require().Len(want, 4)

	seen := map[string]int{}
	params := dto.ListEntriesParams{Limit: 1}
	for pages := 0; pages < 10; pages++ {
		page, err := s.svc.Ledger.ListEntriesByAccount(s.ctx, domain.CodeCash, params)
		s.Require().NoError(err)
		for _, e := range page.Entries {
			seen[e.EntryID]++
		}
		if page.NextToken == nil {
			break
		}
		params.NextToken = *page.NextToken
	}

	s.Len(seen, len(want))
	for id := range want {
		s.Equal(1, seen[id], "entry %s", id)
	}
}
