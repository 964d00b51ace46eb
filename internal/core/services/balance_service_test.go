package services_test

import (
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

func mustDate(v string) time.Time {
	t, err := dto.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return t
}

func (s *LedgerServiceTestSuite) TestVerifyAndRebuild_RepairDrift() {
	s.recordExpense("150", "cash", "2026-03-10")
	s.recordExpense("40", "bank_transfer", "2026-03-11")

	drifts, err := s.svc.Balance.VerifyBalances(s.ctx)
	s.Require().NoError(err)
	s.Empty(drifts)

	cash, err := s.svc.Account.GetAccountByCode(s.ctx, domain.CodeCash)
	s.Require().NoError(err)
	s.store.CorruptBalance(cash.AccountID, dec("999"))

	drifts, err = s.svc.Balance.VerifyBalances(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(drifts, 1)
	s.Equal(domain.CodeCash, drifts[0].AccountCode)
	s.Equal("999.00", drifts[0].StoredBalance.StringFixed(2))
	s.Equal("-150.00", drifts[0].ReplayedBalance.StringFixed(2))

	rebuilt, err := s.svc.Balance.RebuildBalances(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(domain.DefaultChart()), rebuilt)

	drifts, err = s.svc.Balance.VerifyBalances(s.ctx)
	s.Require().NoError(err)
	s.Empty(drifts)
	s.assertBalance(domain.CodeCash, "-150")
	s.assertBalance(domain.CodeBank, "-40")
	s.assertBalance(domain.CodeGeneralExpense, "190")
}

func (s *LedgerServiceTestSuite) TestRebuild_AfterVoidKeepsBothTransactions() {
	posted := s.postAdjustment("2026-03-10", adj(domain.CodeGeneralExpense, domain.CodeCash, "75"))
	_, err := s.svc.Ledger.VoidTransaction(s.ctx, posted.TransactionID, "wrong amount", s.actor)
	s.Require().NoError(err)

	_, err = s.svc.Balance.RebuildBalances(s.ctx)
	s.Require().NoError(err)

	s.assertBalance(domain.CodeCash, "0")
	bal, err := s.svc.Balance.GetBalance(s.ctx, domain.CodeCash)
	s.Require().NoError(err)
	s.EqualValues(2, bal.TransactionCount)
}

func (s *LedgerServiceTestSuite) TestTrialBalance_TotalsByNormalSide() {
	studentID, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")
	_, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    studentID,
		EnrollmentID: enrollmentID,
		Amount:       dec("500"),
	}, s.actor)
	s.Require().NoError(err)
	s.recordExpense("150", "cash", "")

	tb, err := s.svc.Balance.TrialBalance(s.ctx)
	s.Require().NoError(err)
	s.True(tb.Balanced)
	// AR 500 and expense 150 on the debit side, revenue 500 and the cash overdraft 150 on the credit side.
	s.Equal("650.00", tb.TotalDebits.StringFixed(2))
	s.Equal("650.00", tb.TotalCredits.StringFixed(2))
}

func (s *LedgerServiceTestSuite) TestTrialBalance_ContraBalancesChangeColumn() {
	// revenue refunded beyond what was billed and equity drawn below zero
	s.postAdjustment("2026-03-01",
		adj(domain.CodeRentalsIncome, domain.CodeCash, "80"),
		adj(domain.CodeOwnersEquity, domain.CodeBank, "20"),
	)

	tb, err := s.svc.Balance.TrialBalance(s.ctx)
	s.Require().NoError(err)
	s.True(tb.Balanced)
	s.Equal("100.00", tb.TotalDebits.StringFixed(2))
	s.Equal("100.00", tb.TotalCredits.StringFixed(2))
	s.assertBalance(domain.CodeRentalsIncome, "-80")
	s.assertBalance(domain.CodeCash, "-80")
}

func (s *LedgerServiceTestSuite) TestGetBalance_UnknownAccount() {
	_, err := s.svc.Balance.GetBalance(s.ctx, "99999")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
