package services_test

import (
	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

const pettyUser = "user-clerk"

func (s *LedgerServiceTestSuite) fundPettyCash(amount string) {
	_, err := s.svc.PettyCash.FundPettyCash(s.ctx, pettyUser, dto.FundPettyCashRequest{
		BoardingHouseID: testBoardingHouse,
		Amount:          dec(amount),
	}, s.actor)
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestPettyCash_SubmitApproveRoundTrip() {
	s.fundPettyCash("1000")

	submitted, err := s.svc.PettyCash.SubmitExpense(s.ctx, pettyUser, dto.SubmitPettyCashExpenseRequest{
		Amount:      dec("200"),
		Description: "Cleaning supplies",
	}, s.actor)
	s.Require().NoError(err)
	s.Equal(string(domain.PendingStatusPending), submitted.Status)
	s.Equal("800.00", submitted.Available.StringFixed(2))

	// Nothing is posted until approval.
	s.assertBalance(domain.CodeGeneralExpense, "0")

	_, err = s.svc.PettyCash.SubmitExpense(s.ctx, pettyUser, dto.SubmitPettyCashExpenseRequest{
		Amount:      dec("900"),
		Description: "Too much",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)

	pending, err := s.svc.PettyCash.ListPending(s.ctx, pettyUser)
	s.Require().NoError(err)
	s.Len(pending, 1)

	approved, err := s.svc.PettyCash.Approve(s.ctx, submitted.PendingExpenseID, s.actor)
	s.Require().NoError(err)
	s.Equal(string(domain.PendingStatusApproved), approved.Status)
	s.NotEmpty(approved.TransactionID)
	s.Equal("800.00", approved.Balance.StringFixed(2))
	s.True(approved.Reserved.IsZero())
	s.Equal("800.00", approved.Available.StringFixed(2))

	_, err = s.svc.PettyCash.Approve(s.ctx, submitted.PendingExpenseID, s.actor)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	_, err = s.svc.PettyCash.Reject(s.ctx, submitted.PendingExpenseID, dto.RejectPettyCashRequest{Reason: "late"}, s.actor)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	s.assertBalance(domain.CodePettyCash, "800")
	s.assertBalance(domain.CodeBank, "-1000")
	s.assertBalance(domain.CodeGeneralExpense, "200")
	s.assertTrialBalanced()

	pending, err = s.svc.PettyCash.ListPending(s.ctx, pettyUser)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *LedgerServiceTestSuite) TestPettyCash_RejectReleasesReservation() {
	s.fundPettyCash("500")

	submitted, err := s.svc.PettyCash.SubmitExpense(s.ctx, pettyUser, dto.SubmitPettyCashExpenseRequest{
		Amount:      dec("100"),
		Description: "Snacks",
	}, s.actor)
	s.Require().NoError(err)

	float, err := s.svc.PettyCash.GetPettyCashAccount(s.ctx, pettyUser)
	s.Require().NoError(err)
	s.Equal("100.00", float.Reserved.StringFixed(2))

	_, err = s.svc.PettyCash.Reject(s.ctx, submitted.PendingExpenseID, dto.RejectPettyCashRequest{Reason: " "}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	rejected, err := s.svc.PettyCash.Reject(s.ctx, submitted.PendingExpenseID, dto.RejectPettyCashRequest{Reason: "not a business expense"}, s.actor)
	s.Require().NoError(err)
	s.Equal(string(domain.PendingStatusRejected), rejected.Status)
	s.Empty(rejected.TransactionID)
	s.Equal("500.00", rejected.Balance.StringFixed(2))
	s.True(rejected.Reserved.IsZero())

	s.assertBalance(domain.CodePettyCash, "500")
	s.assertBalance(domain.CodeGeneralExpense, "0")
}

func (s *LedgerServiceTestSuite) TestPettyCash_Replenishment() {
	s.fundPettyCash("100")

	submitted, err := s.svc.PettyCash.SubmitReplenishment(s.ctx, pettyUser, dto.SubmitReplenishmentRequest{
		Amount:      dec("300"),
		Description: "Weekly top-up",
	}, s.actor)
	s.Require().NoError(err)
	s.Equal(string(domain.PettyCashReplenishment), submitted.Kind)
	s.Equal("100.00", submitted.Available.StringFixed(2))

	approved, err := s.svc.PettyCash.Approve(s.ctx, submitted.PendingExpenseID, s.actor)
	s.Require().NoError(err)
	s.Equal("400.00", approved.Balance.StringFixed(2))

	s.assertBalance(domain.CodePettyCash, "400")
	s.assertBalance(domain.CodeBank, "-400")
	s.assertTrialBalanced()
}

func (s *LedgerServiceTestSuite) TestPettyCash_DirectMethodLeavesFloatsAlone() {
	s.fundPettyCash("500")

	s.recordExpense("120", "petty_cash", "2026-02-10")

	s.assertBalance(domain.CodePettyCash, "380")
	s.assertBalance(domain.CodeGeneralExpense, "120")
	s.assertTrialBalanced()

	float, err := s.svc.PettyCash.GetPettyCashAccount(s.ctx, pettyUser)
	s.Require().NoError(err)
	s.Equal("500.00", float.Balance.StringFixed(2))
	s.True(float.Reserved.IsZero())
}

func (s *LedgerServiceTestSuite) TestPettyCash_UnknownFloat() {
	_, err := s.svc.PettyCash.SubmitExpense(s.ctx, "nobody", dto.SubmitPettyCashExpenseRequest{
		Amount:      dec("10"),
		Description: "Stamps",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.PettyCash.Approve(s.ctx, "missing", s.actor)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
