package services_test

import (
	"errors"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

func (s *LedgerServiceTestSuite) TestCreditExpense_SettledInInstallments() {
	resp := s.recordExpense("300", "credit", "2026-03-01")

	expense, payments, err := s.svc.Expense.GetExpense(s.ctx, resp.ExpenseID)
	s.Require().NoError(err)
	s.Empty(payments)
	s.Equal(domain.PaymentDebt, expense.PaymentStatus)
	s.Equal("300.00", expense.RemainingBalance.StringFixed(2))
	s.assertBalance(domain.CodeAccountsPayable, "300")

	first, err := s.svc.Expense.PayAccountsPayable(s.ctx, resp.ExpenseID, dto.AccountsPayablePaymentRequest{
		Amount: dec("100"),
		Method: "cash",
		Date:   "2026-03-05",
	}, s.actor)
	s.Require().NoError(err)
	s.Equal("200.00", first.RemainingBalance.StringFixed(2))

	expense, _, err = s.svc.Expense.GetExpense(s.ctx, resp.ExpenseID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentPartial, expense.PaymentStatus)

	second, err := s.svc.Expense.RecordSupplierPayment(s.ctx, dto.RecordSupplierPaymentRequest{
		ExpenseID: resp.ExpenseID,
		Amount:    dec("200"),
		Method:    "bank_transfer",
		Date:      "2026-03-10",
	}, s.actor)
	s.Require().NoError(err)
	s.True(second.RemainingBalance.IsZero())
	s.Equal(string(domain.PaymentFull), second.PaymentStatus)

	_, err = s.svc.Expense.RecordSupplierPayment(s.ctx, dto.RecordSupplierPaymentRequest{
		ExpenseID: resp.ExpenseID,
		Amount:    dec("1"),
		Method:    "cash",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrOverpayment)
	var overpayment *apperrors.OverpaymentError
	s.Require().True(errors.As(err, &overpayment))
	s.Equal("0.00", overpayment.Remaining)

	_, payments, err = s.svc.Expense.GetExpense(s.ctx, resp.ExpenseID)
	s.Require().NoError(err)
	s.Len(payments, 2)

	s.assertBalance(domain.CodeAccountsPayable, "0")
	s.assertBalance(domain.CodeCash, "-100")
	s.assertBalance(domain.CodeBank, "-200")
	s.assertBalance(domain.CodeGeneralExpense, "300")
	s.assertTrialBalanced()
}

func (s *LedgerServiceTestSuite) TestSettlement_Rejections() {
	cashExpense := s.recordExpense("80", "cash", "")
	_, err := s.svc.Expense.PayAccountsPayable(s.ctx, cashExpense.ExpenseID, dto.AccountsPayablePaymentRequest{
		Amount: dec("10"),
		Method: "cash",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	creditExpense := s.recordExpense("80", "credit", "")
	_, err = s.svc.Expense.PayAccountsPayable(s.ctx, creditExpense.ExpenseID, dto.AccountsPayablePaymentRequest{
		Amount: dec("10"),
		Method: "credit",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Expense.PayAccountsPayable(s.ctx, "missing", dto.AccountsPayablePaymentRequest{
		Amount: dec("10"),
		Method: "cash",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestRecordExpense_RequiresExpenseAccount() {
	_, err := s.svc.Expense.RecordExpense(s.ctx, dto.RecordExpenseRequest{
		BoardingHouseID: testBoardingHouse,
		Amount:          dec("10"),
		AccountID:       domain.CodeBank,
		PaymentMethod:   "cash",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Expense.RecordExpense(s.ctx, dto.RecordExpenseRequest{
		BoardingHouseID: testBoardingHouse,
		Amount:          dec("0"),
		AccountID:       domain.CodeGeneralExpense,
		PaymentMethod:   "cash",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestUpdateExpense_ReplacesEntries() {
	resp := s.recordExpense("150", "cash", "2026-03-10")

	amount := dec("200")
	description := "Plumbing repair"
	updated, err := s.svc.Expense.UpdateExpense(s.ctx, resp.ExpenseID, dto.UpdateExpenseRequest{
		Amount:      &amount,
		Description: &description,
	}, s.actor)
	s.Require().NoError(err)
	s.Equal("200.00", updated.TotalAmount.StringFixed(2))
	s.Equal(description, updated.Description)

	txn, err := s.svc.Ledger.GetTransaction(s.ctx, resp.TransactionID)
	s.Require().NoError(err)
	s.Equal("200.00", txn.Amount.StringFixed(2))
	s.Require().Len(txn.Entries, 2)
	for _, e := range txn.Entries {
		s.Equal("200.00", e.Amount.StringFixed(2))
	}

	s.assertBalance(domain.CodeGeneralExpense, "200")
	s.assertBalance(domain.CodeCash, "-200")
	bal, err := s.svc.Balance.GetBalance(s.ctx, domain.CodeCash)
	s.Require().NoError(err)
	s.EqualValues(1, bal.TransactionCount)

	drifts, err := s.svc.Balance.VerifyBalances(s.ctx)
	s.Require().NoError(err)
	s.Empty(drifts)
}

func (s *LedgerServiceTestSuite) TestUpdateExpense_AfterSettlementConflicts() {
	resp := s.recordExpense("300", "credit", "")
	_, err := s.svc.Expense.PayAccountsPayable(s.ctx, resp.ExpenseID, dto.AccountsPayablePaymentRequest{
		Amount: dec("100"),
		Method: "cash",
	}, s.actor)
	s.Require().NoError(err)

	amount := dec("350")
	_, err = s.svc.Expense.UpdateExpense(s.ctx, resp.ExpenseID, dto.UpdateExpenseRequest{Amount: &amount}, s.actor)
	s.ErrorIs(err, apperrors.ErrConflict)
}
