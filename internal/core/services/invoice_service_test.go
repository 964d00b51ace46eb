package services_test

import (
	"errors"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

func (s *LedgerServiceTestSuite) TestGenerateInvoice_ChargesStudent() {
	studentID, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")

	resp, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    studentID,
		EnrollmentID: enrollmentID,
		Amount:       dec("500"),
		Date:         "2026-03-01",
	}, s.actor)
	s.Require().NoError(err)

	invoice, err := s.svc.Invoice.GetInvoice(s.ctx, resp.InvoiceID)
	s.Require().NoError(err)
	s.Equal(domain.InvoicePending, invoice.Status)
	s.Equal(resp.TransactionID, invoice.TransactionID)
	s.Contains(invoice.ReferenceNumber, "INV-20260301-")

	bal, err := s.svc.Invoice.GetStudentBalance(s.ctx, enrollmentID)
	s.Require().NoError(err)
	s.Equal("-500.00", bal.CurrentBalance.StringFixed(2))

	s.assertBalance(domain.CodeAccountsReceivable, "500")
	s.assertBalance(domain.CodeRentalsIncome, "500")
	s.assertTrialBalanced()
}

func (s *LedgerServiceTestSuite) TestGenerateInvoice_RejectsForeignEnrollment() {
	_, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")
	otherStudent, _ := s.seedEnrollment("2", "Ben Cruz", "450")

	_, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    otherStudent,
		EnrollmentID: enrollmentID,
		Amount:       dec("500"),
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.assertBalance(domain.CodeAccountsReceivable, "0")

	_, err = s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    otherStudent,
		EnrollmentID: "enr-missing",
		Amount:       dec("500"),
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestRecordStudentPayment_PartialThenFull() {
	studentID, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")
	inv, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    studentID,
		EnrollmentID: enrollmentID,
		Amount:       dec("500"),
	}, s.actor)
	s.Require().NoError(err)

	first, err := s.svc.Invoice.RecordStudentPayment(s.ctx, inv.InvoiceID, dto.RecordStudentPaymentRequest{Amount: dec("200"), Method: "cash"}, s.actor)
	s.Require().NoError(err)
	s.Equal(string(domain.InvoicePending), first.Status)
	s.Equal("300.00", first.Outstanding.StringFixed(2))
	s.Equal("-300.00", first.StudentBalance.StringFixed(2))

	_, err = s.svc.Invoice.RecordStudentPayment(s.ctx, inv.InvoiceID, dto.RecordStudentPaymentRequest{Amount: dec("400"), Method: "cash"}, s.actor)
	s.ErrorIs(err, apperrors.ErrOverpayment)
	var overpayment *apperrors.OverpaymentError
	s.Require().True(errors.As(err, &overpayment))
	s.Equal("300.00", overpayment.Remaining)

	second, err := s.svc.Invoice.RecordStudentPayment(s.ctx, inv.InvoiceID, dto.RecordStudentPaymentRequest{Amount: dec("300"), Method: "bank_transfer"}, s.actor)
	s.Require().NoError(err)
	s.Equal(string(domain.InvoicePaid), second.Status)
	s.True(second.StudentBalance.IsZero())

	_, err = s.svc.Invoice.RecordStudentPayment(s.ctx, inv.InvoiceID, dto.RecordStudentPaymentRequest{Amount: dec("1"), Method: "cash"}, s.actor)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	s.assertBalance(domain.CodeAccountsReceivable, "0")
	s.assertBalance(domain.CodeCash, "200")
	s.assertBalance(domain.CodeBank, "300")
	s.assertBalance(domain.CodeRentalsIncome, "500")
	s.assertTrialBalanced()
}

func (s *LedgerServiceTestSuite) TestCancelInvoice() {
	studentID, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")
	inv, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    studentID,
		EnrollmentID: enrollmentID,
		Amount:       dec("500"),
		Notes:        "first month",
	}, s.actor)
	s.Require().NoError(err)

	cancelled, err := s.svc.Invoice.CancelInvoice(s.ctx, inv.InvoiceID, dto.CancelInvoiceRequest{Reason: "moved out"}, s.actor)
	s.Require().NoError(err)
	s.Equal(domain.InvoiceCancelled, cancelled.Status)
	s.Contains(cancelled.Notes, "Cancelled: moved out")

	bal, err := s.svc.Invoice.GetStudentBalance(s.ctx, enrollmentID)
	s.Require().NoError(err)
	s.True(bal.CurrentBalance.IsZero())
	s.assertBalance(domain.CodeAccountsReceivable, "0")
	s.assertBalance(domain.CodeRentalsIncome, "0")

	_, err = s.svc.Invoice.CancelInvoice(s.ctx, inv.InvoiceID, dto.CancelInvoiceRequest{Reason: "again"}, s.actor)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *LedgerServiceTestSuite) TestCancelInvoice_WithPaymentsConflicts() {
	studentID, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")
	inv, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID:    studentID,
		EnrollmentID: enrollmentID,
		Amount:       dec("500"),
	}, s.actor)
	s.Require().NoError(err)
	_, err = s.svc.Invoice.RecordStudentPayment(s.ctx, inv.InvoiceID, dto.RecordStudentPaymentRequest{Amount: dec("50"), Method: "cash"}, s.actor)
	s.Require().NoError(err)

	_, err = s.svc.Invoice.CancelInvoice(s.ctx, inv.InvoiceID, dto.CancelInvoiceRequest{Reason: "moved out"}, s.actor)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LedgerServiceTestSuite) TestGenerateMonthlyInvoices_IsIdempotentAndFiltersBeds() {
	s.seedEnrollment("1", "Ana Reyes", "500")
	_, second := s.seedEnrollment("2", "Ben Cruz", "450")

	// An inactive student and a student whose bed is not occupied are not billable.
	s.store.SeedStudent(domain.Student{StudentID: "stu-3", FullName: "Cora Lim", BoardingHouseID: testBoardingHouse, Status: domain.StudentInactive})
	bed3 := "bed-3"
	s.store.SeedBed(domain.Bed{BedID: bed3, BoardingHouseID: testBoardingHouse, Status: domain.BedOccupied})
	s.store.SeedEnrollment(domain.Enrollment{EnrollmentID: "enr-3", StudentID: "stu-3", BoardingHouseID: testBoardingHouse, BedID: &bed3, MonthlyRent: dec("400")})

	s.store.SeedStudent(domain.Student{StudentID: "stu-4", FullName: "Dan Uy", BoardingHouseID: testBoardingHouse, Status: domain.StudentActive})
	bed4 := "bed-4"
	s.store.SeedBed(domain.Bed{BedID: bed4, BoardingHouseID: testBoardingHouse, Status: domain.BedMaintenance})
	s.store.SeedEnrollment(domain.Enrollment{EnrollmentID: "enr-4", StudentID: "stu-4", BoardingHouseID: testBoardingHouse, BedID: &bed4, MonthlyRent: dec("400")})

	req := dto.GenerateMonthlyInvoicesRequest{
		BoardingHouseID: testBoardingHouse,
		Month:           "2026-03",
		Students:        []dto.StudentAmountOverride{{EnrollmentID: second, Amount: dec("300")}},
	}
	first, err := s.svc.Invoice.GenerateMonthlyInvoices(s.ctx, req, s.actor)
	s.Require().NoError(err)
	s.Equal(2, first.TotalInvoices)
	s.Equal("800.00", first.TotalAmount.StringFixed(2))
	s.Empty(first.Skipped)
	s.Empty(first.Errors)
	// Sorted by student name.
	s.Equal("Ana Reyes", first.Invoices[0].StudentName)
	s.Equal("enr-1", first.Invoices[0].EnrollmentID)
	s.Equal("INV-202603-enr-1", first.Invoices[0].ReferenceNumber)
	s.Equal("300.00", first.Invoices[1].Amount.StringFixed(2))

	again, err := s.svc.Invoice.GenerateMonthlyInvoices(s.ctx, req, s.actor)
	s.Require().NoError(err)
	s.Equal(0, again.TotalInvoices)
	s.Len(again.Skipped, 2)

	s.assertBalance(domain.CodeAccountsReceivable, "800")
	s.assertBalance(domain.CodeRentalsIncome, "800")
}

func (s *LedgerServiceTestSuite) TestGenerateMonthlyInvoices_ReportsUnbillableOverride() {
	s.seedEnrollment("1", "Ana Reyes", "500")

	resp, err := s.svc.Invoice.GenerateMonthlyInvoices(s.ctx, dto.GenerateMonthlyInvoicesRequest{
		BoardingHouseID: testBoardingHouse,
		Month:           "2026-04",
		Students:        []dto.StudentAmountOverride{{EnrollmentID: "enr-ghost", Amount: dec("100")}},
	}, s.actor)
	s.Require().NoError(err)
	s.Equal(1, resp.TotalInvoices)
	s.Require().Len(resp.Errors, 1)
	s.Equal("enr-ghost", resp.Errors[0].EnrollmentID)

	_, err = s.svc.Invoice.GenerateMonthlyInvoices(s.ctx, dto.GenerateMonthlyInvoicesRequest{
		BoardingHouseID: testBoardingHouse,
		Month:           "April",
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestMarkOverdueInvoices() {
	studentID, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")
	old, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID: studentID, EnrollmentID: enrollmentID, Amount: dec("500"), Date: "2026-01-01",
	}, s.actor)
	s.Require().NoError(err)
	recent, err := s.svc.Invoice.GenerateInvoice(s.ctx, dto.GenerateInvoiceRequest{
		StudentID: studentID, EnrollmentID: enrollmentID, Amount: dec("500"), Date: "2026-01-28",
	}, s.actor)
	s.Require().NoError(err)

	updated, err := s.svc.Invoice.MarkOverdueInvoices(s.ctx, mustDate("2026-02-01"), 5, s.actor)
	s.Require().NoError(err)
	s.Equal(1, updated)

	inv, err := s.svc.Invoice.GetInvoice(s.ctx, old.InvoiceID)
	s.Require().NoError(err)
	s.Equal(domain.InvoiceOverdue, inv.Status)
	inv, err = s.svc.Invoice.GetInvoice(s.ctx, recent.InvoiceID)
	s.Require().NoError(err)
	s.Equal(domain.InvoicePending, inv.Status)

	// Overdue invoices still accept payments.
	paid, err := s.svc.Invoice.RecordStudentPayment(s.ctx, old.InvoiceID, dto.RecordStudentPaymentRequest{Amount: dec("500"), Method: "cash"}, s.actor)
	s.Require().NoError(err)
	s.Equal(string(domain.InvoicePaid), paid.Status)

	_, err = s.svc.Invoice.MarkOverdueInvoices(s.ctx, mustDate("2026-02-01"), -1, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestGetStudentBalance_UnbilledEnrollmentIsZero() {
	_, enrollmentID := s.seedEnrollment("1", "Ana Reyes", "500")

	bal, err := s.svc.Invoice.GetStudentBalance(s.ctx, enrollmentID)
	s.Require().NoError(err)
	s.True(bal.CurrentBalance.IsZero())
	s.Equal("USD", bal.Currency)

	_, err = s.svc.Invoice.GetStudentBalance(s.ctx, "enr-missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
