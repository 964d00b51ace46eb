package dto

import (
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest defines the data needed to bill one enrollment.
type GenerateInvoiceRequest struct {
	StudentID    string          `json:"studentId" binding:"required"`
	EnrollmentID string          `json:"enrollmentId" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description  string          `json:"description"`
	Date         string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Kind         string          `json:"kind" binding:"omitempty,oneof=initial_invoice monthly_invoice"`
	Reference    string          `json:"referenceNumber"` // Optional, generated when empty
	Notes        string          `json:"notes"`
}

// GenerateInvoiceResponse is returned after an invoice is posted.
type GenerateInvoiceResponse struct {
	InvoiceID     string `json:"invoiceId"`
	TransactionID string `json:"transactionId"`
}

// StudentAmountOverride replaces the monthly rent of one enrollment for a batch.
type StudentAmountOverride struct {
	EnrollmentID string          `json:"enrollmentId" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required,dgt0"`
}

// GenerateMonthlyInvoicesRequest defines a monthly billing run for one boarding house.
type GenerateMonthlyInvoicesRequest struct {
	BoardingHouseID string                  `json:"boardingHouseId" binding:"required"`
	Month           string                  `json:"month" binding:"required,datetime=2006-01"`
	Students        []StudentAmountOverride `json:"students" binding:"omitempty,dive"`
}

// MonthlyInvoiceResult describes one invoice created by a billing run.
type MonthlyInvoiceResult struct {
	InvoiceID       string          `json:"invoiceId"`
	TransactionID   string          `json:"transactionId"`
	EnrollmentID    string          `json:"enrollmentId"`
	StudentID       string          `json:"studentId"`
	StudentName     string          `json:"studentName"`
	Amount          decimal.Decimal `json:"amount"`
	ReferenceNumber string          `json:"referenceNumber"`
}

// MonthlyInvoiceSkip describes an enrollment already billed for the month.
type MonthlyInvoiceSkip struct {
	EnrollmentID    string `json:"enrollmentId"`
	ReferenceNumber string `json:"referenceNumber"`
	InvoiceID       string `json:"invoiceId"`
}

// MonthlyInvoiceError describes an enrollment whose invoice could not be generated.
type MonthlyInvoiceError struct {
	EnrollmentID string `json:"enrollmentId"`
	StudentID    string `json:"studentId"`
	Error        string `json:"error"`
}

// GenerateMonthlyInvoicesResponse summarizes a best-effort billing run.
type GenerateMonthlyInvoicesResponse struct {
	TotalInvoices int                    `json:"totalInvoices"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	Invoices      []MonthlyInvoiceResult `json:"invoices"`
	Skipped       []MonthlyInvoiceSkip   `json:"skipped"`
	Errors        []MonthlyInvoiceError  `json:"errors"`
}

// RecordStudentPaymentRequest applies a student payment to an invoice.
type RecordStudentPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Method string          `json:"method" binding:"required,oneof=cash bank_transfer"`
	Date   string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// StudentPaymentResponse is returned after a student payment is posted.
type StudentPaymentResponse struct {
	InvoiceID      string          `json:"invoiceId"`
	TransactionID  string          `json:"transactionId"`
	Status         string          `json:"status"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	StudentBalance decimal.Decimal `json:"studentBalance"`
}

// CancelInvoiceRequest carries the reason an invoice is cancelled.
type CancelInvoiceRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// MarkOverdueRequest selects pending invoices to flag as overdue.
type MarkOverdueRequest struct {
	AsOf      string `json:"asOf" binding:"omitempty,datetime=2006-01-02"`
	GraceDays *int   `json:"graceDays" binding:"omitempty,min=0"`
}

// MarkOverdueResponse reports how many invoices became overdue.
type MarkOverdueResponse struct {
	Updated int `json:"updated"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID       string          `json:"invoiceId"`
	StudentID       string          `json:"studentId"`
	EnrollmentID    string          `json:"enrollmentId"`
	Amount          decimal.Decimal `json:"amount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	Description     string          `json:"description"`
	InvoiceDate     string          `json:"invoiceDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	TransactionID   string          `json:"transactionId"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:       inv.InvoiceID,
		StudentID:       inv.StudentID,
		EnrollmentID:    inv.EnrollmentID,
		Amount:          inv.Amount,
		AmountPaid:      inv.AmountPaid,
		Description:     inv.Description,
		InvoiceDate:     inv.InvoiceDate.Format(DateLayout),
		ReferenceNumber: inv.ReferenceNumber,
		Status:          string(inv.Status),
		Notes:           inv.Notes,
		TransactionID:   inv.TransactionID,
	}
}
