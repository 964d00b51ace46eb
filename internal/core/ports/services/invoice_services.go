package services

import (
	"context"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

// InvoiceWriterSvc defines invoicing and receivable operations
type InvoiceWriterSvc interface {
	// GenerateInvoice bills one enrollment atomically.
	GenerateInvoice(ctx context.Context, req dto.GenerateInvoiceRequest, actor domain.Actor) (*dto.GenerateInvoiceResponse, error)

	// GenerateMonthlyInvoices bills every billable enrollment of a boarding house, one
	// unit of work per enrollment. Failures are collected and the run continues.
	GenerateMonthlyInvoices(ctx context.Context, req dto.GenerateMonthlyInvoicesRequest, actor domain.Actor) (*dto.GenerateMonthlyInvoicesResponse, error)

	RecordStudentPayment(ctx context.Context, invoiceID string, req dto.RecordStudentPaymentRequest, actor domain.Actor) (*dto.StudentPaymentResponse, error)
	CancelInvoice(ctx context.Context, invoiceID string, req dto.CancelInvoiceRequest, actor domain.Actor) (*domain.Invoice, error)

	// MarkOverdueInvoices flags pending invoices older than graceDays as of asOf.
	MarkOverdueInvoices(ctx context.Context, asOf time.Time, graceDays int, actor domain.Actor) (int, error)
}

// InvoiceReaderSvc defines invoice reads
type InvoiceReaderSvc interface {
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	GetStudentBalance(ctx context.Context, enrollmentID string) (*domain.StudentAccountBalance, error)
}

// InvoiceSvcFacade combines all invoice service interfaces
type InvoiceSvcFacade interface {
	InvoiceWriterSvc
	InvoiceReaderSvc
}
