package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StudentReader defines read access to students and their enrollments.
// Student, bed and enrollment maintenance lives outside the ledger.
type StudentReader interface {
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error)

	// ListBillableEnrollments returns enrollments of active students in the boarding house
	// that hold an assigned, non-deleted, occupied bed.
	ListBillableEnrollments(ctx context.Context, boardingHouseID string) ([]domain.BillableEnrollment, error)

	FindStudentBalance(ctx context.Context, enrollmentID string) (*domain.StudentAccountBalance, error)
}

// StudentBalanceWriter mutates the running student balance.
type StudentBalanceWriter interface {
	// AdjustStudentBalance adds delta to the enrollment's balance, creating the row at zero
	// first when needed, and returns the new balance.
	AdjustStudentBalance(ctx context.Context, studentID string, enrollmentID string, delta decimal.Decimal, currency string, now time.Time) (decimal.Decimal, error)
}

// StudentRepositoryFacade combines student reads and balance writes
type StudentRepositoryFacade interface {
	StudentReader
	StudentBalanceWriter
}

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByIDForUpdate locks the invoice row for the rest of the unit of work.
	FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	FindInvoiceByReference(ctx context.Context, reference string) (*domain.Invoice, error)

	// ListPendingInvoicesBefore returns pending invoices dated strictly before cutoff.
	ListPendingInvoicesBefore(ctx context.Context, cutoff time.Time) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices
type InvoiceWriter interface {
	// SaveInvoice inserts an invoice. A taken reference number yields ErrDuplicate.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice operations
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
