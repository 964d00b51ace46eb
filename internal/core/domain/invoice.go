package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the settlement state of a student invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// IsOpen reports whether the invoice can still receive payments.
func (s InvoiceStatus) IsOpen() bool {
	return s == InvoicePending || s == InvoiceOverdue
}

// Invoice is a rent charge billed to a student enrollment.
type Invoice struct {
	InvoiceID       string          `json:"invoiceID"`
	StudentID       string          `json:"studentID"`
	EnrollmentID    string          `json:"enrollmentID"`
	BoardingHouseID string          `json:"boardingHouseID"`
	Amount          decimal.Decimal `json:"amount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	Description     string          `json:"description"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Status          InvoiceStatus   `json:"status"`
	Notes           string          `json:"notes"`
	TransactionID   string          `json:"transactionID"`
	AuditFields
}

// Outstanding is the amount still owed on the invoice.
func (i Invoice) Outstanding() decimal.Decimal {
	return i.Amount.Sub(i.AmountPaid)
}

// MonthlyInvoiceReference is the deterministic reference of the rent invoice of an
// enrollment for a month. Generating the same month twice collides on it.
func MonthlyInvoiceReference(month time.Time, enrollmentID string) string {
	return fmt.Sprintf("INV-%s-%s", month.Format("200601"), enrollmentID)
}
