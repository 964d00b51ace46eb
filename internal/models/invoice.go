package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of student_invoices.
type Invoice struct {
	InvoiceID       string          `db:"invoice_id"`
	StudentID       string          `db:"student_id"`
	EnrollmentID    string          `db:"enrollment_id"`
	BoardingHouseID string          `db:"boarding_house_id"`
	Amount          decimal.Decimal `db:"amount"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	Description     string          `db:"description"`
	InvoiceDate     time.Time       `db:"invoice_date"`
	ReferenceNumber string          `db:"reference_number"`
	Status          string          `db:"status"`
	Notes           string          `db:"notes"`
	TransactionID   string          `db:"transaction_id"`
	AuditFields
}
