package mapping

import (
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:       d.InvoiceID,
		StudentID:       d.StudentID,
		EnrollmentID:    d.EnrollmentID,
		BoardingHouseID: d.BoardingHouseID,
		Amount:          d.Amount,
		AmountPaid:      d.AmountPaid,
		Description:     d.Description,
		InvoiceDate:     d.InvoiceDate,
		ReferenceNumber: d.ReferenceNumber,
		Status:          string(d.Status),
		Notes:           d.Notes,
		TransactionID:   d.TransactionID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		StudentID:       m.StudentID,
		EnrollmentID:    m.EnrollmentID,
		BoardingHouseID: m.BoardingHouseID,
		Amount:          m.Amount,
		AmountPaid:      m.AmountPaid,
		Description:     m.Description,
		InvoiceDate:     m.InvoiceDate,
		ReferenceNumber: m.ReferenceNumber,
		Status:          domain.InvoiceStatus(m.Status),
		Notes:           m.Notes,
		TransactionID:   m.TransactionID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
