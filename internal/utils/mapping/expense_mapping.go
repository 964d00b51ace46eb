package mapping

import (
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:        d.ExpenseID,
		TransactionID:    d.TransactionID,
		BoardingHouseID:  d.BoardingHouseID,
		ExpenseDate:      d.ExpenseDate,
		Amount:           d.Amount,
		TotalAmount:      d.TotalAmount,
		RemainingBalance: d.RemainingBalance,
		PaymentMethod:    string(d.PaymentMethod),
		PaymentStatus:    string(d.PaymentStatus),
		ExpenseAccountID: d.ExpenseAccountID,
		SupplierID:       d.SupplierID,
		ReferenceNumber:  d.ReferenceNumber,
		ReceiptPath:      d.ReceiptPath,
		Description:      d.Description,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:        m.ExpenseID,
		TransactionID:    m.TransactionID,
		BoardingHouseID:  m.BoardingHouseID,
		ExpenseDate:      m.ExpenseDate,
		Amount:           m.Amount,
		TotalAmount:      m.TotalAmount,
		RemainingBalance: m.RemainingBalance,
		PaymentMethod:    domain.PaymentMethod(m.PaymentMethod),
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		ExpenseAccountID: m.ExpenseAccountID,
		SupplierID:       m.SupplierID,
		ReferenceNumber:  m.ReferenceNumber,
		ReceiptPath:      m.ReceiptPath,
		Description:      m.Description,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSupplierPayment converts a domain SupplierPayment to a model SupplierPayment
func ToModelSupplierPayment(d domain.SupplierPayment) models.SupplierPayment {
	return models.SupplierPayment{
		PaymentID:       d.PaymentID,
		SupplierID:      d.SupplierID,
		ExpenseID:       d.ExpenseID,
		Amount:          d.Amount,
		PaymentDate:     d.PaymentDate,
		PaymentMethod:   string(d.PaymentMethod),
		TransactionID:   d.TransactionID,
		ReferenceNumber: d.ReferenceNumber,
		DeletedAt:       d.DeletedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplierPayment converts a model SupplierPayment to a domain SupplierPayment
func ToDomainSupplierPayment(m models.SupplierPayment) domain.SupplierPayment {
	return domain.SupplierPayment{
		PaymentID:       m.PaymentID,
		SupplierID:      m.SupplierID,
		ExpenseID:       m.ExpenseID,
		Amount:          m.Amount,
		PaymentDate:     m.PaymentDate,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		TransactionID:   m.TransactionID,
		ReferenceNumber: m.ReferenceNumber,
		DeletedAt:       m.DeletedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
