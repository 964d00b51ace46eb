package dto

import (
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordExpenseRequest defines the data needed to book an expense.
// AccountID accepts either the account id or its chart code.
type RecordExpenseRequest struct {
	BoardingHouseID string          `json:"boardingHouseId" binding:"required"`
	Date            string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount          decimal.Decimal `json:"amount" binding:"required,dgt0"`
	AccountID       string          `json:"accountId" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required,oneof=cash bank_transfer petty_cash credit"`
	SupplierID      *string         `json:"supplierId"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber"`
	ReceiptPath     *string         `json:"receiptPath"`
}

// RecordExpenseResponse is returned after an expense is posted.
type RecordExpenseResponse struct {
	ExpenseID     string `json:"expenseId"`
	TransactionID string `json:"transactionId"`
}

// UpdateExpenseRequest edits an expense; its journal entries are replaced wholesale.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,dgt0"`
	AccountID   *string          `json:"accountId" binding:"omitempty,min=1"`
	Description *string          `json:"description"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// RecordSupplierPaymentRequest settles part of a credit expense.
type RecordSupplierPaymentRequest struct {
	ExpenseID string          `json:"expenseId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Method    string          `json:"method" binding:"required,oneof=cash bank_transfer petty_cash"`
	Date      string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// SupplierPaymentResponse is returned after a supplier payment is posted.
type SupplierPaymentResponse struct {
	PaymentID        string          `json:"paymentId"`
	TransactionID    string          `json:"transactionId"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	PaymentStatus    string          `json:"paymentStatus"`
}

// AccountsPayablePaymentRequest pays down the payable of one expense.
type AccountsPayablePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Method string          `json:"method" binding:"required,oneof=cash bank_transfer petty_cash"`
	Date   string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// AccountsPayablePaymentResponse is returned after an accounts-payable payment.
type AccountsPayablePaymentResponse struct {
	PaymentTransactionID string          `json:"paymentTransactionId"`
	PaymentID            string          `json:"paymentId"`
	RemainingBalance     decimal.Decimal `json:"remainingBalance"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID        string                   `json:"expenseId"`
	TransactionID    string                   `json:"transactionId"`
	ExpenseDate      string                   `json:"expenseDate"`
	Amount           decimal.Decimal          `json:"amount"`
	TotalAmount      decimal.Decimal          `json:"totalAmount"`
	RemainingBalance decimal.Decimal          `json:"remainingBalance"`
	PaymentMethod    string                   `json:"paymentMethod"`
	PaymentStatus    string                   `json:"paymentStatus"`
	ExpenseAccountID string                   `json:"expenseAccountId"`
	SupplierID       *string                  `json:"supplierId,omitempty"`
	ReferenceNumber  string                   `json:"referenceNumber"`
	ReceiptPath      *string                  `json:"receiptPath,omitempty"`
	Description      string                   `json:"description"`
	Payments         []SupplierPaymentSummary `json:"payments,omitempty"`
}

// SupplierPaymentSummary lists one settlement of an expense.
type SupplierPaymentSummary struct {
	PaymentID     string          `json:"paymentId"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ToExpenseResponse converts a domain.Expense and its payments to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense, payments []domain.SupplierPayment) ExpenseResponse {
	resp := ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		TransactionID:    e.TransactionID,
		ExpenseDate:      e.ExpenseDate.Format(DateLayout),
		Amount:           e.Amount,
		TotalAmount:      e.TotalAmount,
		RemainingBalance: e.RemainingBalance,
		PaymentMethod:    string(e.PaymentMethod),
		PaymentStatus:    string(e.PaymentStatus),
		ExpenseAccountID: e.ExpenseAccountID,
		SupplierID:       e.SupplierID,
		ReferenceNumber:  e.ReferenceNumber,
		ReceiptPath:      e.ReceiptPath,
		Description:      e.Description,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, SupplierPaymentSummary{
			PaymentID:     p.PaymentID,
			TransactionID: p.TransactionID,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate.Format(DateLayout),
			PaymentMethod: string(p.PaymentMethod),
		})
	}
	return resp
}
