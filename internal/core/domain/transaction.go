package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a ledger transaction.
type TransactionStatus string

const (
	TransactionPosted TransactionStatus = "posted"
	TransactionVoided TransactionStatus = "voided"
)

// TransactionType names the business event a transaction records.
type TransactionType string

const (
	TxnInitialInvoice         TransactionType = "initial_invoice"
	TxnMonthlyInvoice         TransactionType = "monthly_invoice"
	TxnInvoicePayment         TransactionType = "invoice_payment"
	TxnInvoiceCancellation    TransactionType = "invoice_cancellation"
	TxnExpense                TransactionType = "expense"
	TxnSupplierPayment        TransactionType = "supplier_payment"
	TxnAccountsPayablePayment TransactionType = "accounts_payable_payment"
	TxnPettyCashFunding       TransactionType = "petty_cash_funding"
	TxnPettyCashExpense       TransactionType = "petty_cash_expense"
	TxnPettyCashReplenishment TransactionType = "petty_cash_replenishment"
	TxnReversal               TransactionType = "reversal"
	TxnAdjustment             TransactionType = "adjustment"
)

// OwningOperation names the operation that must be used instead of a void for
// transactions whose invoice, expense, student balance or petty-cash float would
// otherwise drift from the ledger. It is empty for transactions that may be voided.
func (t TransactionType) OwningOperation() string {
	switch t {
	case TxnInitialInvoice, TxnMonthlyInvoice:
		return "cancel the invoice"
	case TxnInvoicePayment, TxnInvoiceCancellation:
		return "the invoice operations"
	case TxnExpense:
		return "update the expense"
	case TxnSupplierPayment, TxnAccountsPayablePayment:
		return "the expense settlement operations"
	case TxnPettyCashFunding, TxnPettyCashExpense, TxnPettyCashReplenishment:
		return "the petty cash operations"
	case TxnReversal:
		return "a new adjustment"
	}
	return ""
}

// Voidable reports whether a transaction of this type may be reversed through a void.
func (t TransactionType) Voidable() bool {
	return t.OwningOperation() == ""
}

// Transaction is the header of one business event. Its journal entries always balance.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	TransactionType TransactionType   `json:"transactionType"`
	Reference       string            `json:"reference"`
	Amount          decimal.Decimal   `json:"amount"`
	Currency        string            `json:"currency"`
	Description     string            `json:"description"`
	TransactionDate time.Time         `json:"transactionDate"`
	BoardingHouseID string            `json:"boardingHouseID"`
	Status          TransactionStatus `json:"status"`
	VoidReason      string            `json:"voidReason,omitempty"`
	AuditFields
}

// TransactionWithEntries bundles a header with its non-deleted entries.
type TransactionWithEntries struct {
	Transaction
	Entries []JournalEntry `json:"entries"`
}
