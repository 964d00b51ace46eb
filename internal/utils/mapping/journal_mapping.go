package mapping

import (
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		TransactionType: string(d.TransactionType),
		Reference:       d.Reference,
		Amount:          d.Amount,
		Currency:        d.Currency,
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		BoardingHouseID: d.BoardingHouseID,
		Status:          models.TransactionStatus(d.Status),
		VoidReason:      d.VoidReason,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Reference:       m.Reference,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		BoardingHouseID: m.BoardingHouseID,
		Status:          domain.TransactionStatus(m.Status),
		VoidReason:      m.VoidReason,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		EntryType:       models.EntryType(d.EntryType),
		Amount:          d.Amount,
		Description:     d.Description,
		BoardingHouseID: d.BoardingHouseID,
		EntryDate:       d.EntryDate,
		DeletedAt:       d.DeletedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		EntryType:       domain.EntryType(m.EntryType),
		Amount:          m.Amount,
		Description:     m.Description,
		BoardingHouseID: m.BoardingHouseID,
		EntryDate:       m.EntryDate,
		DeletedAt:       m.DeletedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntries converts a slice of model entries
func ToDomainJournalEntries(ms []models.JournalEntry) []domain.JournalEntry {
	if ms == nil {
		return nil
	}
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
