package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
)

type invoiceRepository struct {
	db access
}

func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var out domain.Invoice
	err := r.db.read(func(st *state) error {
		inv, ok := st.invoices[invoiceID]
		if !ok {
			return apperrors.NewNotFoundError("invoice", invoiceID)
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *invoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.FindInvoiceByID(ctx, invoiceID)
}

func (r *invoiceRepository) FindInvoiceByReference(ctx context.Context, reference string) (*domain.Invoice, error) {
	var out domain.Invoice
	err := r.db.read(func(st *state) error {
		for _, inv := range st.invoices {
			if inv.ReferenceNumber == reference {
				out = inv
				return nil
			}
		}
		return apperrors.NewNotFoundError("invoice", reference)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *invoiceRepository) ListPendingInvoicesBefore(ctx context.Context, cutoff time.Time) ([]domain.Invoice, error) {
	var out []domain.Invoice
	err := r.db.read(func(st *state) error {
		for _, inv := range st.invoices {
			if inv.Status == domain.InvoicePending && inv.InvoiceDate.Before(cutoff) {
				out = append(out, inv)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceDate.Before(out[j].InvoiceDate) })
	return out, err
}

func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.invoices[invoice.InvoiceID]; ok {
			return fmt.Errorf("%w: invoice %s", apperrors.ErrDuplicate, invoice.InvoiceID)
		}
		for _, inv := range st.invoices {
			if inv.ReferenceNumber == invoice.ReferenceNumber {
				return fmt.Errorf("%w: invoice reference %s", apperrors.ErrDuplicate, invoice.ReferenceNumber)
			}
		}
		st.invoices[invoice.InvoiceID] = invoice
		return nil
	})
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.invoices[invoice.InvoiceID]; !ok {
			return apperrors.NewNotFoundError("invoice", invoice.InvoiceID)
		}
		st.invoices[invoice.InvoiceID] = invoice
		return nil
	})
}
