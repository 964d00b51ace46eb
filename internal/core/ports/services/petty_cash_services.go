package services

import (
	"context"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

// PettyCashWriterSvc defines the petty-cash approval workflow
type PettyCashWriterSvc interface {
	FundPettyCash(ctx context.Context, userID string, req dto.FundPettyCashRequest, actor domain.Actor) (*domain.PettyCashAccount, error)

	// SubmitExpense creates a pending request and reserves its amount.
	SubmitExpense(ctx context.Context, userID string, req dto.SubmitPettyCashExpenseRequest, actor domain.Actor) (*dto.PendingPettyCashResponse, error)
	SubmitReplenishment(ctx context.Context, userID string, req dto.SubmitReplenishmentRequest, actor domain.Actor) (*dto.PendingPettyCashResponse, error)

	Approve(ctx context.Context, pendingID string, actor domain.Actor) (*dto.PettyCashReviewResponse, error)
	Reject(ctx context.Context, pendingID string, req dto.RejectPettyCashRequest, actor domain.Actor) (*dto.PettyCashReviewResponse, error)
}

// PettyCashReaderSvc defines petty-cash reads
type PettyCashReaderSvc interface {
	GetPettyCashAccount(ctx context.Context, userID string) (*domain.PettyCashAccount, error)
	ListPending(ctx context.Context, userID string) ([]domain.PendingPettyCashTransaction, error)
}

// PettyCashSvcFacade combines all petty-cash service interfaces
type PettyCashSvcFacade interface {
	PettyCashWriterSvc
	PettyCashReaderSvc
}
