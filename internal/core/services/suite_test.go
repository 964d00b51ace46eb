package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/core/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/SscSPs/boarding_house_ledger/internal/platform/config"
	"github.com/SscSPs/boarding_house_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testBoardingHouse = "bh-1"

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.LedgerEvent
}

func (p *recordingPublisher) Publish(_ context.Context, evts ...domain.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evts...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) ofType(t domain.LedgerEventType) []domain.LedgerEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.LedgerEvent
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// LedgerServiceTestSuite runs every manager against a seeded in-memory store.
type LedgerServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memory.Store
	publisher *recordingPublisher
	svc       *portssvc.ServiceContainer
	actor     domain.Actor
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.publisher = &recordingPublisher{}
	s.svc = services.NewServiceContainer(&config.Config{DefaultCurrency: "USD", InvoiceGraceDays: 5}, s.store, s.publisher)

	actor, err := domain.NewActor("user-admin")
	s.Require().NoError(err)
	s.actor = actor

	created, err := s.svc.Account.SeedDefaultChart(s.ctx, s.actor)
	s.Require().NoError(err)
	s.Require().Len(created, len(domain.DefaultChart()))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// assertBalance compares the projected balance of the account with code against want.
func (s *LedgerServiceTestSuite) assertBalance(code string, want string) {
	bal, err := s.svc.Balance.GetBalance(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(dec(want).StringFixed(2), bal.CurrentBalance.StringFixed(2), "balance of account %s", code)
}

func (s *LedgerServiceTestSuite) assertTrialBalanced() {
	tb, err := s.svc.Balance.TrialBalance(s.ctx)
	s.Require().NoError(err)
	s.True(tb.Balanced, "trial balance: debits %s credits %s", tb.TotalDebits, tb.TotalCredits)
}

// seedEnrollment stores an active student in an occupied bed and returns the enrollment id.
func (s *LedgerServiceTestSuite) seedEnrollment(id string, name string, rent string) (studentID, enrollmentID string) {
	studentID = "stu-" + id
	enrollmentID = "enr-" + id
	bedID := "bed-" + id
	s.store.SeedStudent(domain.Student{StudentID: studentID, FullName: name, BoardingHouseID: testBoardingHouse, Status: domain.StudentActive})
	s.store.SeedBed(domain.Bed{BedID: bedID, BoardingHouseID: testBoardingHouse, Label: "Bed " + id, Status: domain.BedOccupied})
	s.store.SeedEnrollment(domain.Enrollment{
		EnrollmentID:    enrollmentID,
		StudentID:       studentID,
		BoardingHouseID: testBoardingHouse,
		BedID:           &bedID,
		MonthlyRent:     dec(rent),
	})
	return studentID, enrollmentID
}

func (s *LedgerServiceTestSuite) recordExpense(amount, method, date string) *dto.RecordExpenseResponse {
	resp, err := s.svc.Expense.RecordExpense(s.ctx, dto.RecordExpenseRequest{
		BoardingHouseID: testBoardingHouse,
		Date:            date,
		Amount:          dec(amount),
		AccountID:       domain.CodeGeneralExpense,
		PaymentMethod:   method,
	}, s.actor)
	s.Require().NoError(err)
	return resp
}

// postAdjustment records a manual adjustment of one or more debit/credit code pairs.
func (s *LedgerServiceTestSuite) postAdjustment(date string, pairs ...dto.AdjustmentPairRequest) *domain.TransactionWithEntries {
	posted, err := s.svc.Ledger.PostAdjustment(s.ctx, dto.PostAdjustmentRequest{
		BoardingHouseID: testBoardingHouse,
		Date:            date,
		Description:     "Adjustment",
		Pairs:           pairs,
	}, s.actor)
	s.Require().NoError(err)
	return posted
}

func adj(debitCode, creditCode, amount string) dto.AdjustmentPairRequest {
	return dto.AdjustmentPairRequest{DebitAccount: debitCode, CreditAccount: creditCode, Amount: dec(amount)}
}
