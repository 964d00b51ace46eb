package services_test

import (
	"math/rand/v2"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/SscSPs/boarding_house_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var postableCodes = []string{
	domain.CodePettyCash,
	domain.CodeCash,
	domain.CodeBank,
	domain.CodeAccountsReceivable,
	domain.CodeAccountsPayable,
	domain.CodeOwnersEquity,
	domain.CodeRentalsIncome,
	domain.CodeGeneralExpense,
}

func randomAmount(r *rand.Rand) decimal.Decimal {
	return decimal.New(int64(r.IntN(500000)+1), -2)
}

func randomPair(r *rand.Rand) dto.AdjustmentPairRequest {
	debit := r.IntN(len(postableCodes))
	credit := (debit + 1 + r.IntN(len(postableCodes)-1)) % len(postableCodes)
	return dto.AdjustmentPairRequest{
		DebitAccount:  postableCodes[debit],
		CreditAccount: postableCodes[credit],
		Amount:        randomAmount(r),
	}
}

// TestLedgerInvariants_RandomizedHistory drives a random mix of multi-pair adjustments,
// expenses, expense edits and voids, then checks that every transaction balances and
// that a replay of the entry log reproduces the stored projection.
func (s *LedgerServiceTestSuite) TestLedgerInvariants_RandomizedHistory() {
	for _, seed := range []uint64{1, 7, 42} {
		r := rand.New(rand.NewPCG(seed, seed*31))
		var adjustments []string
		var editable []string

		for step := 0; step < 60; step++ {
			switch op := r.IntN(10); {
			case op < 4:
				pairs := make([]dto.AdjustmentPairRequest, 1+r.IntN(4))
				for i := range pairs {
					pairs[i] = randomPair(r)
				}
				posted := s.postAdjustment("2026-02-15", pairs...)
				s.Require().Len(posted.Entries, len(pairs)*2)
				adjustments = append(adjustments, posted.TransactionID)
			case op < 6:
				method := []string{"cash", "bank_transfer", "petty_cash"}[r.IntN(3)]
				resp := s.recordExpense(randomAmount(r).String(), method, "2026-02-20")
				editable = append(editable, resp.ExpenseID)
			case op < 7:
				resp := s.recordExpense(randomAmount(r).String(), "credit", "2026-02-21")
				amount := randomAmount(r)
				_, _ = s.svc.Expense.PayAccountsPayable(s.ctx, resp.ExpenseID, dto.AccountsPayablePaymentRequest{
					Amount: amount,
					Method: "bank_transfer",
				}, s.actor)
			case op < 9 && len(editable) > 0:
				id := editable[r.IntN(len(editable))]
				amount := randomAmount(r)
				_, err := s.svc.Expense.UpdateExpense(s.ctx, id, dto.UpdateExpenseRequest{Amount: &amount}, s.actor)
				s.Require().NoError(err)
			case len(adjustments) > 0:
				i := r.IntN(len(adjustments))
				_, err := s.svc.Ledger.VoidTransaction(s.ctx, adjustments[i], "randomized void", s.actor)
				s.Require().NoError(err)
				adjustments = append(adjustments[:i], adjustments[i+1:]...)
			}
		}

		entries, err := s.store.Repositories().EntryRepo.ListAllEntries(s.ctx)
		s.Require().NoError(err)
		byTransaction := make(map[string][]domain.JournalEntry)
		for _, e := range entries {
			byTransaction[e.TransactionID] = append(byTransaction[e.TransactionID], e)
		}
		for id, txnEntries := range byTransaction {
			s.NoError(accounting.ValidateEntriesBalance(txnEntries), "seed %d transaction %s", seed, id)
		}

		drifts, err := s.svc.Balance.VerifyBalances(s.ctx)
		s.Require().NoError(err)
		s.Empty(drifts, "seed %d", seed)
		s.assertTrialBalanced()
	}
}
