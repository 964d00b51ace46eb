package services_test

import (
	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
)

func (s *LedgerServiceTestSuite) TestSeedDefaultChart_IsIdempotent() {
	created, err := s.svc.Account.SeedDefaultChart(s.ctx, s.actor)
	s.Require().NoError(err)
	s.Empty(created)

	accounts, err := s.svc.Account.ListAccounts(s.ctx, dto.ListAccountsParams{})
	s.Require().NoError(err)
	s.Len(accounts, len(domain.DefaultChart()))
}

func (s *LedgerServiceTestSuite) TestCreateAccount_Validation() {
	_, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "60001",
		Name:        "Maintenance",
		AccountType: domain.AccountType("COST"),
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        domain.CodeCash,
		Name:        "Second cash",
		AccountType: domain.Asset,
	}, s.actor)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	acc, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "60001",
		Name:        " Maintenance ",
		AccountType: domain.ExpenseAccount,
	}, s.actor)
	s.Require().NoError(err)
	s.Equal("Maintenance", acc.Name)
	s.Equal("user-admin", acc.CreatedBy)
}

func (s *LedgerServiceTestSuite) TestDeleteAccount() {
	_, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "60002",
		Name:        "Laundry",
		AccountType: domain.ExpenseAccount,
	}, s.actor)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Account.DeleteAccount(s.ctx, "60002", s.actor))
	_, err = s.svc.Account.GetAccountByCode(s.ctx, "60002")
	s.ErrorIs(err, apperrors.ErrNotFound)

	all, err := s.svc.Account.ListAccounts(s.ctx, dto.ListAccountsParams{IncludeDeleted: true})
	s.Require().NoError(err)
	s.Len(all, len(domain.DefaultChart())+1)

	s.recordExpense("10", "cash", "")
	err = s.svc.Account.DeleteAccount(s.ctx, domain.CodeCash, s.actor)
	s.ErrorIs(err, apperrors.ErrConflict)
}
