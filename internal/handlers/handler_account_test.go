package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/apperrors"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/boarding_house_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/SscSPs/boarding_house_ledger/internal/handlers"
	"github.com/SscSPs/boarding_house_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-for-handler-tests"
	testJWTIssuer = "boarding-house-ledger-test"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ResolveAccount(ctx context.Context, repos portsrepo.RepositoryProvider, ref string) (*domain.Account, error) {
	args := m.Called(ctx, repos, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor domain.Actor) (*domain.Account, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, code string, actor domain.Actor) error {
	args := m.Called(ctx, code, actor)
	return args.Error(0)
}

func (m *MockAccountService) SeedDefaultChart(ctx context.Context, actor domain.Actor) ([]domain.Account, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) OpenTransaction(ctx context.Context, repos portsrepo.RepositoryProvider, params domain.OpenTransactionParams, actor domain.Actor) (*domain.Transaction, error) {
	args := m.Called(ctx, repos, params, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) PostEntryPairs(ctx context.Context, repos portsrepo.RepositoryProvider, txn *domain.Transaction, pairs []domain.EntryPair, actor domain.Actor) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, repos, txn, pairs, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerService) Record(ctx context.Context, repos portsrepo.RepositoryProvider, params domain.OpenTransactionParams, pairs []domain.EntryPair, actor domain.Actor) (*domain.TransactionWithEntries, error) {
	args := m.Called(ctx, repos, params, pairs, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithEntries), args.Error(1)
}

func (m *MockLedgerService) ReplaceEntries(ctx context.Context, repos portsrepo.RepositoryProvider, txn *domain.Transaction, pairs []domain.EntryPair, actor domain.Actor) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, repos, txn, pairs, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionWithEntries, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithEntries), args.Error(1)
}

func (m *MockLedgerService) ListEntriesByAccount(ctx context.Context, accountCode string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, accountCode, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockLedgerService) VoidTransaction(ctx context.Context, transactionID string, reason string, actor domain.Actor) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) PostAdjustment(ctx context.Context, req dto.PostAdjustmentRequest, actor domain.Actor) (*domain.TransactionWithEntries, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithEntries), args.Error(1)
}

// --- Test Suite Setup ---

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        testJWTSecret,
		JWTIssuer:        testJWTIssuer,
		RateLimit:        "1000-M",
		DefaultCurrency:  "USD",
		InvoiceGraceDays: 5,
		ServiceKeys:      map[string]string{"svc-key-1": "svc:billing"},
	}
}

// generateTestJWT signs an HS256 token for userID the way the auth middleware expects.
func generateTestJWT(userID string, expiry time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    testJWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

type AccountHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockAccounts  *MockAccountService
	mockLedger    *MockLedgerService
	testUserID    string
	testAuthToken string
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAccounts = new(MockAccountService)
	suite.mockLedger = new(MockLedgerService)
	suite.testUserID = "user-123"

	token, err := generateTestJWT(suite.testUserID, time.Hour)
	suite.Require().NoError(err)
	suite.testAuthToken = token

	suite.router = gin.New()
	err = handlers.RegisterRoutes(suite.router, testConfig(), &portssvc.ServiceContainer{
		Account: suite.mockAccounts,
		Ledger:  suite.mockLedger,
	})
	suite.Require().NoError(err)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (suite *AccountHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.testAuthToken)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) actor() domain.Actor {
	actor, err := domain.NewActor(suite.testUserID)
	suite.Require().NoError(err)
	return actor
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Code: "60001", Name: "Maintenance", AccountType: domain.ExpenseAccount}
	created := &domain.Account{
		AccountID:   "acc-1",
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		AuditFields: domain.NewAuditFields(suite.actor(), time.Now().UTC()),
	}
	suite.mockAccounts.On("CreateAccount", mock.Anything, req, suite.actor()).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"code":"60001","name":"Maintenance","accountType":"EXPENSE"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal("60001", resp.Code)
	suite.Equal(suite.testUserID, resp.CreatedBy)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_BindingFailure() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"code":"60001","name":"Maintenance","accountType":"COST"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
	suite.mockAccounts.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Duplicate() {
	suite.mockAccounts.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: account code 10002", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"code":"10002","name":"Cash","accountType":"ASSET"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "account code 10002")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccounts.On("GetAccountByCode", mock.Anything, "99999").
		Return(nil, apperrors.NewNotFoundError("account", "99999")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/99999", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_StorageFailureIsMasked() {
	suite.mockAccounts.On("GetAccountByCode", mock.Anything, "10002").
		Return(nil, apperrors.NewStorageError("query failed", fmt.Errorf("pq: connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/10002", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
	suite.Contains(w.Body.String(), "Failed to retrieve account")
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Conflict() {
	suite.mockAccounts.On("DeleteAccount", mock.Anything, "10002", suite.actor()).
		Return(fmt.Errorf("%w: account 10002 is referenced by journal entries", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/10002", "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Success() {
	suite.mockAccounts.On("DeleteAccount", mock.Anything, "60001", suite.actor()).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/60001", "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListEntries_PassesPaging() {
	token := "next-page"
	page := &dto.ListEntriesResponse{Entries: []dto.JournalEntryResponse{{EntryID: "e1"}}, NextToken: &token}
	suite.mockLedger.On("ListEntriesByAccount", mock.Anything, "10002", dto.ListEntriesParams{Limit: 10, NextToken: "abc"}).
		Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/10002/entries?limit=10&nextToken=abc", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)
}

func (suite *AccountHandlerTestSuite) TestVoidTransaction_RequiresReason() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/void", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "VoidTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestVoidTransaction_AlreadyVoided() {
	suite.mockLedger.On("VoidTransaction", mock.Anything, "txn-1", "typo", suite.actor()).
		Return(nil, fmt.Errorf("%w: transaction txn-1 is already voided", apperrors.ErrInvalidState)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/void", `{"reason":"typo"}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *AccountHandlerTestSuite) TestVoidTransaction_OwnedTransactionConflicts() {
	suite.mockLedger.On("VoidTransaction", mock.Anything, "txn-inv", "wrong month", suite.actor()).
		Return(nil, fmt.Errorf("%w: invoice transaction txn-inv cannot be voided, use CancelInvoice instead", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-inv/void", `{"reason":"wrong month"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "cannot be voided")
}

func (suite *AccountHandlerTestSuite) TestPostAdjustment_Created() {
	posted := &domain.TransactionWithEntries{
		Transaction: domain.Transaction{
			TransactionID:   "txn-adj",
			TransactionType: domain.TxnAdjustment,
			Reference:       "ADJ-20260101-abcd1234",
			Status:          domain.TransactionPosted,
		},
	}
	matches := mock.MatchedBy(func(req dto.PostAdjustmentRequest) bool {
		return req.BoardingHouseID == "bh-1" && len(req.Pairs) == 1 &&
			req.Pairs[0].DebitAccount == "10002" && req.Pairs[0].CreditAccount == "30001" &&
			req.Pairs[0].Amount.String() == "150"
	})
	suite.mockLedger.On("PostAdjustment", mock.Anything, matches, suite.actor()).Return(posted, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions",
		`{"boardingHouseId":"bh-1","description":"Opening cash","pairs":[{"debitAccount":"10002","creditAccount":"30001","amount":"150"}]}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-adj", resp.TransactionID)
	suite.Equal("adjustment", resp.TransactionType)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestPostAdjustment_RejectsEmptyPairs() {
	w := suite.do(http.MethodPost, "/api/v1/transactions",
		`{"boardingHouseId":"bh-1","description":"Nothing","pairs":[]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "PostAdjustment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestAuth_MissingAndExpiredTokens() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	expired, err := generateTestJWT(suite.testUserID, -time.Minute)
	suite.Require().NoError(err)
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")

	suite.mockAccounts.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestAuth_ServiceKeyActsAsServiceUser() {
	serviceActor, err := domain.NewActor("svc:billing")
	suite.Require().NoError(err)
	suite.mockAccounts.On("SeedDefaultChart", mock.Anything, serviceActor).Return([]domain.Account{}, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts/seed", nil)
	req.Header.Set("x-api-key", "svc-key-1")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}
