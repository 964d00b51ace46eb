package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/boarding_house_ledger/internal/adapters/events/noop"
	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/SscSPs/boarding_house_ledger/internal/core/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/SscSPs/boarding_house_ledger/internal/handlers"
	"github.com/SscSPs/boarding_house_ledger/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlowRouter wires the real services over an in-memory store with the default chart seeded.
func newFlowRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	container := services.NewServiceContainer(cfg, memory.NewStore(), noop.Publisher{})
	actor, err := domain.NewActor("svc:billing")
	require.NoError(t, err)
	_, err = container.Account.SeedDefaultChart(context.Background(), actor)
	require.NoError(t, err)

	r := gin.New()
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container))
	return r
}

func serviceRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", "svc-key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFlow_CreditExpenseSettlement(t *testing.T) {
	r := newFlowRouter(t)

	w := serviceRequest(t, r, http.MethodPost, "/api/v1/expenses",
		`{"boardingHouseId":"bh-1","date":"2026-03-01","amount":"300","accountId":"5000","paymentMethod":"credit"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.RecordExpenseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ExpenseID)

	w = serviceRequest(t, r, http.MethodGet, "/api/v1/balances/"+domain.CodeAccountsPayable, "")
	require.Equal(t, http.StatusOK, w.Code)
	var payable domain.AccountBalance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payable))
	assert.True(t, payable.CurrentBalance.Equal(decimal.NewFromInt(300)), payable.CurrentBalance.String())

	w = serviceRequest(t, r, http.MethodPost, "/api/v1/accounts-payable/"+created.ExpenseID+"/payments",
		`{"amount":"100","method":"cash","date":"2026-03-05"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = serviceRequest(t, r, http.MethodPost, "/api/v1/supplier-payments",
		`{"expenseId":"`+created.ExpenseID+`","amount":"250","method":"bank_transfer"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "200.00")

	w = serviceRequest(t, r, http.MethodGet, "/api/v1/balances/trial", "")
	require.Equal(t, http.StatusOK, w.Code)
	var tb domain.TrialBalance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tb))
	assert.True(t, tb.Balanced)
}

func TestFlow_RejectsInvalidExpenseBody(t *testing.T) {
	r := newFlowRouter(t)

	w := serviceRequest(t, r, http.MethodPost, "/api/v1/expenses",
		`{"boardingHouseId":"bh-1","amount":"-5","accountId":"5000","paymentMethod":"cash"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serviceRequest(t, r, http.MethodPost, "/api/v1/expenses",
		`{"boardingHouseId":"bh-1","amount":"5","accountId":"5000","paymentMethod":"cheque"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlow_UnknownServiceKeyIsUnauthorized(t *testing.T) {
	r := newFlowRouter(t)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/balances", nil)
	require.NoError(t, err)
	req.Header.Set("x-api-key", "not-a-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFlow_VerifyAfterPosting(t *testing.T) {
	r := newFlowRouter(t)

	w := serviceRequest(t, r, http.MethodPost, "/api/v1/expenses",
		`{"boardingHouseId":"bh-1","amount":"42.50","accountId":"5000","paymentMethod":"cash"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = serviceRequest(t, r, http.MethodGet, "/api/v1/balances/verify", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var verify dto.VerifyBalancesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verify))
	assert.True(t, verify.Consistent)
	assert.Empty(t, verify.Drifts)
}
