package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{expenseService: expenseService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.recordExpense)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
	}
	rg.POST("/supplier-payments", h.recordSupplierPayment)
	rg.POST("/accounts-payable/:id/payments", h.payAccountsPayable)
}

// recordExpense godoc
// @Summary Record an expense
// @Description Debits the expense account and credits the account of the payment method. Credit purchases are booked to accounts payable.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   request body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} dto.RecordExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) recordExpense(c *gin.Context) {
	var req dto.RecordExpenseRequest
	if !bindJSON(c, &req, "RecordExpense") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.expenseService.RecordExpense(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// getExpense godoc
// @Summary Get an expense
// @Description Retrieves an expense with its supplier payments
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to retrieve expense"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, payments, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense, payments))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Rewrites an unpaid expense and replaces its journal entries
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   request body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 409 {object} map[string]string "Expense already has payments"
// @Failure 500 {object} map[string]string "Failed to update expense"
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if !bindJSON(c, &req, "UpdateExpense") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense, nil))
}

// recordSupplierPayment godoc
// @Summary Pay a supplier
// @Description Settles part or all of a credit expense: debits accounts payable and credits the paying account
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   request body dto.RecordSupplierPaymentRequest true "Payment details"
// @Success 201 {object} dto.SupplierPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 422 {object} map[string]string "Payment exceeds remaining balance"
// @Failure 500 {object} map[string]string "Failed to record supplier payment"
// @Security BearerAuth
// @Router /supplier-payments [post]
func (h *expenseHandler) recordSupplierPayment(c *gin.Context) {
	var req dto.RecordSupplierPaymentRequest
	if !bindJSON(c, &req, "RecordSupplierPayment") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.expenseService.RecordSupplierPayment(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to record supplier payment")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// payAccountsPayable godoc
// @Summary Pay an accounts payable expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   request body dto.AccountsPayablePaymentRequest true "Payment details"
// @Success 201 {object} dto.AccountsPayablePaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 422 {object} map[string]string "Payment exceeds remaining balance"
// @Failure 500 {object} map[string]string "Failed to pay accounts payable"
// @Security BearerAuth
// @Router /accounts-payable/{id}/payments [post]
func (h *expenseHandler) payAccountsPayable(c *gin.Context) {
	var req dto.AccountsPayablePaymentRequest
	if !bindJSON(c, &req, "PayAccountsPayable") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.expenseService.PayAccountsPayable(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to pay accounts payable")
		return
	}
	c.JSON(http.StatusCreated, resp)
}
