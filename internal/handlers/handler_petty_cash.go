package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type pettyCashHandler struct {
	pettyCashService portssvc.PettyCashSvcFacade
}

func registerPettyCashRoutes(rg *gin.RouterGroup, pettyCashService portssvc.PettyCashSvcFacade) {
	h := &pettyCashHandler{pettyCashService: pettyCashService}

	pc := rg.Group("/petty-cash")
	{
		pc.GET("/users/:id", h.getAccount)
		pc.GET("/users/:id/pending", h.listPending)
		pc.POST("/users/:id/fund", h.fund)
		pc.POST("/users/:id/expenses", h.submitExpense)
		pc.POST("/users/:id/replenishments", h.submitReplenishment)
		pc.POST("/pending-expenses/:id/approve", h.approve)
		pc.POST("/pending-expenses/:id/reject", h.reject)
	}
}

// getAccount godoc
// @Summary Get a petty cash float
// @Tags petty-cash
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.PettyCashAccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Petty cash account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve petty cash account"
// @Security BearerAuth
// @Router /petty-cash/users/{id} [get]
func (h *pettyCashHandler) getAccount(c *gin.Context) {
	account, err := h.pettyCashService.GetPettyCashAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve petty cash account")
		return
	}
	c.JSON(http.StatusOK, dto.ToPettyCashAccountResponse(account))
}

// listPending godoc
// @Summary List pending petty cash requests
// @Tags petty-cash
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {array} domain.PendingPettyCashTransaction
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list pending requests"
// @Security BearerAuth
// @Router /petty-cash/users/{id}/pending [get]
func (h *pettyCashHandler) listPending(c *gin.Context) {
	pending, err := h.pettyCashService.ListPending(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list pending requests")
		return
	}
	c.JSON(http.StatusOK, pending)
}

// fund godoc
// @Summary Fund a petty cash float
// @Description Moves money from the bank into a user's float, opening it when needed
// @Tags petty-cash
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   request body dto.FundPettyCashRequest true "Funding details"
// @Success 200 {object} dto.PettyCashAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to fund petty cash"
// @Security BearerAuth
// @Router /petty-cash/users/{id}/fund [post]
func (h *pettyCashHandler) fund(c *gin.Context) {
	var req dto.FundPettyCashRequest
	if !bindJSON(c, &req, "FundPettyCash") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	account, err := h.pettyCashService.FundPettyCash(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to fund petty cash")
		return
	}
	c.JSON(http.StatusOK, dto.ToPettyCashAccountResponse(account))
}

// submitExpense godoc
// @Summary Submit a petty cash expense
// @Description Creates a pending request and reserves its amount from the float
// @Tags petty-cash
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   request body dto.SubmitPettyCashExpenseRequest true "Expense details"
// @Success 201 {object} dto.PendingPettyCashResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Petty cash account not found"
// @Failure 422 {object} map[string]string "Insufficient petty cash balance"
// @Failure 500 {object} map[string]string "Failed to submit petty cash expense"
// @Security BearerAuth
// @Router /petty-cash/users/{id}/expenses [post]
func (h *pettyCashHandler) submitExpense(c *gin.Context) {
	var req dto.SubmitPettyCashExpenseRequest
	if !bindJSON(c, &req, "SubmitPettyCashExpense") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.pettyCashService.SubmitExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to submit petty cash expense")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// submitReplenishment godoc
// @Summary Submit a petty cash replenishment
// @Tags petty-cash
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   request body dto.SubmitReplenishmentRequest true "Replenishment details"
// @Success 201 {object} dto.PendingPettyCashResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Petty cash account not found"
// @Failure 500 {object} map[string]string "Failed to submit replenishment"
// @Security BearerAuth
// @Router /petty-cash/users/{id}/replenishments [post]
func (h *pettyCashHandler) submitReplenishment(c *gin.Context) {
	var req dto.SubmitReplenishmentRequest
	if !bindJSON(c, &req, "SubmitReplenishment") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.pettyCashService.SubmitReplenishment(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to submit replenishment")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// approve godoc
// @Summary Approve a petty cash request
// @Description Posts the request to the ledger and settles the float
// @Tags petty-cash
// @Produce  json
// @Param   id path string true "Pending request ID"
// @Success 200 {object} dto.PettyCashReviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 422 {object} map[string]string "Request already reviewed or insufficient balance"
// @Failure 500 {object} map[string]string "Failed to approve request"
// @Security BearerAuth
// @Router /petty-cash/pending-expenses/{id}/approve [post]
func (h *pettyCashHandler) approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.pettyCashService.Approve(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to approve request")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// reject godoc
// @Summary Reject a petty cash request
// @Description Releases the reserved amount. Nothing is posted to the ledger.
// @Tags petty-cash
// @Accept  json
// @Produce  json
// @Param   id path string true "Pending request ID"
// @Param   request body dto.RejectPettyCashRequest true "Rejection reason"
// @Success 200 {object} dto.PettyCashReviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 422 {object} map[string]string "Request already reviewed"
// @Failure 500 {object} map[string]string "Failed to reject request"
// @Security BearerAuth
// @Router /petty-cash/pending-expenses/{id}/reject [post]
func (h *pettyCashHandler) reject(c *gin.Context) {
	var req dto.RejectPettyCashRequest
	if !bindJSON(c, &req, "RejectPettyCash") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.pettyCashService.Reject(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to reject request")
		return
	}
	c.JSON(http.StatusOK, resp)
}
