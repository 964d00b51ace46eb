package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.postAdjustment)
		txns.GET("/:id", h.getTransaction)
		txns.POST("/:id/void", h.voidTransaction)
	}
}

// postAdjustment godoc
// @Summary Post a manual adjustment
// @Description Records an adjustment such as an opening balance or a correction. Accounts are referenced by id or code.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   request body dto.PostAdjustmentRequest true "Adjustment pairs"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to post adjustment"
// @Security BearerAuth
// @Router /transactions [post]
func (h *ledgerHandler) postAdjustment(c *gin.Context) {
	var req dto.PostAdjustmentRequest
	if !bindJSON(c, &req, "PostAdjustment") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txn, err := h.ledgerService.PostAdjustment(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to post adjustment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves a ledger transaction with its live journal entries
// @Tags ledger
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// voidTransaction godoc
// @Summary Void an adjustment
// @Description Marks an adjustment voided and posts a reversal with swapped entries. Invoice, expense and petty-cash transactions are voided through their own operations.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   request body dto.VoidTransactionRequest true "Void reason"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is owned by an invoice, expense or petty-cash float"
// @Failure 422 {object} map[string]string "Transaction already voided"
// @Failure 500 {object} map[string]string "Failed to void transaction"
// @Security BearerAuth
// @Router /transactions/{id}/void [post]
func (h *ledgerHandler) voidTransaction(c *gin.Context) {
	var req dto.VoidTransactionRequest
	if !bindJSON(c, &req, "VoidTransaction") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txn, err := h.ledgerService.VoidTransaction(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		respondError(c, err, "Failed to void transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}
