package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := &balanceHandler{balanceService: balanceService}

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/trial", h.trialBalance)
		balances.GET("/verify", h.verifyBalances)
		balances.POST("/rebuild", h.rebuildBalances)
		balances.GET("/:code", h.getBalance)
	}
}

// listBalances godoc
// @Summary List projected balances
// @Tags balances
// @Produce  json
// @Success 200 {array} domain.AccountBalance
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	balances, err := h.balanceService.ListBalances(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}

// getBalance godoc
// @Summary Get the balance of an account
// @Tags balances
// @Produce  json
// @Param   code path string true "Account code"
// @Success 200 {object} domain.AccountBalance
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /balances/{code} [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	balance, err := h.balanceService.GetBalance(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// trialBalance godoc
// @Summary Trial balance
// @Description Lists every projected balance in debit and credit columns
// @Tags balances
// @Produce  json
// @Success 200 {object} domain.TrialBalance
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build trial balance"
// @Security BearerAuth
// @Router /balances/trial [get]
func (h *balanceHandler) trialBalance(c *gin.Context) {
	tb, err := h.balanceService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, tb)
}

// rebuildBalances godoc
// @Summary Rebuild the balance projection
// @Description Replaces every projected balance with a replay of the live journal entries
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.RebuildBalancesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to rebuild balances"
// @Security BearerAuth
// @Router /balances/rebuild [post]
func (h *balanceHandler) rebuildBalances(c *gin.Context) {
	n, err := h.balanceService.RebuildBalances(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to rebuild balances")
		return
	}
	c.JSON(http.StatusOK, dto.RebuildBalancesResponse{AccountsRebuilt: n})
}

// verifyBalances godoc
// @Summary Verify the balance projection
// @Description Replays the journal and reports projected balances that disagree with it
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.VerifyBalancesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to verify balances"
// @Security BearerAuth
// @Router /balances/verify [get]
func (h *balanceHandler) verifyBalances(c *gin.Context) {
	drifts, err := h.balanceService.VerifyBalances(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to verify balances")
		return
	}
	c.JSON(http.StatusOK, dto.VerifyBalancesResponse{Consistent: len(drifts) == 0, Drifts: drifts})
}
