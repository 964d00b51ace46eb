package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/boarding_house_ledger/internal/core/ports/services"
	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService   portssvc.InvoiceSvcFacade
	defaultGraceDays int
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, graceDays int) {
	h := &invoiceHandler{invoiceService: invoiceService, defaultGraceDays: graceDays}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/generate", h.generateInvoice)
		invoices.POST("/mark-overdue", h.markOverdue)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("/:id/payments", h.recordPayment)
		invoices.POST("/:id/cancel", h.cancelInvoice)
	}
	rg.POST("/monthly-invoices/generate", h.generateMonthlyInvoices)
	rg.GET("/enrollments/:id/balance", h.getStudentBalance)
}

// generateInvoice godoc
// @Summary Generate an invoice
// @Description Bills one enrollment: debits accounts receivable, credits rental income and lowers the student balance, atomically
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.GenerateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.GenerateInvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Student or enrollment not found"
// @Failure 409 {object} map[string]string "Reference already used"
// @Failure 500 {object} map[string]string "Failed to generate invoice"
// @Security BearerAuth
// @Router /invoices/generate [post]
func (h *invoiceHandler) generateInvoice(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	if !bindJSON(c, &req, "GenerateInvoice") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.invoiceService.GenerateInvoice(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to generate invoice")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// generateMonthlyInvoices godoc
// @Summary Generate monthly invoices
// @Description Bills every active student with an occupied bed. Each student is billed in its own transaction; already billed students are skipped and failures are reported per student.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.GenerateMonthlyInvoicesRequest true "Boarding house and month"
// @Success 200 {object} dto.GenerateMonthlyInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate monthly invoices"
// @Security BearerAuth
// @Router /monthly-invoices/generate [post]
func (h *invoiceHandler) generateMonthlyInvoices(c *gin.Context) {
	var req dto.GenerateMonthlyInvoicesRequest
	if !bindJSON(c, &req, "GenerateMonthlyInvoices") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.invoiceService.GenerateMonthlyInvoices(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to generate monthly invoices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// recordPayment godoc
// @Summary Record a student payment
// @Description Debits cash or bank, credits accounts receivable and raises the student balance
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   request body dto.RecordStudentPaymentRequest true "Payment details"
// @Success 201 {object} dto.StudentPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 422 {object} map[string]string "Overpayment or closed invoice"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /invoices/{id}/payments [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	var req dto.RecordStudentPaymentRequest
	if !bindJSON(c, &req, "RecordStudentPayment") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	resp, err := h.invoiceService.RecordStudentPayment(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// cancelInvoice godoc
// @Summary Cancel an invoice
// @Description Reverses the receivable of an unpaid invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   request body dto.CancelInvoiceRequest true "Cancellation reason"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice has payments"
// @Failure 500 {object} map[string]string "Failed to cancel invoice"
// @Security BearerAuth
// @Router /invoices/{id}/cancel [post]
func (h *invoiceHandler) cancelInvoice(c *gin.Context) {
	var req dto.CancelInvoiceRequest
	if !bindJSON(c, &req, "CancelInvoice") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.CancelInvoice(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to cancel invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// markOverdue godoc
// @Summary Mark overdue invoices
// @Description Flags pending invoices dated before asOf minus the grace period
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.MarkOverdueRequest false "Reference date and grace period"
// @Success 200 {object} dto.MarkOverdueResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to mark overdue invoices"
// @Security BearerAuth
// @Router /invoices/mark-overdue [post]
func (h *invoiceHandler) markOverdue(c *gin.Context) {
	var req dto.MarkOverdueRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req, "MarkOverdue") {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	asOf := time.Now().UTC()
	if req.AsOf != "" {
		parsed, err := dto.ParseDate(req.AsOf)
		if err != nil {
			respondError(c, err, "Failed to mark overdue invoices")
			return
		}
		asOf = parsed
	}
	graceDays := h.defaultGraceDays
	if req.GraceDays != nil {
		graceDays = *req.GraceDays
	}

	n, err := h.invoiceService.MarkOverdueInvoices(c.Request.Context(), asOf, graceDays, actor)
	if err != nil {
		respondError(c, err, "Failed to mark overdue invoices")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Overdue invoices marked", slog.Int("updated", n))
	c.JSON(http.StatusOK, dto.MarkOverdueResponse{Updated: n})
}

// getStudentBalance godoc
// @Summary Get a student balance
// @Description Returns the running balance of an enrollment. Negative means the student owes money.
// @Tags invoices
// @Produce  json
// @Param   id path string true "Enrollment ID"
// @Success 200 {object} domain.StudentAccountBalance
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Enrollment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve student balance"
// @Security BearerAuth
// @Router /enrollments/{id}/balance [get]
func (h *invoiceHandler) getStudentBalance(c *gin.Context) {
	balance, err := h.invoiceService.GetStudentBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve student balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}
