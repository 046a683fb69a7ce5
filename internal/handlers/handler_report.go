package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/SscSPs/sales_tax_invoicing/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	rg.GET("/invoices/:invoiceID/report", h.getInvoiceReport)
	rg.POST("/invoices/:invoiceID/export", h.exportInvoiceReport)
}

// getInvoiceReport godoc
// @Summary Render an invoice for display
// @Description Lays the invoice out using the caller's field visibility and currency settings.
// @Tags reports
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Param   config query string false "Config key (invoicePreview or invoiceReport, default invoiceReport)"
// @Success 200 {object} domain.InvoiceReport
// @Failure 400 {object} map[string]string "Unknown config key"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/report [get]
func (h *reportHandler) getInvoiceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("invoice_id", invoiceID))
	report, err := h.reportService.BuildInvoiceReport(c.Request.Context(), userID, invoiceID, c.Query("config"))
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to build invoice report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// exportInvoiceReport godoc
// @Summary Export an invoice report
// @Description Renders the invoice report as a spreadsheet and stores it in the report store.
// @Tags reports
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 201 {object} dto.ExportReportResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 503 {object} map[string]string "Report export is not configured"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/export [post]
func (h *reportHandler) exportInvoiceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("invoice_id", invoiceID))
	resp, err := h.reportService.ExportInvoiceReport(c.Request.Context(), userID, invoiceID)
	if err != nil {
		respondWithServiceError(c, logger, err, "Failed to export invoice report")
		return
	}

	logger.Info("Invoice report exported", slog.String("key", resp.Key), slog.Int("size", resp.Size))
	c.JSON(http.StatusCreated, resp)
}
