package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/reports"
	"fintrack/internal/services"
)

// ExportHandler serves file exports of the ledger.
type ExportHandler struct {
	transactionService services.TransactionServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(transactionService services.TransactionServicer) *ExportHandler {
	return &ExportHandler{transactionService: transactionService}
}

// Export handles the download of the ledger in the requested format
// @Summary     Export transactions
// @Description Download the ledger as a CSV, JSON, or text-report attachment. Transactions are included by default; the summary block is opt-in.
// @Tags        export
// @Produce     json
// @Param       format       path  string true  "Export format (csv, json, text)"
// @Param       period       query string false "Time window (all, 30days, this_month)"
// @Param       summary      query bool   false "Include the financial summary (default false)"
// @Param       transactions query bool   false "Include the transaction list (default true)"
// @Success     200 {file} file "Export file"
// @Failure     400 {object} ErrorResponse "Invalid format or flags"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/{format} [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := reports.ParseWindow(c.Query("period"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	includeSummary, err := parseBoolQuery(c, "summary", false)
	if err != nil {
		respondWithError(c, err)
		return
	}
	includeTransactions, err := parseBoolQuery(c, "transactions", true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Snapshot is already most-recent first; the export engine keeps the
	// caller's order.
	transactions, err := h.transactionService.GetAll()
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now()
	filtered := reports.Filter(transactions, window, now)
	summary := reports.Summarize(filtered)

	opts := export.Options{
		Format:              format,
		IncludeSummary:      includeSummary,
		IncludeTransactions: includeTransactions,
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, filtered, summary, opts); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(format, now)+`"`)
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}

func parseBoolQuery(c *gin.Context, name string, defaultValue bool) (bool, error) {
	value := c.Query(name)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+name+" flag")
	}
	return parsed, nil
}
