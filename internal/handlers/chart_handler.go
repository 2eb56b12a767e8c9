package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/reports"
	"fintrack/internal/services"
)

// ChartHandler serves the chart-aggregation endpoint.
type ChartHandler struct {
	transactionService services.TransactionServicer
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(transactionService services.TransactionServicer) *ChartHandler {
	return &ChartHandler{transactionService: transactionService}
}

// GetChartData handles the retrieval of the pie, bar, and line datasets
// @Summary     Chart datasets
// @Description Pie (income vs expense), bar (expenses by category), and line (monthly evolution) datasets over an optional time window
// @Tags        reports
// @Produce     json
// @Param       period query string false "Time window (all, 30days, this_month)"
// @Success     200 {object} reports.ChartData "Chart datasets"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charts/data [get]
func (h *ChartHandler) GetChartData(c *gin.Context) {
	window, err := reports.ParseWindow(c.Query("period"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetAll()
	if err != nil {
		respondWithError(c, err)
		return
	}

	filtered := reports.Filter(transactions, window, time.Now())
	c.JSON(http.StatusOK, reports.Charts(filtered))
}
