package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validation"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// The amount arrives as text so both "." and "," decimal separators are accepted.
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,transaction_type"`
	Category    string `json:"category" binding:"required,max=100"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=500"`
	OccurredAt  string `json:"occurred_at"`
}

// ListTransactions handles the retrieval of all transactions
// @Summary     List transactions
// @Description Get all transactions, most recent first. An optional sort column (id, date, type, category, amount, description) and order (asc, desc) can be given; an unknown column falls back to id.
// @Tags        transactions
// @Produce     json
// @Param       sort  query string false "Sort column"
// @Param       order query string false "Sort order (asc or desc)"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var (
		transactions []models.Transaction
		err          error
	)

	if column := c.Query("sort"); column != "" {
		ascending := c.DefaultQuery("order", "asc") != "desc"
		transactions, err = h.transactionService.GetAllSorted(column, ascending)
	} else {
		transactions, err = h.transactionService.GetAll()
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new income or expense transaction. The amount is text and accepts "." or "," as the decimal separator. The occurrence date accepts "YYYY-MM-DD HH:MM:SS" or "DD/MM/YYYY HH:MM" and defaults to now.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := validation.Amount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	occurredAt, err := parseOccurredAt(req.OccurredAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.Create(
		models.TransactionType(req.Type),
		req.Category,
		amount,
		occurredAt,
		req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
// All mutable fields are required; id and created_at never change.
type UpdateTransactionRequest struct {
	Type        string `json:"type" binding:"required,transaction_type"`
	Category    string `json:"category" binding:"required,max=100"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=500"`
	OccurredAt  string `json:"occurred_at" binding:"required"`
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Replace the mutable fields of an existing transaction.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} MessageResponse "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := validation.Amount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	occurredAt, err := parseOccurredAt(req.OccurredAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.Update(
		id,
		models.TransactionType(req.Type),
		req.Category,
		amount,
		occurredAt,
		req.Description,
	); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction updated successfully"})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Permanently delete a transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// GetSummary handles the retrieval of the financial summary
// @Summary     Financial summary
// @Description Totals for income, expenses, balance, and transaction count, recomputed from the full transaction set
// @Tags        reports
// @Produce     json
// @Success     200 {object} reports.Summary "Summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	summary, err := h.transactionService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
