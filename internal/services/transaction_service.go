package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/validation"
)

// sortableColumns is the allow-list for GetAllSorted. "date" is the public
// name of the occurred_at column. Unknown columns fall back to id.
var sortableColumns = map[string]string{
	"id":          "id",
	"date":        "occurred_at",
	"type":        "type",
	"category":    "category",
	"amount":      "amount",
	"description": "description",
}

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// Create validates and stores a new transaction. The id and created_at
// fields are assigned by the store and immutable afterward.
func (s *transactionService) Create(txType models.TransactionType, category string, amount float64, occurredAt, description string) (*models.Transaction, error) {
	if err := validateFields(txType, category, amount, occurredAt); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: description,
		OccurredAt:  occurredAt,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return transaction, nil
}

// GetAll retrieves every transaction, most recent first.
func (s *transactionService) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("occurred_at DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return transactions, nil
}

// GetAllSorted retrieves every transaction ordered by the given column.
func (s *transactionService) GetAllSorted(column string, ascending bool) ([]models.Transaction, error) {
	dbColumn, ok := sortableColumns[column]
	if !ok {
		dbColumn = "id"
	}
	direction := "ASC"
	if !ascending {
		direction = "DESC"
	}

	var transactions []models.Transaction
	if err := s.db.Order(dbColumn + " " + direction).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return transactions, nil
}

// GetByID retrieves a single transaction.
func (s *transactionService) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return &transaction, nil
}

// Update replaces the mutable fields of an existing transaction.
func (s *transactionService) Update(id uint, txType models.TransactionType, category string, amount float64, occurredAt, description string) error {
	if err := validateFields(txType, category, amount, occurredAt); err != nil {
		return err
	}

	if _, err := s.GetByID(id); err != nil {
		return err
	}

	// id and created_at stay untouched: only the listed columns change.
	updates := map[string]interface{}{
		"type":        txType,
		"category":    category,
		"amount":      amount,
		"occurred_at": occurredAt,
		"description": description,
	}
	if err := s.db.Model(&models.Transaction{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStore, err)
	}
	return nil
}

// Delete permanently removes a transaction. There is no soft delete.
func (s *transactionService) Delete(id uint) error {
	result := s.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStore, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// Summary recomputes the financial summary from the full transaction set.
func (s *transactionService) Summary() (reports.Summary, error) {
	transactions, err := s.GetAll()
	if err != nil {
		return reports.Summary{}, err
	}
	return reports.Summarize(transactions), nil
}

func validateFields(txType models.TransactionType, category string, amount float64, occurredAt string) error {
	if !txType.Valid() {
		return apperrors.ErrInvalidType
	}
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "category is required")
	}
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if _, err := validation.StorageDateTime(occurredAt); err != nil {
		return err
	}
	return nil
}
