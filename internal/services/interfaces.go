package services

import (
	"fintrack/internal/models"
	"fintrack/internal/reports"
)

// TransactionServicer defines the contract for the transaction store.
// Reads return full snapshots: aggregation and export recompute from
// scratch on every call.
type TransactionServicer interface {
	Create(txType models.TransactionType, category string, amount float64, occurredAt, description string) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	GetAllSorted(column string, ascending bool) ([]models.Transaction, error)
	GetByID(id uint) (*models.Transaction, error)
	Update(id uint, txType models.TransactionType, category string, amount float64, occurredAt, description string) error
	Delete(id uint) error
	Summary() (reports.Summary, error)
}

// CategoryServicer defines the contract for the category list.
type CategoryServicer interface {
	Names(typeFilter *models.TransactionType) ([]string, error)
}
