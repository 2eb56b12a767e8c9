package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction stores a transaction of the given type, category,
// and amount, occurring now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, category string, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, txType, category, amount, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateTestTransactionOn stores a transaction with an explicit storage-form
// occurrence date. Malformed dates are allowed on purpose: fail-open
// aggregation paths are tested with them.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, txType models.TransactionType, category string, amount float64, occurredAt string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("test transaction %d", nextID()),
		OccurredAt:  occurredAt,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestCategory stores a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.TransactionType) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, fmt.Sprintf("Test Category %d", nextID()), categoryType)
}

// CreateTestCategoryNamed stores a category with the given name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, name string, categoryType models.TransactionType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: name,
		Type: categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}
