package testutil_test

import (
	"testing"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"transactions", "categories"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	tx := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Salary", 1000)
	if tx.ID == 0 {
		t.Fatal("transaction should have a non-zero ID")
	}
	if tx.Amount != 1000 || tx.Category != "Salary" {
		t.Errorf("unexpected transaction: %+v", tx)
	}

	dated := testutil.CreateTestTransactionOn(t, db, models.TransactionTypeExpense, "Food", 25, "2024-01-15 12:00:00")
	if dated.OccurredAt != "2024-01-15 12:00:00" {
		t.Errorf("expected explicit occurrence date, got %q", dated.OccurredAt)
	}

	category := testutil.CreateTestCategory(t, db, models.TransactionTypeExpense)
	if category.Type != models.TransactionTypeExpense {
		t.Errorf("expected expense category, got %s", category.Type)
	}

	named := testutil.CreateTestCategoryNamed(t, db, "Groceries", models.TransactionTypeExpense)
	if named.Name != "Groceries" {
		t.Errorf("expected Groceries, got %q", named.Name)
	}
}

func TestSchemaVisibleAcrossPoolConnections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, "Salary", 1000)

	// Cycle the idle pool so the next query runs on a brand-new
	// connection. The in-memory store must be shared between them.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetMaxIdleConns(2)

	var count int64
	if err := db.Table("transactions").Count(&count).Error; err != nil {
		t.Fatalf("count on a fresh pool connection failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 transaction, got %d", count)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrTransactionNotFound, "custom message")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
