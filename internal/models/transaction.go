package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two supported values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents one recorded income or expense movement.
//
// OccurredAt is stored as text in the storage form "2006-01-02 15:04:05"
// rather than as a native timestamp. Legacy rows may hold malformed values;
// date-keyed aggregations skip those, unfiltered views keep them.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"not null" json:"category"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `json:"description"`
	OccurredAt  string          `gorm:"not null" json:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
}
