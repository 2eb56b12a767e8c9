package models

// Category represents a named transaction category. Categories are a
// convention for grouping, not a foreign key: transactions carry the
// category name as free-form text.
type Category struct {
	ID   uint            `gorm:"primaryKey" json:"id"`
	Name string          `gorm:"uniqueIndex;not null" json:"name"`
	Type TransactionType `gorm:"not null" json:"type"`
}
