package services

import (
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService reads the category list seeded by the migrations.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// Names returns category names, optionally filtered by transaction type.
func (s *categoryService) Names(typeFilter *models.TransactionType) ([]string, error) {
	query := s.db.Model(&models.Category{}).Order("id")
	if typeFilter != nil {
		query = query.Where("type = ?", *typeFilter)
	}

	var names []string
	if err := query.Pluck("name", &names).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return names, nil
}
