package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validation"
)

// CategoryHandler serves the category list.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories handles the retrieval of category names
// @Summary     List categories
// @Description Get the category names, optionally filtered by transaction type
// @Tags        categories
// @Produce     json
// @Param       type query string false "Transaction type filter (income or expense)"
// @Success     200 {array} string "Category names"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var typeFilter *models.TransactionType
	if value := c.Query("type"); value != "" {
		t, err := validation.TransactionType(value)
		if err != nil {
			respondWithError(c, err)
			return
		}
		typeFilter = &t
	}

	names, err := h.categoryService.Names(typeFilter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": names})
}
