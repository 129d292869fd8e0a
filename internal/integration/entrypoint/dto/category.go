package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name              string `json:"name" binding:"required"`
	Color             string `json:"color"`
	Type              string `json:"type" binding:"required"`
	DREClassification string `json:"dre_classification"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name              *string `json:"name,omitempty"`
	Color             *string `json:"color,omitempty"`
	DREClassification *string `json:"dre_classification,omitempty"`
}

// SuggestCategoryRequest represents the request body for an AI category suggestion.
type SuggestCategoryRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Color             string    `json:"color"`
	Type              string    `json:"type"`
	DREClassification *string   `json:"dre_classification"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CategoryListResponse wraps a list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategorySuggestionResponse represents the AI answer.
type CategorySuggestionResponse struct {
	CategoryID        string  `json:"category_id,omitempty"`
	NewCategoryName   string  `json:"new_category_name,omitempty"`
	DREClassification string  `json:"dre_classification,omitempty"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Color:     c.Color,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.DREClassification != nil {
		s := string(*c.DREClassification)
		resp.DREClassification = &s
	}
	return resp
}

// ToCategoryResponses converts a list of categories.
func ToCategoryResponses(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}

// ToCategorySuggestionResponse converts the AI answer.
func ToCategorySuggestionResponse(s *adapter.CategorySuggestion) CategorySuggestionResponse {
	return CategorySuggestionResponse{
		CategoryID:        s.CategoryID,
		NewCategoryName:   s.NewCategoryName,
		DREClassification: s.DREClassification,
		Confidence:        s.Confidence,
		Reasoning:         s.Reasoning,
	}
}
