package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (revenue or expense).
type CategoryType string

const (
	CategoryTypeRevenue CategoryType = "revenue"
	CategoryTypeExpense CategoryType = "expense"
)

// IsValid reports whether the category type is known.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeRevenue || t == CategoryTypeExpense
}

// DREClassification places an expense category on a line of the income statement.
type DREClassification string

const (
	DREClassificationOperatingExpense DREClassification = "despesa_operacional"
	DREClassificationFixedCost        DREClassification = "custo_fixo"
	DREClassificationVariableCost     DREClassification = "custo_variavel"
)

// IsValid reports whether the classification is known.
func (c DREClassification) IsValid() bool {
	switch c {
	case DREClassificationOperatingExpense, DREClassificationFixedCost, DREClassificationVariableCost:
		return true
	}
	return false
}

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// Category groups ledger entries of one company.
// DREClassification is only set on expense categories.
type Category struct {
	ID                uuid.UUID
	CompanyID         uuid.UUID
	Name              string
	Color             string
	Type              CategoryType
	DREClassification *DREClassification
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(companyID uuid.UUID, name, color string, categoryType CategoryType, classification *DREClassification) *Category {
	now := time.Now().UTC()
	if color == "" {
		color = DefaultCategoryColor
	}
	if categoryType != CategoryTypeExpense {
		classification = nil
	}

	return &Category{
		ID:                uuid.New(),
		CompanyID:         companyID,
		Name:              name,
		Color:             color,
		Type:              categoryType,
		DREClassification: classification,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Classification returns the DRE classification, or the empty value when unset.
func (c *Category) Classification() DREClassification {
	if c == nil || c.DREClassification == nil {
		return ""
	}
	return *c.DREClassification
}

// ClassificationPtr is a helper for building optional classifications.
func ClassificationPtr(c DREClassification) *DREClassification {
	return &c
}
