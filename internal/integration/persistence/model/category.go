package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(50);not null"`
	Color             string    `gorm:"type:varchar(7);default:'#6366F1'"`
	Type              string    `gorm:"type:varchar(10);not null"`
	DREClassification *string   `gorm:"column:dre_classification;type:varchar(30)"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	var classification *entity.DREClassification
	if m.DREClassification != nil && *m.DREClassification != "" {
		classification = entity.ClassificationPtr(entity.DREClassification(*m.DREClassification))
	}

	return &entity.Category{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		Name:              m.Name,
		Color:             m.Color,
		Type:              entity.CategoryType(m.Type),
		DREClassification: classification,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	var classification *string
	if category.DREClassification != nil {
		value := string(*category.DREClassification)
		classification = &value
	}

	return &CategoryModel{
		ID:                category.ID,
		CompanyID:         category.CompanyID,
		Name:              category.Name,
		Color:             category.Color,
		Type:              string(category.Type),
		DREClassification: classification,
		CreatedAt:         category.CreatedAt,
		UpdatedAt:         category.UpdatedAt,
	}
}
