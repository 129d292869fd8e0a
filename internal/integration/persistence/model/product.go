package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(150);not null"`
	SKU         string          `gorm:"column:sku;type:varchar(50);index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Stock       decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	Unit        string          `gorm:"type:varchar(10);not null;default:'un'"`
	Active      bool            `gorm:"default:true"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		SKU:         m.SKU,
		Description: m.Description,
		Price:       m.Price,
		Cost:        m.Cost,
		Stock:       m.Stock,
		Unit:        m.Unit,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          product.ID,
		CompanyID:   product.CompanyID,
		Name:        product.Name,
		SKU:         product.SKU,
		Description: product.Description,
		Price:       product.Price,
		Cost:        product.Cost,
		Stock:       product.Stock,
		Unit:        product.Unit,
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
