package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item a company sells.
type Product struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Name        string
	SKU         string
	Description string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Stock       decimal.Decimal
	Unit        string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a new active Product.
func NewProduct(companyID uuid.UUID, name, sku, description string, price, cost, stock decimal.Decimal, unit string) *Product {
	now := time.Now().UTC()
	if unit == "" {
		unit = "un"
	}
	return &Product{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Name:        name,
		SKU:         sku,
		Description: description,
		Price:       price,
		Cost:        cost,
		Stock:       stock,
		Unit:        unit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Margin returns price minus cost.
func (p *Product) Margin() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}
