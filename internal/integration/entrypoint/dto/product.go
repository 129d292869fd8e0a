package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       decimal.Decimal `json:"stock"`
	Unit        string          `json:"unit"`
}

// UpdateProductRequest represents the request body for product update.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Stock       *decimal.Decimal `json:"stock,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// ProductResponse represents a catalog item.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Cost        string    `json:"cost"`
	Stock       string    `json:"stock"`
	Unit        string    `json:"unit"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse wraps a list of products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       FormatAmount(p.Price),
		Cost:        FormatAmount(p.Cost),
		Stock:       p.Stock.String(),
		Unit:        p.Unit,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a list of products.
func ToProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
