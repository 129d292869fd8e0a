// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
// Every lookup is scoped to a company.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product of the company by ID.
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products of the company with the given IDs.
	FindByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error)

	// List retrieves the products of the company, optionally only active ones.
	List(ctx context.Context, companyID uuid.UUID, search string, activeOnly bool) ([]*entity.Product, error)

	// ExistsBySKU checks whether another product of the company uses the SKU.
	ExistsBySKU(ctx context.Context, companyID uuid.UUID, sku string, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product of the company.
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
