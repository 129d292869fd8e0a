// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Every lookup is scoped to a company.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category of the company by ID.
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Category, error)

	// FindByCompany retrieves all categories of the company, optionally filtered by type.
	FindByCompany(ctx context.Context, companyID uuid.UUID, categoryType *entity.CategoryType) ([]*entity.Category, error)

	// ExistsByName checks if a category with the given name and type exists in the company.
	ExistsByName(ctx context.Context, companyID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error)

	// CountEntries returns how many ledger entries reference the category.
	CountEntries(ctx context.Context, companyID, id uuid.UUID) (int64, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category of the company.
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
