// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CompanyRepository defines the interface for company persistence operations.
type CompanyRepository interface {
	// CreateWithOwner creates the company, binds the owner to it and stores the
	// seed categories in a single database transaction.
	CreateWithOwner(ctx context.Context, company *entity.Company, owner *entity.User, categories []*entity.Category) error

	// FindByID retrieves a company by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// Update updates an existing company in the database.
	Update(ctx context.Context, company *entity.Company) error
}
