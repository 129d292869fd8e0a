// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// PersonFilter defines filter options for listing people.
type PersonFilter struct {
	CompanyID  uuid.UUID
	Role       *entity.PersonRole
	Search     string
	ActiveOnly bool
}

// PersonRepository defines the interface for person persistence operations.
// Every lookup is scoped to a company.
type PersonRepository interface {
	// Create creates a new person in the database.
	Create(ctx context.Context, person *entity.Person) error

	// FindByID retrieves a person of the company by ID.
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Person, error)

	// List retrieves people matching the filter.
	List(ctx context.Context, filter PersonFilter) ([]*entity.Person, error)

	// Update updates an existing person.
	Update(ctx context.Context, person *entity.Person) error

	// Delete removes a person of the company.
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
