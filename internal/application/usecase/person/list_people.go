package person

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// ListPeopleInput represents the input for listing people.
type ListPeopleInput struct {
	Session    entity.Session
	Role       *entity.PersonRole
	Search     string
	ActiveOnly bool
}

// ListPeopleUseCase lists the people of a company.
type ListPeopleUseCase struct {
	personRepo adapter.PersonRepository
}

// NewListPeopleUseCase creates a new ListPeopleUseCase instance.
func NewListPeopleUseCase(personRepo adapter.PersonRepository) *ListPeopleUseCase {
	return &ListPeopleUseCase{
		personRepo: personRepo,
	}
}

// Execute performs the listing.
func (uc *ListPeopleUseCase) Execute(ctx context.Context, input ListPeopleInput) ([]*entity.Person, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerror.NewPersonError(
			domainerror.ErrCodeInvalidPersonRole,
			"role must be 'customer', 'supplier' or 'staff'",
			domainerror.ErrInvalidPersonRole,
		)
	}

	people, err := uc.personRepo.List(ctx, adapter.PersonFilter{
		CompanyID:  input.Session.CompanyID,
		Role:       input.Role,
		Search:     strings.TrimSpace(input.Search),
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

// GetPersonUseCase returns one person of the company.
type GetPersonUseCase struct {
	personRepo adapter.PersonRepository
}

// NewGetPersonUseCase creates a new GetPersonUseCase instance.
func NewGetPersonUseCase(personRepo adapter.PersonRepository) *GetPersonUseCase {
	return &GetPersonUseCase{
		personRepo: personRepo,
	}
}

// Execute loads the person.
func (uc *GetPersonUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) (*entity.Person, error) {
	return findPerson(ctx, uc.personRepo, session.CompanyID, id)
}
