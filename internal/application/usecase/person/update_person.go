package person

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// UpdatePersonInput represents the input for person update. Nil fields are left unchanged.
type UpdatePersonInput struct {
	Session  entity.Session
	PersonID uuid.UUID
	Name     *string
	Document *string
	Email    *string
	Phone    *string
	Roles    []entity.PersonRole
	Notes    *string
	Active   *bool
}

// UpdatePersonUseCase handles person update logic.
type UpdatePersonUseCase struct {
	personRepo adapter.PersonRepository
}

// NewUpdatePersonUseCase creates a new UpdatePersonUseCase instance.
func NewUpdatePersonUseCase(personRepo adapter.PersonRepository) *UpdatePersonUseCase {
	return &UpdatePersonUseCase{
		personRepo: personRepo,
	}
}

// Execute performs the person update.
func (uc *UpdatePersonUseCase) Execute(ctx context.Context, input UpdatePersonInput) (*entity.Person, error) {
	person, err := findPerson(ctx, uc.personRepo, input.Session.CompanyID, input.PersonID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if person.Name, err = validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Document != nil {
		if person.Document, err = validateDocument(*input.Document); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if person.Email, err = validateEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Roles != nil {
		if person.Roles, err = validateRoles(input.Roles); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		person.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Notes != nil {
		person.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.Active != nil {
		person.Active = *input.Active
	}
	person.UpdatedAt = time.Now().UTC()

	if err := uc.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	return person, nil
}
