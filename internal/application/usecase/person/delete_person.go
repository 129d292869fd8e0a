package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// DeletePersonUseCase removes a person. Entries that referenced it keep their history.
type DeletePersonUseCase struct {
	personRepo adapter.PersonRepository
}

// NewDeletePersonUseCase creates a new DeletePersonUseCase instance.
func NewDeletePersonUseCase(personRepo adapter.PersonRepository) *DeletePersonUseCase {
	return &DeletePersonUseCase{
		personRepo: personRepo,
	}
}

// Execute performs the deletion.
func (uc *DeletePersonUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) error {
	person, err := findPerson(ctx, uc.personRepo, session.CompanyID, id)
	if err != nil {
		return err
	}
	if err := uc.personRepo.Delete(ctx, person.CompanyID, person.ID); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}
