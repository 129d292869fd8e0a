// Package person contains use cases for customers, suppliers and staff.
package person

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// MaxPersonNameLength is the maximum allowed length for person names.
const MaxPersonNameLength = 120

// CreatePersonInput represents the input for person creation.
// Roles defaults to customer when empty.
type CreatePersonInput struct {
	Session  entity.Session
	Name     string
	Document string
	Email    string
	Phone    string
	Roles    []entity.PersonRole
	Notes    string
}

// CreatePersonUseCase handles person creation logic.
type CreatePersonUseCase struct {
	personRepo adapter.PersonRepository
}

// NewCreatePersonUseCase creates a new CreatePersonUseCase instance.
func NewCreatePersonUseCase(personRepo adapter.PersonRepository) *CreatePersonUseCase {
	return &CreatePersonUseCase{
		personRepo: personRepo,
	}
}

// Execute performs the person creation.
func (uc *CreatePersonUseCase) Execute(ctx context.Context, input CreatePersonInput) (*entity.Person, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	document, err := validateDocument(input.Document)
	if err != nil {
		return nil, err
	}
	email, err := validateEmail(input.Email)
	if err != nil {
		return nil, err
	}
	roles, err := validateRoles(input.Roles)
	if err != nil {
		return nil, err
	}

	person := entity.NewPerson(
		input.Session.CompanyID,
		name,
		document,
		email,
		strings.TrimSpace(input.Phone),
		roles,
		strings.TrimSpace(input.Notes),
	)
	if err := uc.personRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return person, nil
}

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || len([]rune(name)) > MaxPersonNameLength {
		return "", domainerror.NewPersonError(
			domainerror.ErrCodeInvalidPersonName,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxPersonNameLength),
			domainerror.ErrInvalidPersonName,
		)
	}
	return name, nil
}

func validateDocument(raw string) (string, error) {
	document, ok := valueobject.NormalizeDocument(raw)
	if !ok {
		return "", domainerror.NewPersonError(
			domainerror.ErrCodeInvalidPersonDoc,
			"document must be a CPF (11 digits) or CNPJ (14 digits)",
			nil,
		)
	}
	return document, nil
}

func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domainerror.NewPersonError(
			domainerror.ErrCodeInvalidPersonEmail,
			"invalid email format",
			nil,
		)
	}
	return strings.ToLower(email), nil
}

func validateRoles(roles []entity.PersonRole) ([]entity.PersonRole, error) {
	if len(roles) == 0 {
		return []entity.PersonRole{entity.PersonRoleCustomer}, nil
	}
	seen := make(map[entity.PersonRole]bool, len(roles))
	out := make([]entity.PersonRole, 0, len(roles))
	for _, role := range roles {
		if !role.IsValid() {
			return nil, domainerror.NewPersonError(
				domainerror.ErrCodeInvalidPersonRole,
				"role must be 'customer', 'supplier' or 'staff'",
				domainerror.ErrInvalidPersonRole,
			)
		}
		if !seen[role] {
			seen[role] = true
			out = append(out, role)
		}
	}
	return out, nil
}

func findPerson(ctx context.Context, repo adapter.PersonRepository, companyID, id uuid.UUID) (*entity.Person, error) {
	person, err := repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrPersonNotFound) {
			return nil, domainerror.NewPersonError(
				domainerror.ErrCodePersonNotFound,
				"person not found",
				domainerror.ErrPersonNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return person, nil
}
