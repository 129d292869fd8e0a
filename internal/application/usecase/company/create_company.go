// Package company contains tenant onboarding and settings use cases.
package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

const (
	MinCompanyNameLength = 2
	MaxCompanyNameLength = 120
)

// seedCategory is a category every new company starts with.
type seedCategory struct {
	name           string
	color          string
	categoryType   entity.CategoryType
	classification entity.DREClassification
}

var defaultCategories = []seedCategory{
	{"Vendas de Produtos", "#16A34A", entity.CategoryTypeRevenue, ""},
	{"Serviços", "#0EA5E9", entity.CategoryTypeRevenue, ""},
	{"Aluguel", "#DC2626", entity.CategoryTypeExpense, entity.DREClassificationFixedCost},
	{"Salários", "#EA580C", entity.CategoryTypeExpense, entity.DREClassificationFixedCost},
	{"Marketing", "#9333EA", entity.CategoryTypeExpense, entity.DREClassificationOperatingExpense},
	{"Matéria-prima", "#CA8A04", entity.CategoryTypeExpense, entity.DREClassificationVariableCost},
}

// DefaultCategories builds the seed categories of a company.
func DefaultCategories(companyID uuid.UUID) []*entity.Category {
	categories := make([]*entity.Category, 0, len(defaultCategories))
	for _, seed := range defaultCategories {
		var classification *entity.DREClassification
		if seed.classification != "" {
			classification = entity.ClassificationPtr(seed.classification)
		}
		categories = append(categories, entity.NewCategory(companyID, seed.name, seed.color, seed.categoryType, classification))
	}
	return categories
}

// CreateCompanyInput represents the input for company creation.
type CreateCompanyInput struct {
	Session   entity.Session
	Name      string
	TradeName string
	Document  string
	Email     string
	Phone     string
}

// CreateCompanyOutput represents the output of company creation.
type CreateCompanyOutput struct {
	Company    *entity.Company
	Categories []*entity.Category
}

// CreateCompanyUseCase onboards the caller's company. The company, the owner
// binding and the seed categories are written in one transaction.
type CreateCompanyUseCase struct {
	companyRepo adapter.CompanyRepository
	userRepo    adapter.UserRepository
	publisher   adapter.EventPublisher
}

// NewCreateCompanyUseCase creates a new CreateCompanyUseCase instance.
func NewCreateCompanyUseCase(
	companyRepo adapter.CompanyRepository,
	userRepo adapter.UserRepository,
	publisher adapter.EventPublisher,
) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// Execute performs the company creation.
func (uc *CreateCompanyUseCase) Execute(ctx context.Context, input CreateCompanyInput) (*CreateCompanyOutput, error) {
	alreadyBound := domainerror.NewCompanyError(
		domainerror.ErrCodeUserAlreadyHasCompany,
		"user already belongs to a company",
		domainerror.ErrUserAlreadyHasCompany,
	)
	if input.Session.HasCompany() {
		return nil, alreadyBound
	}

	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	document, err := normalizeDocument(input.Document)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.FindByID(ctx, input.Session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if owner.HasCompany() {
		return nil, alreadyBound
	}

	company := entity.NewCompany(
		name,
		strings.TrimSpace(input.TradeName),
		document,
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.Phone),
		owner.ID,
	)
	owner.CompanyID = &company.ID
	owner.Role = entity.UserRoleOwner
	owner.UpdatedAt = time.Now().UTC()

	categories := DefaultCategories(company.ID)

	if err := uc.companyRepo.CreateWithOwner(ctx, company, owner, categories); err != nil {
		if errors.Is(err, domainerror.ErrUserAlreadyHasCompany) {
			return nil, alreadyBound
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	slog.Info("Company created", "company_id", company.ID, "owner_id", owner.ID)

	event := adapter.NewEvent(adapter.EventCompanyCreated, company.ID, map[string]any{
		"name":     company.Name,
		"owner_id": owner.ID.String(),
	})
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish company.created", "company_id", company.ID, "error", err)
	}

	return &CreateCompanyOutput{
		Company:    company,
		Categories: categories,
	}, nil
}

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if n := len([]rune(name)); n < MinCompanyNameLength || n > MaxCompanyNameLength {
		return "", domainerror.NewCompanyError(
			domainerror.ErrCodeInvalidCompanyName,
			fmt.Sprintf("company name must have between %d and %d characters", MinCompanyNameLength, MaxCompanyNameLength),
			domainerror.ErrInvalidCompanyName,
		)
	}
	return name, nil
}

func normalizeDocument(raw string) (string, error) {
	document, ok := valueobject.NormalizeDocument(raw)
	if !ok {
		return "", domainerror.NewCompanyError(
			domainerror.ErrCodeInvalidCompanyDocument,
			"document must be a CPF (11 digits) or CNPJ (14 digits)",
			domainerror.ErrInvalidDocument,
		)
	}
	return document, nil
}
