// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Session           entity.Session
	Name              string
	Color             string // Optional, defaults to DefaultCategoryColor
	Type              entity.CategoryType
	DREClassification string // Expense categories only
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'revenue' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}
	classification, err := parseClassification(input.Type, input.DREClassification)
	if err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, input.Session.CompanyID, name, input.Type, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, nameExistsError()
	}

	category := entity.NewCategory(input.Session.CompanyID, name, input.Color, input.Type, classification)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			nil,
		)
	}
	if len([]rune(name)) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

func validateColor(color string) error {
	if color != "" && !hexColorRegex.MatchString(color) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}
	return nil
}

// parseClassification returns nil for an empty value. Revenue categories never carry one.
func parseClassification(categoryType entity.CategoryType, raw string) (*entity.DREClassification, error) {
	if raw == "" {
		return nil, nil
	}
	if categoryType != entity.CategoryTypeExpense {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeClassificationOnRevenue,
			"dre classification is only allowed on expense categories",
			domainerror.ErrClassificationOnRevenue,
		)
	}
	classification := entity.DREClassification(raw)
	if !classification.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidDREClassification,
			"dre classification must be 'despesa_operacional', 'custo_fixo' or 'custo_variavel'",
			domainerror.ErrInvalidDREClassification,
		)
	}
	return &classification, nil
}

func nameExistsError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"a category with this name already exists",
		domainerror.ErrCategoryNameExists,
	)
}
