package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged; an empty DREClassification clears it. The type of a
// category cannot change.
type UpdateCategoryInput struct {
	Session           entity.Session
	CategoryID        uuid.UUID
	Name              *string
	Color             *string
	DREClassification *string
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*entity.Category, error) {
	category, err := findCategory(ctx, uc.categoryRepo, input.Session.CompanyID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		if name != category.Name {
			exists, err := uc.categoryRepo.ExistsByName(ctx, category.CompanyID, name, category.Type, &category.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check category name existence: %w", err)
			}
			if exists {
				return nil, nameExistsError()
			}
		}
		category.Name = name
	}

	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return nil, err
		}
		if *input.Color != "" {
			category.Color = *input.Color
		}
	}

	if input.DREClassification != nil {
		classification, err := parseClassification(category.Type, *input.DREClassification)
		if err != nil {
			return nil, err
		}
		category.DREClassification = classification
	}

	category.UpdatedAt = time.Now().UTC()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func findCategory(ctx context.Context, repo adapter.CategoryRepository, companyID, id uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}
