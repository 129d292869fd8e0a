package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	Session    entity.Session
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase deletes a category that no ledger entry references.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := findCategory(ctx, uc.categoryRepo, input.Session.CompanyID, input.CategoryID)
	if err != nil {
		return err
	}

	count, err := uc.categoryRepo.CountEntries(ctx, category.CompanyID, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category entries: %w", err)
	}
	if count > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category is used by %d entries", count),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, category.CompanyID, category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
