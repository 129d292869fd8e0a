package category

import (
	"context"
	"fmt"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Session entity.Session
	Type    *entity.CategoryType
}

// ListCategoriesUseCase handles listing the categories of a company.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the categories of the session's company.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) ([]*entity.Category, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'revenue' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	categories, err := uc.categoryRepo.FindByCompany(ctx, input.Session.CompanyID, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
