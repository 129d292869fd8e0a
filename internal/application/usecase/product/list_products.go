package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	Session    entity.Session
	Search     string
	ActiveOnly bool
}

// ListProductsUseCase lists the catalog of a company.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the listing.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx, input.Session.CompanyID, strings.TrimSpace(input.Search), input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
