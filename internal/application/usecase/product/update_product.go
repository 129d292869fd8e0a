package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// UpdateProductInput represents the input for product update. Nil fields are left unchanged.
type UpdateProductInput struct {
	Session     entity.Session
	ProductID   uuid.UUID
	Name        *string
	SKU         *string
	Description *string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	Stock       *decimal.Decimal
	Unit        *string
	Active      *bool
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*entity.Product, error) {
	product, err := findProduct(ctx, uc.productRepo, input.Session.CompanyID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if product.Name, err = validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.SKU != nil {
		if product.SKU, err = checkSKU(ctx, uc.productRepo, product.CompanyID, *input.SKU, &product.ID); err != nil {
			return nil, err
		}
	}
	if input.Price != nil {
		product.Price = input.Price.Round(2)
	}
	if input.Cost != nil {
		product.Cost = input.Cost.Round(2)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if err := validateAmounts(product.Price, product.Cost, product.Stock); err != nil {
		return nil, err
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Unit != nil && strings.TrimSpace(*input.Unit) != "" {
		product.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProductUseCase removes a product. Orders keep their item snapshots.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) error {
	product, err := findProduct(ctx, uc.productRepo, session.CompanyID, id)
	if err != nil {
		return err
	}
	if err := uc.productRepo.Delete(ctx, product.CompanyID, product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
