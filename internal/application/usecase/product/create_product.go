// Package product contains product catalog use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

const (
	MaxProductNameLength = 120
	MaxSKULength         = 40
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Session     entity.Session
	Name        string
	SKU         string
	Description string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Stock       decimal.Decimal
	Unit        string
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateAmounts(input.Price, input.Cost, input.Stock); err != nil {
		return nil, err
	}
	sku, err := checkSKU(ctx, uc.productRepo, input.Session.CompanyID, input.SKU, nil)
	if err != nil {
		return nil, err
	}

	product := entity.NewProduct(
		input.Session.CompanyID,
		name,
		sku,
		strings.TrimSpace(input.Description),
		input.Price.Round(2),
		input.Cost.Round(2),
		input.Stock,
		strings.TrimSpace(input.Unit),
	)
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// checkSKU normalizes the SKU and makes sure no other product of the company uses it.
func checkSKU(ctx context.Context, repo adapter.ProductRepository, companyID uuid.UUID, raw string, excludeID *uuid.UUID) (string, error) {
	sku := strings.ToUpper(strings.TrimSpace(raw))
	if sku == "" {
		return "", nil
	}
	if len(sku) > MaxSKULength {
		return "", domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductSKU,
			fmt.Sprintf("sku must not exceed %d characters", MaxSKULength),
			nil,
		)
	}
	exists, err := repo.ExistsBySKU(ctx, companyID, sku, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check sku: %w", err)
	}
	if exists {
		return "", domainerror.NewProductError(
			domainerror.ErrCodeProductSKUExists,
			"another product already uses this sku",
			domainerror.ErrProductSKUExists,
		)
	}
	return sku, nil
}

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || len([]rune(name)) > MaxProductNameLength {
		return "", domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductName,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxProductNameLength),
			domainerror.ErrInvalidProductName,
		)
	}
	return name, nil
}

func validateAmounts(price, cost, stock decimal.Decimal) error {
	if price.IsNegative() || cost.IsNegative() {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"price and cost must not be negative",
			domainerror.ErrInvalidProductPrice,
		)
	}
	if stock.IsNegative() {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductStock,
			"stock must not be negative",
			nil,
		)
	}
	return nil
}

func findProduct(ctx context.Context, repo adapter.ProductRepository, companyID, id uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}
