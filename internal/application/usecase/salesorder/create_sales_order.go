// Package salesorder contains sales order use cases.
package salesorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

const MaxOrderItems = 200

// OrderItemInput is one requested line. When ProductID is set, an empty
// Description and a nil UnitPrice are taken from the product.
type OrderItemInput struct {
	ProductID   *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   *decimal.Decimal
}

// CreateSalesOrderInput represents the input for sales order creation.
// A zero OrderDate means today.
type CreateSalesOrderInput struct {
	Session    entity.Session
	CustomerID *uuid.UUID
	OrderDate  time.Time
	Discount   decimal.Decimal
	Notes      string
	Items      []OrderItemInput
}

// CreateSalesOrderUseCase creates draft sales orders.
type CreateSalesOrderUseCase struct {
	orderRepo   adapter.SalesOrderRepository
	productRepo adapter.ProductRepository
	personRepo  adapter.PersonRepository
}

// NewCreateSalesOrderUseCase creates a new CreateSalesOrderUseCase instance.
func NewCreateSalesOrderUseCase(
	orderRepo adapter.SalesOrderRepository,
	productRepo adapter.ProductRepository,
	personRepo adapter.PersonRepository,
) *CreateSalesOrderUseCase {
	return &CreateSalesOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		personRepo:  personRepo,
	}
}

// Execute performs the order creation.
func (uc *CreateSalesOrderUseCase) Execute(ctx context.Context, input CreateSalesOrderInput) (*entity.SalesOrder, error) {
	companyID := input.Session.CompanyID

	if len(input.Items) == 0 {
		return nil, domainerror.NewSalesOrderError(
			domainerror.ErrCodeEmptySalesOrder,
			"order must have at least one item",
			domainerror.ErrEmptySalesOrder,
		)
	}
	if len(input.Items) > MaxOrderItems {
		return nil, domainerror.NewSalesOrderError(
			domainerror.ErrCodeInvalidOrderItem,
			fmt.Sprintf("order must not exceed %d items", MaxOrderItems),
			domainerror.ErrInvalidOrderItem,
		)
	}
	if input.Discount.IsNegative() {
		return nil, domainerror.NewSalesOrderError(
			domainerror.ErrCodeInvalidOrderDiscount,
			"discount must not be negative",
			nil,
		)
	}

	if input.CustomerID != nil {
		if _, err := uc.personRepo.FindByID(ctx, companyID, *input.CustomerID); err != nil {
			if errors.Is(err, domainerror.ErrPersonNotFound) {
				return nil, domainerror.NewSalesOrderError(
					domainerror.ErrCodeOrderCustomerNotFound,
					"customer not found",
					domainerror.ErrPersonNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find customer: %w", err)
		}
	}

	products, err := uc.loadProducts(ctx, companyID, input.Items)
	if err != nil {
		return nil, err
	}

	items := make([]entity.SalesOrderItem, 0, len(input.Items))
	for i, in := range input.Items {
		item, err := buildItem(i, in, products)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	orderDate := entity.TruncateDay(time.Now().UTC())
	if !input.OrderDate.IsZero() {
		orderDate = entity.TruncateDay(input.OrderDate)
	}

	order := entity.NewSalesOrder(
		companyID,
		input.CustomerID,
		orderDate,
		input.Discount.Round(2),
		strings.TrimSpace(input.Notes),
		items,
		input.Session.UserID,
	)

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create sales order: %w", err)
	}

	slog.Debug("Sales order created",
		"company_id", companyID,
		"order_id", order.ID,
		"number", order.Number,
		"total", order.Total.StringFixed(2),
	)

	return order, nil
}

// loadProducts fetches every referenced product in one query and fails when
// any of them is missing from the company catalog.
func (uc *CreateSalesOrderUseCase) loadProducts(ctx context.Context, companyID uuid.UUID, items []OrderItemInput) (map[uuid.UUID]*entity.Product, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		if _, ok := seen[*item.ProductID]; ok {
			continue
		}
		seen[*item.ProductID] = struct{}{}
		ids = append(ids, *item.ProductID)
	}

	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	found, err := uc.productRepo.FindByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	for _, p := range found {
		products[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, domainerror.NewSalesOrderError(
				domainerror.ErrCodeOrderProductNotFound,
				fmt.Sprintf("product %s not found", id),
				domainerror.ErrProductNotFound,
			)
		}
	}
	return products, nil
}

func buildItem(index int, in OrderItemInput, products map[uuid.UUID]*entity.Product) (entity.SalesOrderItem, error) {
	item := entity.SalesOrderItem{
		ProductID:   in.ProductID,
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
	}

	if in.ProductID != nil {
		product := products[*in.ProductID]
		if item.Description == "" {
			item.Description = product.Name
		}
		item.UnitPrice = product.Price
	}
	if in.UnitPrice != nil {
		item.UnitPrice = in.UnitPrice.Round(2)
	}

	switch {
	case item.Description == "":
		return item, invalidItem(index, "description is required")
	case !item.Quantity.IsPositive():
		return item, invalidItem(index, "quantity must be positive")
	case item.UnitPrice.IsNegative():
		return item, invalidItem(index, "unit price must not be negative")
	}
	return item, nil
}

func invalidItem(index int, reason string) error {
	return domainerror.NewSalesOrderError(
		domainerror.ErrCodeInvalidOrderItem,
		fmt.Sprintf("item %d: %s", index+1, reason),
		domainerror.ErrInvalidOrderItem,
	)
}

func findOrder(ctx context.Context, repo adapter.SalesOrderRepository, companyID, id uuid.UUID) (*entity.SalesOrder, error) {
	order, err := repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrSalesOrderNotFound) {
			return nil, domainerror.NewSalesOrderError(
				domainerror.ErrCodeSalesOrderNotFound,
				"sales order not found",
				domainerror.ErrSalesOrderNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sales order: %w", err)
	}
	return order, nil
}
