package salesorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// ListSalesOrdersInput represents the input for listing sales orders.
type ListSalesOrdersInput struct {
	Session    entity.Session
	Status     *entity.SalesOrderStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// ListSalesOrdersUseCase lists the orders of a company.
type ListSalesOrdersUseCase struct {
	orderRepo adapter.SalesOrderRepository
}

// NewListSalesOrdersUseCase creates a new ListSalesOrdersUseCase instance.
func NewListSalesOrdersUseCase(orderRepo adapter.SalesOrderRepository) *ListSalesOrdersUseCase {
	return &ListSalesOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the listing.
func (uc *ListSalesOrdersUseCase) Execute(ctx context.Context, input ListSalesOrdersInput) (*adapter.SalesOrderListResult, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerror.NewSalesOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"invalid order status",
			nil,
		)
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewSalesOrderError(
			domainerror.ErrCodeInvalidOrderDate,
			"end date must not be before start date",
			nil,
		)
	}

	filter := adapter.SalesOrderFilter{
		CompanyID:  input.Session.CompanyID,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	pagination := adapter.Pagination{Page: input.Page, Limit: input.Limit}.Normalize()

	result, err := uc.orderRepo.List(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	return result, nil
}

// GetSalesOrderUseCase returns one order with its items.
type GetSalesOrderUseCase struct {
	orderRepo adapter.SalesOrderRepository
}

// NewGetSalesOrderUseCase creates a new GetSalesOrderUseCase instance.
func NewGetSalesOrderUseCase(orderRepo adapter.SalesOrderRepository) *GetSalesOrderUseCase {
	return &GetSalesOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the lookup.
func (uc *GetSalesOrderUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) (*entity.SalesOrder, error) {
	return findOrder(ctx, uc.orderRepo, session.CompanyID, id)
}
