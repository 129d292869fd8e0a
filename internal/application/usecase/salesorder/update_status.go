package salesorder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// UpdateStatusInput represents the input for a status change.
type UpdateStatusInput struct {
	Session entity.Session
	OrderID uuid.UUID
	Status  entity.SalesOrderStatus
}

// UpdateStatusUseCase moves an order through draft, confirmed, delivered and cancelled.
type UpdateStatusUseCase struct {
	orderRepo adapter.SalesOrderRepository
	now       func() time.Time
}

// NewUpdateStatusUseCase creates a new UpdateStatusUseCase instance.
func NewUpdateStatusUseCase(orderRepo adapter.SalesOrderRepository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// Execute performs the transition.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) (*entity.SalesOrder, error) {
	if !input.Status.IsValid() {
		return nil, domainerror.NewSalesOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"invalid order status",
			nil,
		)
	}

	order, err := findOrder(ctx, uc.orderRepo, input.Session.CompanyID, input.OrderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if !order.TransitionTo(input.Status, uc.now()) {
		return nil, domainerror.NewSalesOrderError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot change status from %s to %s", previous, input.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update sales order status: %w", err)
	}

	slog.Debug("Sales order status changed",
		"order_id", order.ID,
		"from", previous,
		"to", order.Status,
	)

	return order, nil
}

// DeleteSalesOrderUseCase removes draft orders.
type DeleteSalesOrderUseCase struct {
	orderRepo adapter.SalesOrderRepository
}

// NewDeleteSalesOrderUseCase creates a new DeleteSalesOrderUseCase instance.
func NewDeleteSalesOrderUseCase(orderRepo adapter.SalesOrderRepository) *DeleteSalesOrderUseCase {
	return &DeleteSalesOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteSalesOrderUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) error {
	order, err := findOrder(ctx, uc.orderRepo, session.CompanyID, id)
	if err != nil {
		return err
	}
	if order.Status != entity.SalesOrderStatusDraft {
		return domainerror.NewSalesOrderError(
			domainerror.ErrCodeSalesOrderNotDraft,
			"only draft orders can be deleted",
			domainerror.ErrSalesOrderNotDraft,
		)
	}
	if err := uc.orderRepo.Delete(ctx, order.CompanyID, order.ID); err != nil {
		return fmt.Errorf("failed to delete sales order: %w", err)
	}
	return nil
}
