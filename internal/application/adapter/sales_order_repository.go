// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// SalesOrderFilter defines filter options for listing sales orders.
type SalesOrderFilter struct {
	CompanyID  uuid.UUID
	Status     *entity.SalesOrderStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// SalesOrderListResult represents the result of listing sales orders.
type SalesOrderListResult struct {
	Orders     []*entity.SalesOrder
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SalesOrderRepository defines the interface for sales order persistence operations.
// Every lookup is scoped to a company.
type SalesOrderRepository interface {
	// Create stores the order and its items, assigning the next order number of the company.
	Create(ctx context.Context, order *entity.SalesOrder) error

	// FindByID retrieves an order of the company with its items.
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.SalesOrder, error)

	// List retrieves orders matching the filter with pagination.
	List(ctx context.Context, filter SalesOrderFilter, pagination Pagination) (*SalesOrderListResult, error)

	// UpdateStatus persists the status and its timestamps.
	UpdateStatus(ctx context.Context, order *entity.SalesOrder) error

	// Delete removes an order of the company and its items.
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
