package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// OrderItemRequest represents one line of a new sales order.
// A missing unit_price takes the current product price.
type OrderItemRequest struct {
	ProductID   string           `json:"product_id"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateSalesOrderRequest represents the request body for sales order creation.
type CreateSalesOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	OrderDate  string             `json:"order_date"`
	Discount   decimal.Decimal    `json:"discount"`
	Notes      string             `json:"notes"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// UpdateSalesOrderStatusRequest represents the request body for a status change.
type UpdateSalesOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse represents one line of a sales order.
type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   *string `json:"product_id"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	Subtotal    string  `json:"subtotal"`
}

// SalesOrderResponse represents a sales order in API responses.
type SalesOrderResponse struct {
	ID          string              `json:"id"`
	Number      int                 `json:"number"`
	CustomerID  *string             `json:"customer_id"`
	OrderDate   string              `json:"order_date"`
	Status      string              `json:"status"`
	Discount    string              `json:"discount"`
	Total       string              `json:"total"`
	Notes       string              `json:"notes"`
	Items       []OrderItemResponse `json:"items"`
	ConfirmedAt *time.Time          `json:"confirmed_at"`
	DeliveredAt *time.Time          `json:"delivered_at"`
	CancelledAt *time.Time          `json:"cancelled_at"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// SalesOrderListResponse represents one page of sales orders.
type SalesOrderListResponse struct {
	Orders     []SalesOrderResponse `json:"orders"`
	Pagination PaginationResponse   `json:"pagination"`
}

// ToSalesOrderResponse converts a domain SalesOrder entity to a SalesOrderResponse DTO.
func ToSalesOrderResponse(o *entity.SalesOrder) SalesOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID.String(),
			ProductID:   uuidString(item.ProductID),
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   FormatAmount(item.UnitPrice),
			Subtotal:    FormatAmount(item.Subtotal()),
		})
	}

	return SalesOrderResponse{
		ID:          o.ID.String(),
		Number:      o.Number,
		CustomerID:  uuidString(o.CustomerID),
		OrderDate:   FormatDate(o.OrderDate),
		Status:      string(o.Status),
		Discount:    FormatAmount(o.Discount),
		Total:       FormatAmount(o.Total),
		Notes:       o.Notes,
		Items:       items,
		ConfirmedAt: o.ConfirmedAt,
		DeliveredAt: o.DeliveredAt,
		CancelledAt: o.CancelledAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToSalesOrderListResponse converts a repository page.
func ToSalesOrderListResponse(result *adapter.SalesOrderListResult) SalesOrderListResponse {
	orders := make([]SalesOrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, ToSalesOrderResponse(o))
	}
	return SalesOrderListResponse{
		Orders: orders,
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}
