package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesOrderStatus is the lifecycle status of a sales order.
type SalesOrderStatus string

const (
	SalesOrderStatusDraft     SalesOrderStatus = "draft"
	SalesOrderStatusConfirmed SalesOrderStatus = "confirmed"
	SalesOrderStatusDelivered SalesOrderStatus = "delivered"
	SalesOrderStatusCancelled SalesOrderStatus = "cancelled"
)

// IsValid reports whether the status is known.
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderStatusDraft, SalesOrderStatusConfirmed, SalesOrderStatusDelivered, SalesOrderStatusCancelled:
		return true
	}
	return false
}

// CountsAsRevenue reports whether orders in this status contribute to gross revenue.
func (s SalesOrderStatus) CountsAsRevenue() bool {
	return s == SalesOrderStatusConfirmed || s == SalesOrderStatusDelivered
}

// salesOrderTransitions lists the allowed next statuses for each status.
var salesOrderTransitions = map[SalesOrderStatus][]SalesOrderStatus{
	SalesOrderStatusDraft:     {SalesOrderStatusConfirmed, SalesOrderStatusCancelled},
	SalesOrderStatusConfirmed: {SalesOrderStatusDelivered, SalesOrderStatusCancelled},
}

// CanTransitionTo reports whether the status may move to next.
func (s SalesOrderStatus) CanTransitionTo(next SalesOrderStatus) bool {
	for _, allowed := range salesOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SalesOrderItem is one line of a sales order. UnitPrice is a snapshot taken
// when the order is created.
type SalesOrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Subtotal returns quantity times unit price.
func (i SalesOrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// SalesOrder represents an order placed by a customer.
type SalesOrder struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Number      int
	CustomerID  *uuid.UUID
	OrderDate   time.Time
	Status      SalesOrderStatus
	Discount    decimal.Decimal
	Total       decimal.Decimal
	Notes       string
	Items       []SalesOrderItem
	CreatedBy   uuid.UUID
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSalesOrder creates a draft SalesOrder and computes its total.
func NewSalesOrder(
	companyID uuid.UUID,
	customerID *uuid.UUID,
	orderDate time.Time,
	discount decimal.Decimal,
	notes string,
	items []SalesOrderItem,
	createdBy uuid.UUID,
) *SalesOrder {
	now := time.Now().UTC()
	order := &SalesOrder{
		ID:         uuid.New(),
		CompanyID:  companyID,
		CustomerID: customerID,
		OrderDate:  orderDate,
		Status:     SalesOrderStatusDraft,
		Discount:   discount,
		Notes:      notes,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range items {
		item.ID = uuid.New()
		item.OrderID = order.ID
		order.Items = append(order.Items, item)
	}
	order.Total = order.ComputeTotal()
	return order
}

// ComputeTotal returns the sum of item subtotals minus the discount, floored at zero.
func (o *SalesOrder) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	total = total.Sub(o.Discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total.Round(2)
}

// TransitionTo moves the order to next and stamps the matching timestamp.
// It returns false when the transition is not allowed.
func (o *SalesOrder) TransitionTo(next SalesOrderStatus, at time.Time) bool {
	if !o.Status.CanTransitionTo(next) {
		return false
	}
	stamp := at.UTC()
	switch next {
	case SalesOrderStatusConfirmed:
		o.ConfirmedAt = &stamp
	case SalesOrderStatusDelivered:
		o.DeliveredAt = &stamp
	case SalesOrderStatusCancelled:
		o.CancelledAt = &stamp
	}
	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return true
}
