package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// SalesOrderModel represents the sales_orders table in the database.
type SalesOrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_sales_orders_company_number;index:idx_sales_orders_company_date"`
	Number      int             `gorm:"not null;uniqueIndex:idx_sales_orders_company_number"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index"`
	OrderDate   time.Time       `gorm:"type:date;not null;index:idx_sales_orders_company_date"`
	Status      string          `gorm:"type:varchar(10);not null;default:'draft'"`
	Discount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes       string          `gorm:"type:text"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null"`
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time             `gorm:"not null"`
	UpdatedAt   time.Time             `gorm:"not null"`
	Items       []SalesOrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SalesOrderModel.
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// SalesOrderItemModel represents the sales_order_items table in the database.
type SalesOrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid"`
	Description string          `gorm:"type:varchar(255);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the SalesOrderItemModel.
func (SalesOrderItemModel) TableName() string {
	return "sales_order_items"
}

// ToEntity converts a SalesOrderModel and its loaded items to a domain SalesOrder.
func (m *SalesOrderModel) ToEntity() *entity.SalesOrder {
	items := make([]entity.SalesOrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.SalesOrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &entity.SalesOrder{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		Number:      m.Number,
		CustomerID:  m.CustomerID,
		OrderDate:   m.OrderDate.UTC(),
		Status:      entity.SalesOrderStatus(m.Status),
		Discount:    m.Discount,
		Total:       m.Total,
		Notes:       m.Notes,
		Items:       items,
		CreatedBy:   m.CreatedBy,
		ConfirmedAt: m.ConfirmedAt,
		DeliveredAt: m.DeliveredAt,
		CancelledAt: m.CancelledAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SalesOrderFromEntity creates a SalesOrderModel, items included, from a domain SalesOrder.
func SalesOrderFromEntity(order *entity.SalesOrder) *SalesOrderModel {
	items := make([]SalesOrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, SalesOrderItemModel{
			ID:          item.ID,
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &SalesOrderModel{
		ID:          order.ID,
		CompanyID:   order.CompanyID,
		Number:      order.Number,
		CustomerID:  order.CustomerID,
		OrderDate:   order.OrderDate.UTC(),
		Status:      string(order.Status),
		Discount:    order.Discount,
		Total:       order.Total,
		Notes:       order.Notes,
		CreatedBy:   order.CreatedBy,
		ConfirmedAt: order.ConfirmedAt,
		DeliveredAt: order.DeliveredAt,
		CancelledAt: order.CancelledAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		Items:       items,
	}
}
