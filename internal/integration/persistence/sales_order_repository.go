package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

// salesOrderRepository implements the adapter.SalesOrderRepository interface.
type salesOrderRepository struct {
	db *gorm.DB
}

// NewSalesOrderRepository creates a new sales order repository instance.
func NewSalesOrderRepository(db *gorm.DB) adapter.SalesOrderRepository {
	return &salesOrderRepository{
		db: db,
	}
}

// Create stores the order and its items and assigns the next order number.
// The company row is locked so concurrent creations get distinct numbers.
func (r *salesOrderRepository) Create(ctx context.Context, order *entity.SalesOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company model.CompanyModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", order.CompanyID).
			First(&company).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrCompanyNotFound
			}
			return err
		}

		var last struct {
			Number int
		}
		err = tx.Model(&model.SalesOrderModel{}).
			Select("COALESCE(MAX(number), 0) as number").
			Where("company_id = ?", order.CompanyID).
			Scan(&last).Error
		if err != nil {
			return err
		}
		order.Number = last.Number + 1

		return tx.Create(model.SalesOrderFromEntity(order)).Error
	})
}

// FindByID retrieves an order of the company with its items.
func (r *salesOrderRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.SalesOrder, error) {
	var orderModel model.SalesOrderModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND company_id = ?", id, companyID).
		First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSalesOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// List retrieves orders matching the filter with pagination, newest first.
func (r *salesOrderRepository) List(ctx context.Context, filter adapter.SalesOrderFilter, pagination adapter.Pagination) (*adapter.SalesOrderListResult, error) {
	pagination = pagination.Normalize()
	query := r.db.WithContext(ctx).Model(&model.SalesOrderModel{}).
		Where("company_id = ?", filter.CompanyID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.StartDate != nil {
		query = query.Where("order_date >= ?", entity.TruncateDay(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("order_date < ?", entity.TruncateDay(*filter.EndDate).AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var orderModels []model.SalesOrderModel
	result := query.
		Preload("Items").
		Order("order_date DESC, number DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*entity.SalesOrder, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntity()
	}

	totalPages := pagination.TotalPages(total)
	if totalPages == 0 {
		totalPages = 1
	}

	return &adapter.SalesOrderListResult{
		Orders:     orders,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus persists the status and its timestamps.
func (r *salesOrderRepository) UpdateStatus(ctx context.Context, order *entity.SalesOrder) error {
	result := r.db.WithContext(ctx).
		Model(&model.SalesOrderModel{}).
		Where("id = ? AND company_id = ?", order.ID, order.CompanyID).
		Updates(map[string]any{
			"status":       string(order.Status),
			"confirmed_at": order.ConfirmedAt,
			"delivered_at": order.DeliveredAt,
			"cancelled_at": order.CancelledAt,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSalesOrderNotFound
	}
	return nil
}

// Delete removes an order of the company and its items.
func (r *salesOrderRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.SalesOrderModel{}, "id = ? AND company_id = ?", id, companyID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSalesOrderNotFound
		}
		return tx.Delete(&model.SalesOrderItemModel{}, "order_id = ?", id).Error
	})
}
