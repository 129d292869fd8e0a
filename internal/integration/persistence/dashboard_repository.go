package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

var settledStatuses = []string{string(entity.EntryStatusPaid), string(entity.EntryStatusReceived)}

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// ListEntriesInRange returns the non-cancelled entries of the company dated in r.
func (r *dashboardRepository) ListEntriesInRange(
	ctx context.Context,
	companyID uuid.UUID,
	dr valueobject.DateRange,
	basis dashboard.Basis,
) ([]*entity.LedgerEntry, error) {
	query := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("transaction_date >= ? AND transaction_date < ?", dr.Start, dr.EndExclusive())

	if basis == dashboard.BasisCash {
		query = query.Where("status IN ?", settledStatuses)
	} else {
		query = query.Where("status != ?", string(entity.EntryStatusCancelled))
	}

	var entryModels []model.LedgerEntryModel
	if err := query.Order("transaction_date ASC").Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list entries in range: %w", err)
	}
	return toLedgerEntries(entryModels), nil
}

// ListSettledEntries returns paid or received entries whose cash date falls in r.
func (r *dashboardRepository) ListSettledEntries(
	ctx context.Context,
	companyID uuid.UUID,
	dr valueobject.DateRange,
) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status IN ?", companyID, settledStatuses).
		Where(
			r.db.Where("paid_at >= ? AND paid_at < ?", dr.Start, dr.EndExclusive()).
				Or("paid_at IS NULL AND due_date >= ? AND due_date < ?", dr.Start, dr.EndExclusive()),
		).
		Order("due_date ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list settled entries: %w", err)
	}
	return toLedgerEntries(entryModels), nil
}

// ListOpenEntries returns every pending or overdue entry of the company.
func (r *dashboardRepository) ListOpenEntries(ctx context.Context, companyID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status IN ?", companyID,
			[]string{string(entity.EntryStatusPending), string(entity.EntryStatusOverdue)}).
		Order("due_date ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open entries: %w", err)
	}
	return toLedgerEntries(entryModels), nil
}

// ListSalesOrdersInRange returns the orders of the company dated in r, without items.
func (r *dashboardRepository) ListSalesOrdersInRange(
	ctx context.Context,
	companyID uuid.UUID,
	dr valueobject.DateRange,
) ([]*entity.SalesOrder, error) {
	var orderModels []model.SalesOrderModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("order_date >= ? AND order_date < ?", dr.Start, dr.EndExclusive()).
		Order("order_date ASC, number ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}

	orders := make([]*entity.SalesOrder, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntity()
	}
	return orders, nil
}

// ListCategories returns every category of the company.
func (r *dashboardRepository) ListCategories(ctx context.Context, companyID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&categoryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}
