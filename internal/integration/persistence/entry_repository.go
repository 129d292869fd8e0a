package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new ledger entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// CreateBatch stores all entries in a single database transaction.
func (r *entryRepository) CreateBatch(ctx context.Context, entries []*entity.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.LedgerEntryModel, len(entries))
	for i, e := range entries {
		entryModels[i] = model.LedgerEntryFromEntity(e)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entryModels).Error
	})
}

// FindByID retrieves an entry of the company by ID.
func (r *entryRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

func (r *entryRepository) filtered(ctx context.Context, filter adapter.EntryFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.LedgerEntryModel{}).
		Where("company_id = ?", filter.CompanyID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", entity.TruncateDay(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date < ?", entity.TruncateDay(*filter.EndDate).AddDate(0, 0, 1))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PersonID != nil {
		query = query.Where("person_id = ?", *filter.PersonID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ?", pattern)
	}
	return query
}

// List retrieves entries matching the filter with pagination and the totals of the whole filtered set.
// Cancelled entries are listed but left out of the totals.
func (r *entryRepository) List(ctx context.Context, filter adapter.EntryFilter, pagination adapter.Pagination) (*adapter.EntryListResult, error) {
	pagination = pagination.Normalize()
	query := r.filtered(ctx, filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var entryModels []model.LedgerEntryModel
	result := query.Session(&gorm.Session{}).
		Order("due_date DESC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}

	var sums struct {
		RevenueTotal decimal.Decimal
		ExpenseTotal decimal.Decimal
	}
	err := query.Session(&gorm.Session{}).
		Where("status != ?", string(entity.EntryStatusCancelled)).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) as revenue_total, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) as expense_total",
			string(entity.EntryTypeRevenue), string(entity.EntryTypeExpense),
		).
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	totalPages := pagination.TotalPages(total)
	if totalPages == 0 {
		totalPages = 1
	}

	return &adapter.EntryListResult{
		Entries: entries,
		Totals: adapter.EntryTotals{
			RevenueTotal: sums.RevenueTotal,
			ExpenseTotal: sums.ExpenseTotal,
			NetTotal:     sums.RevenueTotal.Sub(sums.ExpenseTotal),
		},
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Save(model.LedgerEntryFromEntity(entry)).Error
}

// Settle stores the settlement only while the entry is still open.
func (r *entryRepository) Settle(ctx context.Context, entry *entity.LedgerEntry) error {
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("id = ? AND company_id = ? AND status IN ?", entry.ID, entry.CompanyID, []string{
			string(entity.EntryStatusPending),
			string(entity.EntryStatusOverdue),
		}).
		Updates(map[string]any{
			"status":     string(entry.Status),
			"paid_at":    entry.PaidAt,
			"updated_at": entry.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryAlreadySettled
	}
	return nil
}

// Delete removes an entry of the company.
func (r *entryRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LedgerEntryModel{}, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// FindPendingDueBefore returns pending entries of every company due before the given day.
func (r *entryRepository) FindPendingDueBefore(ctx context.Context, day time.Time, limit int) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", string(entity.EntryStatusPending), entity.TruncateDay(day)).
		Order("due_date ASC").
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toLedgerEntries(entryModels), nil
}

// FindPendingDueBetween returns pending entries of every company due in
// [from, to] without a due-soon stamp.
func (r *entryRepository) FindPendingDueBetween(ctx context.Context, from, to time.Time, limit int) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND due_date >= ? AND due_date < ? AND due_soon_notified_at IS NULL",
			string(entity.EntryStatusPending),
			entity.TruncateDay(from),
			entity.TruncateDay(to).AddDate(0, 0, 1),
		).
		Order("due_date ASC").
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toLedgerEntries(entryModels), nil
}

// MarkDueSoonNotified stamps the given entries as announced.
func (r *entryRepository) MarkDueSoonNotified(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("id IN ?", ids).
		Update("due_soon_notified_at", at.UTC()).Error
}

// MarkOverdue flags the given pending entries as overdue.
func (r *entryRepository) MarkOverdue(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("id IN ? AND status = ?", ids, string(entity.EntryStatusPending)).
		Updates(map[string]any{
			"status":     string(entity.EntryStatusOverdue),
			"updated_at": time.Now().UTC(),
		}).Error
}

func toLedgerEntries(entryModels []model.LedgerEntryModel) []*entity.LedgerEntry {
	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries
}
