package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

// reminderRepository implements the adapter.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository instance.
func NewReminderRepository(db *gorm.DB) adapter.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create creates a new reminder in the database.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Create(model.ReminderFromEntity(reminder)).Error
}

// FindByID retrieves a reminder of the company by ID.
func (r *reminderRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Reminder, error) {
	var reminderModel model.ReminderModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&reminderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReminderNotFound
		}
		return nil, result.Error
	}
	return reminderModel.ToEntity(), nil
}

// ListByUser retrieves the reminders of a user ordered by remind time.
func (r *reminderRepository) ListByUser(ctx context.Context, companyID, userID uuid.UUID, includeDone bool) ([]*entity.Reminder, error) {
	query := r.db.WithContext(ctx).Where("company_id = ? AND user_id = ?", companyID, userID)
	if !includeDone {
		query = query.Where("done = ?", false)
	}

	var reminderModels []model.ReminderModel
	if err := query.Order("remind_at ASC").Find(&reminderModels).Error; err != nil {
		return nil, err
	}
	return toReminders(reminderModels), nil
}

// Update updates an existing reminder in the database.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Save(model.ReminderFromEntity(reminder)).Error
}

// Delete removes a reminder of the company.
func (r *reminderRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ReminderModel{}, "id = ? AND company_id = ?", id, companyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrReminderNotFound
	}
	return nil
}

// FindDueUnnotified returns open reminders of every company whose time has come
// and that were not notified yet.
func (r *reminderRepository) FindDueUnnotified(ctx context.Context, now time.Time, limit int) ([]*entity.Reminder, error) {
	var reminderModels []model.ReminderModel
	result := r.db.WithContext(ctx).
		Where("done = ? AND notified_at IS NULL AND remind_at <= ?", false, now.UTC()).
		Order("remind_at ASC").
		Limit(limit).
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toReminders(reminderModels), nil
}

// MarkNotified stamps the reminders as notified.
func (r *reminderRepository) MarkNotified(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("id IN ?", ids).
		Update("notified_at", at.UTC()).Error
}

func toReminders(reminderModels []model.ReminderModel) []*entity.Reminder {
	reminders := make([]*entity.Reminder, len(reminderModels))
	for i := range reminderModels {
		reminders[i] = reminderModels[i].ToEntity()
	}
	return reminders
}
