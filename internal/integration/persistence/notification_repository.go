package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the notification unless its dedup key already exists.
func (r *notificationRepository) CreateIfAbsent(ctx context.Context, notification *entity.Notification) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedup_key"}},
			DoNothing: true,
		}).
		Create(model.NotificationFromEntity(notification))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByUser retrieves the notifications of a user, newest first.
func (r *notificationRepository) ListByUser(ctx context.Context, companyID, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	query := r.db.WithContext(ctx).Where("company_id = ? AND user_id = ?", companyID, userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var notificationModels []model.NotificationModel
	if err := query.Order("created_at DESC").Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = notificationModels[i].ToEntity()
	}
	return notifications, nil
}

// CountUnread returns the number of unread notifications of a user.
func (r *notificationRepository) CountUnread(ctx context.Context, companyID, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("company_id = ? AND user_id = ? AND read_at IS NULL", companyID, userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// MarkRead marks one notification of the user as read. Reading twice keeps the first stamp.
func (r *notificationRepository) MarkRead(ctx context.Context, companyID, userID, id uuid.UUID, at time.Time) error {
	var notificationModel model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ? AND user_id = ?", id, companyID, userID).
		Limit(1).
		Find(&notificationModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	if notificationModel.ReadAt != nil {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", at.UTC()).Error
}

// MarkAllRead marks every unread notification of the user as read.
func (r *notificationRepository) MarkAllRead(ctx context.Context, companyID, userID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("company_id = ? AND user_id = ? AND read_at IS NULL", companyID, userID).
		Update("read_at", at.UTC())
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
