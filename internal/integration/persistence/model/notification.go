package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
// DedupKey is unique so the worker can insert idempotently.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_inbox"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_inbox"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Title     string    `gorm:"type:varchar(150);not null"`
	Message   string    `gorm:"type:text"`
	Link      string    `gorm:"type:varchar(255)"`
	DedupKey  string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		UserID:    m.UserID,
		Kind:      entity.NotificationKind(m.Kind),
		Title:     m.Title,
		Message:   m.Message,
		Link:      m.Link,
		DedupKey:  m.DedupKey,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		CompanyID: notification.CompanyID,
		UserID:    notification.UserID,
		Kind:      string(notification.Kind),
		Title:     notification.Title,
		Message:   notification.Message,
		Link:      notification.Link,
		DedupKey:  notification.DedupKey,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}
