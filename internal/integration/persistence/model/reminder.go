package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// ReminderModel represents the reminders table in the database.
type ReminderModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(150);not null"`
	Description string     `gorm:"type:text"`
	RemindAt    time.Time  `gorm:"not null;index"`
	EntryID     *uuid.UUID `gorm:"type:uuid"`
	Done        bool       `gorm:"default:false"`
	NotifiedAt  *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReminderModel.
func (ReminderModel) TableName() string {
	return "reminders"
}

// ToEntity converts a ReminderModel to a domain Reminder entity.
func (m *ReminderModel) ToEntity() *entity.Reminder {
	return &entity.Reminder{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		RemindAt:    m.RemindAt.UTC(),
		EntryID:     m.EntryID,
		Done:        m.Done,
		NotifiedAt:  m.NotifiedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ReminderFromEntity creates a ReminderModel from a domain Reminder entity.
func ReminderFromEntity(reminder *entity.Reminder) *ReminderModel {
	return &ReminderModel{
		ID:          reminder.ID,
		CompanyID:   reminder.CompanyID,
		UserID:      reminder.UserID,
		Title:       reminder.Title,
		Description: reminder.Description,
		RemindAt:    reminder.RemindAt.UTC(),
		EntryID:     reminder.EntryID,
		Done:        reminder.Done,
		NotifiedAt:  reminder.NotifiedAt,
		CreatedAt:   reminder.CreatedAt,
		UpdatedAt:   reminder.UpdatedAt,
	}
}
