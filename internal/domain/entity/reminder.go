package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a dated note that raises a notification when it comes due.
type Reminder struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	RemindAt    time.Time
	EntryID     *uuid.UUID
	Done        bool
	NotifiedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReminder creates a new open Reminder.
func NewReminder(companyID, userID uuid.UUID, title, description string, remindAt time.Time, entryID *uuid.UUID) *Reminder {
	now := time.Now().UTC()
	return &Reminder{
		ID:          uuid.New(),
		CompanyID:   companyID,
		UserID:      userID,
		Title:       title,
		Description: description,
		RemindAt:    remindAt,
		EntryID:     entryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Complete marks the reminder as done.
func (r *Reminder) Complete() {
	r.Done = true
	r.UpdatedAt = time.Now().UTC()
}
