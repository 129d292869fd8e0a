// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder persistence operations.
type ReminderRepository interface {
	// Create creates a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// FindByID retrieves a reminder of the company by ID.
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.Reminder, error)

	// ListByUser retrieves the reminders of a user, optionally including completed ones.
	ListByUser(ctx context.Context, companyID, userID uuid.UUID, includeDone bool) ([]*entity.Reminder, error)

	// Update updates an existing reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error

	// Delete removes a reminder of the company.
	Delete(ctx context.Context, companyID, id uuid.UUID) error

	// FindDueUnnotified returns open reminders of every company whose time passed and
	// that have not produced a notification yet.
	FindDueUnnotified(ctx context.Context, now time.Time, limit int) ([]*entity.Reminder, error)

	// MarkNotified stamps reminders as notified.
	MarkNotified(ctx context.Context, ids []uuid.UUID, at time.Time) error
}
