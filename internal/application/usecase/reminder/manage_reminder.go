package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// ListRemindersUseCase lists the reminders of the session user.
type ListRemindersUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewListRemindersUseCase creates a new ListRemindersUseCase instance.
func NewListRemindersUseCase(reminderRepo adapter.ReminderRepository) *ListRemindersUseCase {
	return &ListRemindersUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute performs the listing.
func (uc *ListRemindersUseCase) Execute(ctx context.Context, session entity.Session, includeDone bool) ([]*entity.Reminder, error) {
	reminders, err := uc.reminderRepo.ListByUser(ctx, session.CompanyID, session.UserID, includeDone)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// UpdateReminderInput represents the input for reminder update. Nil fields are left unchanged.
type UpdateReminderInput struct {
	Session     entity.Session
	ReminderID  uuid.UUID
	Title       *string
	Description *string
	RemindAt    *time.Time
}

// UpdateReminderUseCase edits a reminder. Moving RemindAt re-arms the notification.
type UpdateReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewUpdateReminderUseCase creates a new UpdateReminderUseCase instance.
func NewUpdateReminderUseCase(reminderRepo adapter.ReminderRepository) *UpdateReminderUseCase {
	return &UpdateReminderUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute performs the update.
func (uc *UpdateReminderUseCase) Execute(ctx context.Context, input UpdateReminderInput) (*entity.Reminder, error) {
	reminder, err := findReminder(ctx, uc.reminderRepo, input.Session, input.ReminderID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if reminder.Title, err = validateTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		reminder.Description = strings.TrimSpace(*input.Description)
	}
	if input.RemindAt != nil && !input.RemindAt.IsZero() && !input.RemindAt.Equal(reminder.RemindAt) {
		reminder.RemindAt = input.RemindAt.UTC()
		reminder.NotifiedAt = nil
	}
	reminder.UpdatedAt = time.Now().UTC()

	if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	return reminder, nil
}

// CompleteReminderUseCase marks a reminder as done.
type CompleteReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewCompleteReminderUseCase creates a new CompleteReminderUseCase instance.
func NewCompleteReminderUseCase(reminderRepo adapter.ReminderRepository) *CompleteReminderUseCase {
	return &CompleteReminderUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute completes the reminder. Completing twice is a no-op.
func (uc *CompleteReminderUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) (*entity.Reminder, error) {
	reminder, err := findReminder(ctx, uc.reminderRepo, session, id)
	if err != nil {
		return nil, err
	}
	if reminder.Done {
		return reminder, nil
	}

	reminder.Complete()
	if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to complete reminder: %w", err)
	}
	return reminder, nil
}

// DeleteReminderUseCase removes a reminder.
type DeleteReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewDeleteReminderUseCase creates a new DeleteReminderUseCase instance.
func NewDeleteReminderUseCase(reminderRepo adapter.ReminderRepository) *DeleteReminderUseCase {
	return &DeleteReminderUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteReminderUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) error {
	reminder, err := findReminder(ctx, uc.reminderRepo, session, id)
	if err != nil {
		return err
	}
	if err := uc.reminderRepo.Delete(ctx, reminder.CompanyID, reminder.ID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}
