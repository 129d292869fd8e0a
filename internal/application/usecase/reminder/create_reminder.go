// Package reminder contains reminder use cases.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

const MaxReminderTitleLength = 120

// CreateReminderInput represents the input for reminder creation.
type CreateReminderInput struct {
	Session     entity.Session
	Title       string
	Description string
	RemindAt    time.Time
	EntryID     *uuid.UUID
}

// CreateReminderUseCase creates reminders for the session user.
type CreateReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
	entryRepo    adapter.EntryRepository
}

// NewCreateReminderUseCase creates a new CreateReminderUseCase instance.
func NewCreateReminderUseCase(reminderRepo adapter.ReminderRepository, entryRepo adapter.EntryRepository) *CreateReminderUseCase {
	return &CreateReminderUseCase{
		reminderRepo: reminderRepo,
		entryRepo:    entryRepo,
	}
}

// Execute performs the reminder creation.
func (uc *CreateReminderUseCase) Execute(ctx context.Context, input CreateReminderInput) (*entity.Reminder, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if input.RemindAt.IsZero() {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeInvalidRemindAt,
			"remind_at is required",
			domainerror.ErrInvalidRemindAt,
		)
	}
	if err := checkEntry(ctx, uc.entryRepo, input.Session.CompanyID, input.EntryID); err != nil {
		return nil, err
	}

	reminder := entity.NewReminder(
		input.Session.CompanyID,
		input.Session.UserID,
		title,
		strings.TrimSpace(input.Description),
		input.RemindAt.UTC(),
		input.EntryID,
	)
	if err := uc.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return reminder, nil
}

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" || len([]rune(title)) > MaxReminderTitleLength {
		return "", domainerror.NewReminderError(
			domainerror.ErrCodeInvalidReminderTitle,
			fmt.Sprintf("title must have between 1 and %d characters", MaxReminderTitleLength),
			domainerror.ErrInvalidReminderTitle,
		)
	}
	return title, nil
}

func checkEntry(ctx context.Context, repo adapter.EntryRepository, companyID uuid.UUID, entryID *uuid.UUID) error {
	if entryID == nil {
		return nil
	}
	if _, err := repo.FindByID(ctx, companyID, *entryID); err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return domainerror.NewReminderError(
				domainerror.ErrCodeReminderEntryMissing,
				"linked entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return fmt.Errorf("failed to find entry: %w", err)
	}
	return nil
}

// findReminder returns a reminder only to the user who owns it.
func findReminder(ctx context.Context, repo adapter.ReminderRepository, session entity.Session, id uuid.UUID) (*entity.Reminder, error) {
	reminder, err := repo.FindByID(ctx, session.CompanyID, id)
	if err != nil && !errors.Is(err, domainerror.ErrReminderNotFound) {
		return nil, fmt.Errorf("failed to find reminder: %w", err)
	}
	if err != nil || reminder.UserID != session.UserID {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeReminderNotFound,
			"reminder not found",
			domainerror.ErrReminderNotFound,
		)
	}
	return reminder, nil
}
