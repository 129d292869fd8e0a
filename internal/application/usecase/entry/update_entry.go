package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// UpdateEntryInput represents the input for entry update. Nil fields are left
// unchanged; ClearCategory and ClearPerson detach the reference.
type UpdateEntryInput struct {
	Session         entity.Session
	EntryID         uuid.UUID
	Description     *string
	Amount          *decimal.Decimal
	TransactionDate *time.Time
	DueDate         *time.Time
	CategoryID      *uuid.UUID
	ClearCategory   bool
	PersonID        *uuid.UUID
	ClearPerson     bool
	Notes           *string
}

// UpdateEntryUseCase handles entry update logic. The entry type is immutable.
type UpdateEntryUseCase struct {
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
	personRepo   adapter.PersonRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	personRepo adapter.PersonRepository,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		personRepo:   personRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*entity.LedgerEntry, error) {
	companyID := input.Session.CompanyID
	entry, err := findEntry(ctx, uc.entryRepo, companyID, input.EntryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == entity.EntryStatusCancelled {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryCancelled,
			"cancelled entries cannot be changed",
			domainerror.ErrEntryCancelled,
		)
	}

	if input.Description != nil {
		if entry.Description, err = validateDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		entry.Amount = input.Amount.Round(2)
	}
	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return nil, err
		}
		entry.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.TransactionDate != nil && !input.TransactionDate.IsZero() {
		entry.TransactionDate = entity.TruncateDay(*input.TransactionDate)
	}
	if input.DueDate != nil && !input.DueDate.IsZero() {
		entry.Reschedule(*input.DueDate)
	}

	switch {
	case input.ClearCategory:
		entry.CategoryID = nil
	case input.CategoryID != nil:
		if err := checkCategory(ctx, uc.categoryRepo, companyID, input.CategoryID, entry.Type); err != nil {
			return nil, err
		}
		entry.CategoryID = input.CategoryID
	}

	switch {
	case input.ClearPerson:
		entry.PersonID = nil
	case input.PersonID != nil:
		if err := checkPerson(ctx, uc.personRepo, companyID, input.PersonID); err != nil {
			return nil, err
		}
		entry.PersonID = input.PersonID
	}

	// An overdue entry whose due date moved forward is pending again.
	if entry.Status == entity.EntryStatusOverdue && !entry.DueDate.Before(entity.TruncateDay(time.Now().UTC())) {
		entry.Status = entity.EntryStatusPending
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntryUseCase removes a ledger entry.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) error {
	entry, err := findEntry(ctx, uc.entryRepo, session.CompanyID, id)
	if err != nil {
		return err
	}
	if err := uc.entryRepo.Delete(ctx, entry.CompanyID, entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
