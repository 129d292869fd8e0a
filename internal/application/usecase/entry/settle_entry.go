package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// SettleEntryInput represents the input for marking an entry as paid or received.
// A zero PaidAt means now.
type SettleEntryInput struct {
	Session entity.Session
	EntryID uuid.UUID
	PaidAt  time.Time
}

// SettleEntryUseCase marks an open entry as paid (expense) or received (revenue).
type SettleEntryUseCase struct {
	entryRepo adapter.EntryRepository
	publisher adapter.EventPublisher
	now       func() time.Time
}

// NewSettleEntryUseCase creates a new SettleEntryUseCase instance.
func NewSettleEntryUseCase(entryRepo adapter.EntryRepository, publisher adapter.EventPublisher) *SettleEntryUseCase {
	return &SettleEntryUseCase{
		entryRepo: entryRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Execute performs the settlement.
func (uc *SettleEntryUseCase) Execute(ctx context.Context, input SettleEntryInput) (*entity.LedgerEntry, error) {
	entry, err := findEntry(ctx, uc.entryRepo, input.Session.CompanyID, input.EntryID)
	if err != nil {
		return nil, err
	}

	switch {
	case entry.Status.IsSettled():
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryAlreadySettled,
			"entry is already settled",
			domainerror.ErrEntryAlreadySettled,
		)
	case entry.Status == entity.EntryStatusCancelled:
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryCancelled,
			"cancelled entries cannot be settled",
			domainerror.ErrEntryCancelled,
		)
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = uc.now()
	}
	entry.Settle(paidAt)

	if err := uc.entryRepo.Settle(ctx, entry); err != nil {
		if errors.Is(err, domainerror.ErrEntryAlreadySettled) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryAlreadySettled,
				"entry is no longer open",
				domainerror.ErrEntryAlreadySettled,
			)
		}
		return nil, fmt.Errorf("failed to settle entry: %w", err)
	}

	if uc.publisher != nil {
		event := adapter.NewEvent(adapter.EventEntrySettled, entry.CompanyID, map[string]any{
			"entry_id": entry.ID.String(),
			"type":     string(entry.Type),
			"status":   string(entry.Status),
			"amount":   entry.Amount.StringFixed(2),
			"paid_at":  entry.PaidAt.Format(time.RFC3339),
		})
		if err := uc.publisher.Publish(ctx, event); err != nil {
			slog.Warn("Failed to publish entry settled event",
				"entry_id", entry.ID,
				"error", err,
			)
		}
	}

	return entry, nil
}

// CancelEntryUseCase cancels an open entry. Cancelled entries leave every report.
type CancelEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewCancelEntryUseCase creates a new CancelEntryUseCase instance.
func NewCancelEntryUseCase(entryRepo adapter.EntryRepository) *CancelEntryUseCase {
	return &CancelEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the cancellation. Cancelling twice is a no-op.
func (uc *CancelEntryUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) (*entity.LedgerEntry, error) {
	entry, err := findEntry(ctx, uc.entryRepo, session.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if entry.Status.IsSettled() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryAlreadySettled,
			"settled entries cannot be cancelled",
			domainerror.ErrEntryAlreadySettled,
		)
	}
	if entry.Status == entity.EntryStatusCancelled {
		return entry, nil
	}

	entry.Cancel()
	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to cancel entry: %w", err)
	}
	return entry, nil
}
