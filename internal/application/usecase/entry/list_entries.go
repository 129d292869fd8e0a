package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// ListEntriesInput represents the input for listing ledger entries.
type ListEntriesInput struct {
	Session    entity.Session
	Type       *entity.EntryType
	Status     *entity.EntryStatus
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	PersonID   *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

// ListEntriesUseCase lists ledger entries with filters, totals and pagination.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the listing.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*adapter.EntryListResult, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"entry type must be 'revenue' or 'expense'",
			domainerror.ErrInvalidEntryType,
		)
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryStatus,
			"invalid entry status",
			domainerror.ErrInvalidEntryStatus,
		)
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"end date must not be before start date",
			domainerror.ErrInvalidEntryDate,
		)
	}

	filter := adapter.EntryFilter{
		CompanyID:  input.Session.CompanyID,
		Type:       input.Type,
		Status:     input.Status,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		PersonID:   input.PersonID,
		Search:     strings.TrimSpace(input.Search),
	}
	pagination := adapter.Pagination{Page: input.Page, Limit: input.Limit}.Normalize()

	result, err := uc.entryRepo.List(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return result, nil
}

// GetEntryUseCase returns one entry of the session company.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the lookup.
func (uc *GetEntryUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) (*entity.LedgerEntry, error) {
	return findEntry(ctx, uc.entryRepo, session.CompanyID, id)
}
