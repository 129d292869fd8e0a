// Package entry contains accounts payable and receivable use cases.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

const (
	MaxDescriptionLength = 200
	MaxNotesLength       = 1000
)

// CreateEntryInput represents the input for ledger entry creation.
// DueDate defaults to TransactionDate. Installments below 2 create one entry.
type CreateEntryInput struct {
	Session         entity.Session
	Type            entity.EntryType
	Description     string
	Amount          decimal.Decimal
	TransactionDate time.Time
	DueDate         time.Time
	CategoryID      *uuid.UUID
	PersonID        *uuid.UUID
	Notes           string
	Installments    int
	InstallmentMode InstallmentMode
}

// CreateEntryOutput holds every entry created, in installment order.
type CreateEntryOutput struct {
	Entries []*entity.LedgerEntry
}

// CreateEntryUseCase handles ledger entry creation.
type CreateEntryUseCase struct {
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
	personRepo   adapter.PersonRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	personRepo adapter.PersonRepository,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		personRepo:   personRepo,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"entry type must be 'revenue' or 'expense'",
			domainerror.ErrInvalidEntryType,
		)
	}
	description, err := validateDescription(input.Description)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}
	if input.TransactionDate.IsZero() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"transaction date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}
	transactionDate := entity.TruncateDay(input.TransactionDate)
	dueDate := transactionDate
	if !input.DueDate.IsZero() {
		dueDate = entity.TruncateDay(input.DueDate)
	}

	count, mode, err := validateInstallments(input.Installments, input.InstallmentMode)
	if err != nil {
		return nil, err
	}

	companyID := input.Session.CompanyID
	if err := checkCategory(ctx, uc.categoryRepo, companyID, input.CategoryID, input.Type); err != nil {
		return nil, err
	}
	if err := checkPerson(ctx, uc.personRepo, companyID, input.PersonID); err != nil {
		return nil, err
	}

	template := entity.NewLedgerEntry(
		companyID,
		input.Type,
		description,
		input.Amount.Round(2),
		transactionDate,
		dueDate,
		input.CategoryID,
		input.PersonID,
		strings.TrimSpace(input.Notes),
		input.Session.UserID,
	)
	entries := expandInstallments(template, count, mode)

	if err := uc.entryRepo.CreateBatch(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to create entries: %w", err)
	}

	slog.Debug("Entries created",
		"company_id", companyID,
		"type", input.Type,
		"count", len(entries),
	)

	return &CreateEntryOutput{Entries: entries}, nil
}

func validateDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			"description is required",
			nil,
		)
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return "", domainerror.NewEntryError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return description, nil
}

func validateNotes(notes string) error {
	if len([]rune(notes)) > MaxNotesLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must not be negative",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	return nil
}

func validateInstallments(count int, mode InstallmentMode) (int, InstallmentMode, error) {
	if count <= 1 {
		return 1, "", nil
	}
	if count > MaxInstallments {
		return 0, "", domainerror.NewEntryError(
			domainerror.ErrCodeInvalidInstallments,
			fmt.Sprintf("installments must not exceed %d", MaxInstallments),
			domainerror.ErrInvalidInstallments,
		)
	}
	if mode == "" {
		mode = InstallmentModeSplit
	}
	if !mode.IsValid() {
		return 0, "", domainerror.NewEntryError(
			domainerror.ErrCodeInvalidInstallments,
			"installment mode must be 'split' or 'repeat'",
			domainerror.ErrInvalidInstallments,
		)
	}
	return count, mode, nil
}

// checkCategory makes sure the category belongs to the company and matches the entry type.
func checkCategory(ctx context.Context, repo adapter.CategoryRepository, companyID uuid.UUID, categoryID *uuid.UUID, entryType entity.EntryType) error {
	if categoryID == nil {
		return nil
	}
	category, err := repo.FindByID(ctx, companyID, *categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	if string(category.Type) != string(entryType) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeCategoryTypeMismatch,
			"category type does not match entry type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}
	return nil
}

func checkPerson(ctx context.Context, repo adapter.PersonRepository, companyID uuid.UUID, personID *uuid.UUID) error {
	if personID == nil {
		return nil
	}
	if _, err := repo.FindByID(ctx, companyID, *personID); err != nil {
		if errors.Is(err, domainerror.ErrPersonNotFound) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryPersonNotFound,
				"person not found",
				domainerror.ErrPersonNotFound,
			)
		}
		return fmt.Errorf("failed to find person: %w", err)
	}
	return nil
}

func findEntry(ctx context.Context, repo adapter.EntryRepository, companyID, id uuid.UUID) (*entity.LedgerEntry, error) {
	entry, err := repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}
	return entry, nil
}
