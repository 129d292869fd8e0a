// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// EntryFilter defines filter options for listing ledger entries.
type EntryFilter struct {
	CompanyID  uuid.UUID
	Type       *entity.EntryType
	Status     *entity.EntryStatus
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	PersonID   *uuid.UUID
	Search     string
}

// EntryTotals represents aggregated totals of a filtered entry list.
type EntryTotals struct {
	RevenueTotal decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// EntryListResult represents the result of listing ledger entries.
type EntryListResult struct {
	Entries    []*entity.LedgerEntry
	Totals     EntryTotals
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EntryRepository defines the interface for ledger entry persistence operations.
// Every lookup is scoped to a company except the worker scans, which run
// across tenants.
type EntryRepository interface {
	// CreateBatch stores entries atomically. Installments of one group are created together.
	CreateBatch(ctx context.Context, entries []*entity.LedgerEntry) error

	// FindByID retrieves an entry of the company by ID.
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entity.LedgerEntry, error)

	// List retrieves entries matching the filter with pagination.
	List(ctx context.Context, filter EntryFilter, pagination Pagination) (*EntryListResult, error)

	// Update updates an existing entry.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// Settle writes the settled status and payment date of the entry, provided
	// it is still pending or overdue in storage. It returns
	// ErrEntryAlreadySettled when the entry left the open states meanwhile.
	Settle(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete removes an entry of the company.
	Delete(ctx context.Context, companyID, id uuid.UUID) error

	// FindPendingDueBefore returns pending entries of every company due before the given day.
	FindPendingDueBefore(ctx context.Context, day time.Time, limit int) ([]*entity.LedgerEntry, error)

	// FindPendingDueBetween returns pending entries of every company due in
	// [from, to] that were not announced as due soon yet.
	FindPendingDueBetween(ctx context.Context, from, to time.Time, limit int) ([]*entity.LedgerEntry, error)

	// MarkDueSoonNotified stamps the entries so the due-soon scan skips them.
	MarkDueSoonNotified(ctx context.Context, ids []uuid.UUID, at time.Time) error

	// MarkOverdue flags the given entries as overdue.
	MarkOverdue(ctx context.Context, ids []uuid.UUID) error
}
