package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType partitions ledger entries into revenue (receivable) and expense (payable).
type EntryType string

const (
	EntryTypeRevenue EntryType = "revenue"
	EntryTypeExpense EntryType = "expense"
)

// IsValid reports whether the entry type is known.
func (t EntryType) IsValid() bool {
	return t == EntryTypeRevenue || t == EntryTypeExpense
}

// EntryStatus is the settlement status of a ledger entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusPaid      EntryStatus = "paid"
	EntryStatusReceived  EntryStatus = "received"
	EntryStatusOverdue   EntryStatus = "overdue"
	EntryStatusCancelled EntryStatus = "cancelled"
)

// IsValid reports whether the status is known.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusPaid, EntryStatusReceived, EntryStatusOverdue, EntryStatusCancelled:
		return true
	}
	return false
}

// IsSettled reports whether money already changed hands.
func (s EntryStatus) IsSettled() bool {
	return s == EntryStatusPaid || s == EntryStatusReceived
}

// IsOpen reports whether the entry still awaits settlement.
func (s EntryStatus) IsOpen() bool {
	return s == EntryStatusPending || s == EntryStatusOverdue
}

// SettledStatusFor returns the settled status matching an entry type.
func SettledStatusFor(t EntryType) EntryStatus {
	if t == EntryTypeRevenue {
		return EntryStatusReceived
	}
	return EntryStatusPaid
}

// LedgerEntry is an account payable or receivable. Amount is never negative;
// Type carries the direction.
type LedgerEntry struct {
	ID                 uuid.UUID
	CompanyID          uuid.UUID
	Type               EntryType
	Description        string
	Amount             decimal.Decimal
	TransactionDate    time.Time
	DueDate            time.Time
	CategoryID         *uuid.UUID
	PersonID           *uuid.UUID
	Status             EntryStatus
	PaidAt             *time.Time
	Notes              string
	InstallmentGroupID *uuid.UUID
	InstallmentNumber  int
	InstallmentTotal   int
	// DueSoonNotifiedAt is set once the due-soon notification went out for
	// the current DueDate.
	DueSoonNotifiedAt *time.Time
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewLedgerEntry creates a pending LedgerEntry.
func NewLedgerEntry(
	companyID uuid.UUID,
	entryType EntryType,
	description string,
	amount decimal.Decimal,
	transactionDate time.Time,
	dueDate time.Time,
	categoryID *uuid.UUID,
	personID *uuid.UUID,
	notes string,
	createdBy uuid.UUID,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:                uuid.New(),
		CompanyID:         companyID,
		Type:              entryType,
		Description:       description,
		Amount:            amount,
		TransactionDate:   transactionDate,
		DueDate:           dueDate,
		CategoryID:        categoryID,
		PersonID:          personID,
		Status:            EntryStatusPending,
		Notes:             notes,
		InstallmentNumber: 1,
		InstallmentTotal:  1,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Settle marks the entry as paid or received at the given time.
func (e *LedgerEntry) Settle(at time.Time) {
	paidAt := at.UTC()
	e.Status = SettledStatusFor(e.Type)
	e.PaidAt = &paidAt
	e.UpdatedAt = time.Now().UTC()
}

// Cancel marks the entry as cancelled.
func (e *LedgerEntry) Cancel() {
	e.Status = EntryStatusCancelled
	e.UpdatedAt = time.Now().UTC()
}

// Reschedule moves the due date. A new date is announced again when it comes
// close.
func (e *LedgerEntry) Reschedule(dueDate time.Time) {
	dueDate = TruncateDay(dueDate)
	if dueDate.Equal(TruncateDay(e.DueDate)) {
		return
	}
	e.DueDate = dueDate
	e.DueSoonNotifiedAt = nil
}

// IsOverdueOn reports whether an open entry is past its due date on the given day.
func (e *LedgerEntry) IsOverdueOn(day time.Time) bool {
	if e.Status != EntryStatusPending {
		return false
	}
	return TruncateDay(e.DueDate).Before(TruncateDay(day))
}

// CashDate returns the date money moved, falling back to the due date.
func (e *LedgerEntry) CashDate() time.Time {
	if e.PaidAt != nil {
		return *e.PaidAt
	}
	return e.DueDate
}

// TruncateDay drops the clock part of t, keeping its calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
