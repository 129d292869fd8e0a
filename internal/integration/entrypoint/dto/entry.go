package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CreateEntryRequest represents the request body for a payable or receivable.
// Dates use the YYYY-MM-DD layout.
type CreateEntryRequest struct {
	Type            string          `json:"type" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transaction_date" binding:"required"`
	DueDate         string          `json:"due_date"`
	CategoryID      string          `json:"category_id"`
	PersonID        string          `json:"person_id"`
	Notes           string          `json:"notes"`
	Installments    int             `json:"installments"`
	InstallmentMode string          `json:"installment_mode"`
}

// UpdateEntryRequest represents the request body for entry update.
// An empty category_id or person_id clears the link.
type UpdateEntryRequest struct {
	Description     *string          `json:"description,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	TransactionDate *string          `json:"transaction_date,omitempty"`
	DueDate         *string          `json:"due_date,omitempty"`
	CategoryID      *string          `json:"category_id,omitempty"`
	PersonID        *string          `json:"person_id,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// SettleEntryRequest represents the request body for marking an entry paid or received.
type SettleEntryRequest struct {
	PaidAt string `json:"paid_at"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	Amount             string    `json:"amount"`
	TransactionDate    string    `json:"transaction_date"`
	DueDate            string    `json:"due_date"`
	CategoryID         *string   `json:"category_id"`
	PersonID           *string   `json:"person_id"`
	Status             string    `json:"status"`
	PaidAt             *string   `json:"paid_at"`
	Notes              string    `json:"notes"`
	InstallmentGroupID *string   `json:"installment_group_id"`
	InstallmentNumber  int       `json:"installment_number"`
	InstallmentTotal   int       `json:"installment_total"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// EntryTotalsResponse holds the totals of a filtered list.
type EntryTotalsResponse struct {
	Revenue string `json:"revenue"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// EntryListResponse represents one page of entries.
type EntryListResponse struct {
	Entries    []EntryResponse     `json:"entries"`
	Totals     EntryTotalsResponse `json:"totals"`
	Pagination PaginationResponse  `json:"pagination"`
}

// CreateEntryResponse holds every entry created, one per installment.
type CreateEntryResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain LedgerEntry entity to an EntryResponse DTO.
func ToEntryResponse(e *entity.LedgerEntry) EntryResponse {
	return EntryResponse{
		ID:                 e.ID.String(),
		Type:               string(e.Type),
		Description:        e.Description,
		Amount:             FormatAmount(e.Amount),
		TransactionDate:    FormatDate(e.TransactionDate),
		DueDate:            FormatDate(e.DueDate),
		CategoryID:         uuidString(e.CategoryID),
		PersonID:           uuidString(e.PersonID),
		Status:             string(e.Status),
		PaidAt:             dateString(e.PaidAt),
		Notes:              e.Notes,
		InstallmentGroupID: uuidString(e.InstallmentGroupID),
		InstallmentNumber:  e.InstallmentNumber,
		InstallmentTotal:   e.InstallmentTotal,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// ToEntryResponses converts a list of entries.
func ToEntryResponses(entries []*entity.LedgerEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}
	return out
}

// ToEntryListResponse converts a repository page.
func ToEntryListResponse(result *adapter.EntryListResult) EntryListResponse {
	return EntryListResponse{
		Entries: ToEntryResponses(result.Entries),
		Totals: EntryTotalsResponse{
			Revenue: FormatAmount(result.Totals.RevenueTotal),
			Expense: FormatAmount(result.Totals.ExpenseTotal),
			Net:     FormatAmount(result.Totals.NetTotal),
		},
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}
