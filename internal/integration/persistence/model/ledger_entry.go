package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
type LedgerEntryModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_entries_company_date"`
	Type               string          `gorm:"type:varchar(10);not null"`
	Description        string          `gorm:"type:varchar(255);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TransactionDate    time.Time       `gorm:"type:date;not null;index:idx_entries_company_date"`
	DueDate            time.Time       `gorm:"type:date;not null;index"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	PersonID           *uuid.UUID      `gorm:"type:uuid;index"`
	Status             string          `gorm:"type:varchar(10);not null;default:'pending';index"`
	PaidAt             *time.Time
	Notes              string     `gorm:"type:text"`
	InstallmentGroupID *uuid.UUID `gorm:"type:uuid;index"`
	InstallmentNumber  int        `gorm:"not null;default:1"`
	InstallmentTotal   int        `gorm:"not null;default:1"`
	DueSoonNotifiedAt  *time.Time
	CreatedBy          uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	var paidAt, dueSoonNotifiedAt *time.Time
	if m.PaidAt != nil {
		stamp := m.PaidAt.UTC()
		paidAt = &stamp
	}
	if m.DueSoonNotifiedAt != nil {
		stamp := m.DueSoonNotifiedAt.UTC()
		dueSoonNotifiedAt = &stamp
	}

	return &entity.LedgerEntry{
		ID:                 m.ID,
		CompanyID:          m.CompanyID,
		Type:               entity.EntryType(m.Type),
		Description:        m.Description,
		Amount:             m.Amount,
		TransactionDate:    m.TransactionDate.UTC(),
		DueDate:            m.DueDate.UTC(),
		CategoryID:         m.CategoryID,
		PersonID:           m.PersonID,
		Status:             entity.EntryStatus(m.Status),
		PaidAt:             paidAt,
		Notes:              m.Notes,
		InstallmentGroupID: m.InstallmentGroupID,
		InstallmentNumber:  m.InstallmentNumber,
		InstallmentTotal:   m.InstallmentTotal,
		DueSoonNotifiedAt:  dueSoonNotifiedAt,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:                 entry.ID,
		CompanyID:          entry.CompanyID,
		Type:               string(entry.Type),
		Description:        entry.Description,
		Amount:             entry.Amount,
		TransactionDate:    entry.TransactionDate.UTC(),
		DueDate:            entry.DueDate.UTC(),
		CategoryID:         entry.CategoryID,
		PersonID:           entry.PersonID,
		Status:             string(entry.Status),
		PaidAt:             entry.PaidAt,
		Notes:              entry.Notes,
		InstallmentGroupID: entry.InstallmentGroupID,
		InstallmentNumber:  entry.InstallmentNumber,
		InstallmentTotal:   entry.InstallmentTotal,
		DueSoonNotifiedAt:  entry.DueSoonNotifiedAt,
		CreatedBy:          entry.CreatedBy,
		CreatedAt:          entry.CreatedAt,
		UpdatedAt:          entry.UpdatedAt,
	}
}
