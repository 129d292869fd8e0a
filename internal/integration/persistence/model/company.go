package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CompanyModel represents the companies table. It is the tenant root:
// every tenant-scoped table carries a company_id pointing here.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	TradeName string    `gorm:"type:varchar(150)"`
	Document  string    `gorm:"type:varchar(14);index"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(30)"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'BRL'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompanyModel.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts a CompanyModel to a domain Company entity.
func (m *CompanyModel) ToEntity() *entity.Company {
	return &entity.Company{
		ID:        m.ID,
		Name:      m.Name,
		TradeName: m.TradeName,
		Document:  m.Document,
		Email:     m.Email,
		Phone:     m.Phone,
		OwnerID:   m.OwnerID,
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CompanyFromEntity creates a CompanyModel from a domain Company entity.
func CompanyFromEntity(company *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:        company.ID,
		Name:      company.Name,
		TradeName: company.TradeName,
		Document:  company.Document,
		Email:     company.Email,
		Phone:     company.Phone,
		OwnerID:   company.OwnerID,
		Currency:  company.Currency,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}
