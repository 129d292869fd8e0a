package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// PersonModel represents the people table in the database.
type PersonModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(150);not null"`
	Document  string         `gorm:"type:varchar(14)"`
	Email     string         `gorm:"type:varchar(255)"`
	Phone     string         `gorm:"type:varchar(30)"`
	Roles     pq.StringArray `gorm:"type:text[]"`
	Notes     string         `gorm:"type:text"`
	Active    bool           `gorm:"default:true"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the PersonModel.
func (PersonModel) TableName() string {
	return "people"
}

// ToEntity converts a PersonModel to a domain Person entity.
func (m *PersonModel) ToEntity() *entity.Person {
	roles := make([]entity.PersonRole, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, entity.PersonRole(r))
	}

	return &entity.Person{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		Document:  m.Document,
		Email:     m.Email,
		Phone:     m.Phone,
		Roles:     roles,
		Notes:     m.Notes,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PersonFromEntity creates a PersonModel from a domain Person entity.
func PersonFromEntity(person *entity.Person) *PersonModel {
	roles := make(pq.StringArray, 0, len(person.Roles))
	for _, r := range person.Roles {
		roles = append(roles, string(r))
	}

	return &PersonModel{
		ID:        person.ID,
		CompanyID: person.CompanyID,
		Name:      person.Name,
		Document:  person.Document,
		Email:     person.Email,
		Phone:     person.Phone,
		Roles:     roles,
		Notes:     person.Notes,
		Active:    person.Active,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
}
