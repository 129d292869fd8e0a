package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant. Every business row carries its ID.
type Company struct {
	ID        uuid.UUID
	Name      string
	TradeName string
	Document  string // CNPJ or CPF, digits only
	Email     string
	Phone     string
	OwnerID   uuid.UUID
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCompany creates a new Company owned by the given user.
func NewCompany(name, tradeName, document, email, phone string, ownerID uuid.UUID) *Company {
	now := time.Now().UTC()
	return &Company{
		ID:        uuid.New(),
		Name:      name,
		TradeName: tradeName,
		Document:  document,
		Email:     email,
		Phone:     phone,
		OwnerID:   ownerID,
		Currency:  "BRL",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
