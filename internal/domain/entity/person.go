package entity

import (
	"time"

	"github.com/google/uuid"
)

// PersonRole tags what a person is to the company. A person may hold several.
type PersonRole string

const (
	PersonRoleCustomer PersonRole = "customer"
	PersonRoleSupplier PersonRole = "supplier"
	PersonRoleStaff    PersonRole = "staff"
)

// IsValid reports whether the role is known.
func (r PersonRole) IsValid() bool {
	switch r {
	case PersonRoleCustomer, PersonRoleSupplier, PersonRoleStaff:
		return true
	}
	return false
}

// Person represents a customer, supplier or staff member of a company.
type Person struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Document  string
	Email     string
	Phone     string
	Roles     []PersonRole
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPerson creates a new active Person.
func NewPerson(companyID uuid.UUID, name, document, email, phone string, roles []PersonRole, notes string) *Person {
	now := time.Now().UTC()
	return &Person{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		Roles:     roles,
		Notes:     notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasRole reports whether the person holds the given role.
func (p *Person) HasRole(role PersonRole) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
