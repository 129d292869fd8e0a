package dto

import (
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CreatePersonRequest represents the request body for person creation.
type CreatePersonRequest struct {
	Name     string   `json:"name" binding:"required"`
	Document string   `json:"document"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Roles    []string `json:"roles" binding:"required,min=1"`
	Notes    string   `json:"notes"`
}

// UpdatePersonRequest represents the request body for person update.
type UpdatePersonRequest struct {
	Name     *string  `json:"name,omitempty"`
	Document *string  `json:"document,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}

// PersonResponse represents a customer, supplier or staff member.
type PersonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Roles     []string  `json:"roles"`
	Notes     string    `json:"notes"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonListResponse wraps a list of people.
type PersonListResponse struct {
	People []PersonResponse `json:"people"`
}

// ToPersonRoles converts raw role names.
func ToPersonRoles(raw []string) []entity.PersonRole {
	if raw == nil {
		return nil
	}
	roles := make([]entity.PersonRole, 0, len(raw))
	for _, r := range raw {
		roles = append(roles, entity.PersonRole(r))
	}
	return roles
}

// ToPersonResponse converts a domain Person entity to a PersonResponse DTO.
func ToPersonResponse(p *entity.Person) PersonResponse {
	roles := make([]string, 0, len(p.Roles))
	for _, r := range p.Roles {
		roles = append(roles, string(r))
	}
	return PersonResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Document:  p.Document,
		Email:     p.Email,
		Phone:     p.Phone,
		Roles:     roles,
		Notes:     p.Notes,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPersonResponses converts a list of people.
func ToPersonResponses(people []*entity.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, ToPersonResponse(p))
	}
	return out
}
