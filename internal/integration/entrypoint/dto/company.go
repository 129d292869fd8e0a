package dto

import (
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CreateCompanyRequest represents the request body for company onboarding.
type CreateCompanyRequest struct {
	Name      string `json:"name" binding:"required"`
	TradeName string `json:"trade_name"`
	Document  string `json:"document"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateCompanyRequest represents the request body for company update.
type UpdateCompanyRequest struct {
	Name      *string `json:"name,omitempty"`
	TradeName *string `json:"trade_name,omitempty"`
	Document  *string `json:"document,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TradeName string    `json:"trade_name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Currency  string    `json:"currency"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCompanyResponse is returned after onboarding, with the seeded categories.
type CreateCompanyResponse struct {
	Company    CompanyResponse    `json:"company"`
	Categories []CategoryResponse `json:"categories"`
}

// ToCompanyResponse converts a domain Company entity to a CompanyResponse DTO.
func ToCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		TradeName: c.TradeName,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		Currency:  c.Currency,
		OwnerID:   c.OwnerID.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
