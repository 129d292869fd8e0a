package entity

import "github.com/google/uuid"

// Session is the per-request identity of the caller. It is built by the HTTP
// layer from the access token and the stored user, then handed explicitly to
// use cases. CompanyID is uuid.Nil until the user creates or joins a company.
type Session struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	CompanyID uuid.UUID
	Role      UserRole
}

// HasCompany reports whether the session is scoped to a tenant.
func (s *Session) HasCompany() bool {
	return s != nil && s.CompanyID != uuid.Nil
}

// CanManageCompany reports whether the caller may change company settings.
func (s *Session) CanManageCompany() bool {
	return s.Role == UserRoleOwner || s.Role == UserRoleAdmin
}
