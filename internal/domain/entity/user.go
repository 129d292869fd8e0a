// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user inside its company.
type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

// User represents an operator of the ERP. A user belongs to at most one company.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	CompanyID          *uuid.UUID
	Role               UserRole
	EmailNotifications bool
	TermsAcceptedAt    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		Role:               UserRoleMember,
		EmailNotifications: true,
		TermsAcceptedAt:    termsAcceptedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// HasCompany reports whether the user is bound to a company.
func (u *User) HasCompany() bool {
	return u.CompanyID != nil && *u.CompanyID != uuid.Nil
}
