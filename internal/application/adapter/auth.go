package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is what login, register and refresh hand back to the client.
// ExpiresAt is the access token expiry.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenClaims identify the user behind a token. Company and role are not
// carried in the token; the session middleware reads them from the database.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService signs and checks the JWT pair and tracks refresh token
// revocation.
type TokenService interface {
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	// ValidateRefreshToken checks signature and expiry only.
	// Use IsRefreshTokenValid for revocation.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
	InvalidateRefreshToken(ctx context.Context, token string) error
	// InvalidateAllUserTokens signs the user out everywhere.
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// PasswordResetToken is a single-use token mailed by forgot-password.
type PasswordResetToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PasswordResetTokenService issues and consumes password reset tokens.
type PasswordResetTokenService interface {
	GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*PasswordResetToken, error)
	// ValidateResetToken fails for unknown, used or expired tokens.
	ValidateResetToken(ctx context.Context, token string) (*PasswordResetToken, error)
	InvalidateResetToken(ctx context.Context, token string) error
}

// PasswordService hashes and checks user passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword returns nil when password matches hashedPassword.
	VerifyPassword(hashedPassword, password string) error
	// ValidatePasswordStrength enforces the minimum password policy on
	// register and reset.
	ValidatePasswordStrength(password string) error
}
