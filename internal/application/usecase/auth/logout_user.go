package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
// With AllDevices set every refresh token of the user is revoked.
type LogoutUserInput struct {
	UserID       uuid.UUID
	RefreshToken string
	AllDevices   bool
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token. Logging out is idempotent, so revocation
// failures are only logged.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if input.AllDevices && input.UserID != uuid.Nil {
		if err := uc.tokenService.InvalidateAllUserTokens(ctx, input.UserID); err != nil {
			slog.Warn("Failed to revoke user tokens", "user_id", input.UserID, "error", err)
		}
		return nil
	}

	if input.RefreshToken == "" {
		return nil
	}
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Debug("Refresh token already revoked", "error", err)
	}
	return nil
}
