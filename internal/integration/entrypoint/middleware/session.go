package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// SessionMiddleware turns the authenticated user into an explicit
// entity.Session. It must run after AuthMiddleware.Authenticate.
type SessionMiddleware struct {
	userRepo adapter.UserRepository
}

// NewSessionMiddleware creates a new session middleware instance.
func NewSessionMiddleware(userRepo adapter.UserRepository) *SessionMiddleware {
	return &SessionMiddleware{
		userRepo: userRepo,
	}
}

// Load reads the user behind the token and stores the session in the context.
// The company is read from the database on every request, so a user who just
// created a company does not need a new token.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "User not authenticated", string(domainerror.ErrCodeMissingToken))
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainerror.ErrUserNotFound) {
				abort(c, http.StatusUnauthorized, "User not found", string(domainerror.ErrCodeUserNotFound))
				return
			}
			slog.Error("Failed to load session user", "user_id", userID, "error", err)
			abort(c, http.StatusInternalServerError, "An internal error occurred", "")
			return
		}

		session := entity.Session{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		}
		if user.CompanyID != nil {
			session.CompanyID = *user.CompanyID
		}
		c.Set(string(SessionKey), session)

		c.Next()
	}
}

// RequireCompany rejects callers that do not belong to a company yet.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok || !session.HasCompany() {
			abort(c, http.StatusForbidden, "User must belong to a company", string(domainerror.ErrCodeCompanyRequired))
			return
		}
		c.Next()
	}
}

// GetSession extracts the session stored by SessionMiddleware.Load.
func GetSession(c *gin.Context) (entity.Session, bool) {
	value, exists := c.Get(string(SessionKey))
	if !exists {
		return entity.Session{UserID: uuid.Nil}, false
	}
	session, ok := value.(entity.Session)
	return session, ok
}
