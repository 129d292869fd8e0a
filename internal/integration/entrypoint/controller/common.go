package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/middleware"
)

// requireSession returns the caller's session or writes a 401 response.
func requireSession(ctx *gin.Context) (entity.Session, bool) {
	session, ok := middleware.GetSession(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return entity.Session{}, false
	}
	return session, true
}

// pathID parses the :id path parameter or writes a 400 response with code.
func pathID(ctx *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// internalError logs err and writes the generic 500 response.
func internalError(ctx *gin.Context, err error) {
	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func queryInt(ctx *gin.Context, name string) int {
	v, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return v
}

func queryBool(ctx *gin.Context, name string) bool {
	v, err := strconv.ParseBool(ctx.Query(name))
	return err == nil && v
}
