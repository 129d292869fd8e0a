package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/notification"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/reminder"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// NotificationController handles reminder and notification endpoints.
type NotificationController struct {
	listRemindersUseCase     *reminder.ListRemindersUseCase
	createReminderUseCase    *reminder.CreateReminderUseCase
	updateReminderUseCase    *reminder.UpdateReminderUseCase
	completeReminderUseCase  *reminder.CompleteReminderUseCase
	deleteReminderUseCase    *reminder.DeleteReminderUseCase
	listNotificationsUseCase *notification.ListNotificationsUseCase
	markReadUseCase          *notification.MarkReadUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listRemindersUseCase *reminder.ListRemindersUseCase,
	createReminderUseCase *reminder.CreateReminderUseCase,
	updateReminderUseCase *reminder.UpdateReminderUseCase,
	completeReminderUseCase *reminder.CompleteReminderUseCase,
	deleteReminderUseCase *reminder.DeleteReminderUseCase,
	listNotificationsUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkReadUseCase,
) *NotificationController {
	return &NotificationController{
		listRemindersUseCase:     listRemindersUseCase,
		createReminderUseCase:    createReminderUseCase,
		updateReminderUseCase:    updateReminderUseCase,
		completeReminderUseCase:  completeReminderUseCase,
		deleteReminderUseCase:    deleteReminderUseCase,
		listNotificationsUseCase: listNotificationsUseCase,
		markReadUseCase:          markReadUseCase,
	}
}

// ListReminders handles GET /reminders requests.
func (c *NotificationController) ListReminders(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	reminders, err := c.listRemindersUseCase.Execute(ctx.Request.Context(), session, queryBool(ctx, "include_done"))
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReminderListResponse{
		Reminders: dto.ToReminderResponses(reminders),
	})
}

// CreateReminder handles POST /reminders requests.
func (c *NotificationController) CreateReminder(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidReminderTitle))
		return
	}

	entryID, err := dto.ParseOptionalUUID(req.EntryID)
	if err != nil {
		badRequest(ctx, "Invalid entry_id format", string(domainerror.ErrCodeReminderEntryMissing))
		return
	}

	result, err := c.createReminderUseCase.Execute(ctx.Request.Context(), reminder.CreateReminderInput{
		Session:     session,
		Title:       req.Title,
		Description: req.Description,
		RemindAt:    req.RemindAt,
		EntryID:     entryID,
	})
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReminderResponse(result))
}

// UpdateReminder handles PATCH /reminders/:id requests.
func (c *NotificationController) UpdateReminder(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeReminderNotFound))
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidReminderTitle))
		return
	}

	result, err := c.updateReminderUseCase.Execute(ctx.Request.Context(), reminder.UpdateReminderInput{
		Session:     session,
		ReminderID:  id,
		Title:       req.Title,
		Description: req.Description,
		RemindAt:    req.RemindAt,
	})
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(result))
}

// CompleteReminder handles POST /reminders/:id/complete requests.
func (c *NotificationController) CompleteReminder(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeReminderNotFound))
	if !ok {
		return
	}

	result, err := c.completeReminderUseCase.Execute(ctx.Request.Context(), session, id)
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(result))
}

// DeleteReminder handles DELETE /reminders/:id requests.
func (c *NotificationController) DeleteReminder(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeReminderNotFound))
	if !ok {
		return
	}

	if err := c.deleteReminderUseCase.Execute(ctx.Request.Context(), session, id); err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListNotifications handles GET /notifications requests.
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	output, err := c.listNotificationsUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		Session:    session,
		UnreadOnly: queryBool(ctx, "unread"),
		Limit:      queryInt(ctx, "limit"),
	})
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NotificationListResponse{
		Notifications: dto.ToNotificationResponses(output.Notifications),
		UnreadCount:   output.UnreadCount,
	})
}

// MarkRead handles POST /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeNotificationNotFound))
	if !ok {
		return
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), session, id); err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all requests.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	updated, err := c.markReadUseCase.ExecuteAll(ctx.Request.Context(), session)
	if err != nil {
		c.handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MarkAllReadResponse{
		Updated: updated,
	})
}

func (c *NotificationController) handleReminderError(ctx *gin.Context, err error) {
	var reminderErr *domainerror.ReminderError
	if errors.As(err, &reminderErr) {
		status := http.StatusBadRequest
		switch reminderErr.Code {
		case domainerror.ErrCodeReminderNotFound,
			domainerror.ErrCodeNotificationNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeReminderInternalError:
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reminderErr.Message,
			Code:  string(reminderErr.Code),
		})
		return
	}

	internalError(ctx, err)
}
