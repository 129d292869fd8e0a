// Package notification contains notification use cases and the worker that
// raises notifications for due entries and reminders.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	Session    entity.Session
	UnreadOnly bool
	Limit      int
}

// ListNotificationsOutput holds the notifications and the unread counter.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int64
}

// ListNotificationsUseCase lists the notifications of the session user.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute performs the listing.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	companyID, userID := input.Session.CompanyID, input.Session.UserID
	notifications, err := uc.notificationRepo.ListByUser(ctx, companyID, userID, input.UnreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := uc.notificationRepo.CountUnread(ctx, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkReadUseCase marks notifications of the session user as read.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
	now              func() time.Time
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// Execute marks one notification as read.
func (uc *MarkReadUseCase) Execute(ctx context.Context, session entity.Session, id uuid.UUID) error {
	err := uc.notificationRepo.MarkRead(ctx, session.CompanyID, session.UserID, id, uc.now())
	if err != nil {
		if errors.Is(err, domainerror.ErrNotificationNotFound) {
			return domainerror.NewReminderError(
				domainerror.ErrCodeNotificationNotFound,
				"notification not found",
				domainerror.ErrNotificationNotFound,
			)
		}
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

// ExecuteAll marks every unread notification as read and returns how many changed.
func (uc *MarkReadUseCase) ExecuteAll(ctx context.Context, session entity.Session) (int64, error) {
	count, err := uc.notificationRepo.MarkAllRead(ctx, session.CompanyID, session.UserID, uc.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return count, nil
}
