// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// CreateIfAbsent stores the notification unless one with the same dedup key
	// exists. It reports whether the notification was created.
	CreateIfAbsent(ctx context.Context, notification *entity.Notification) (bool, error)

	// ListByUser retrieves the notifications of a user, newest first.
	ListByUser(ctx context.Context, companyID, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications of a user.
	CountUnread(ctx context.Context, companyID, userID uuid.UUID) (int64, error)

	// MarkRead marks one notification of the user as read.
	MarkRead(ctx context.Context, companyID, userID, id uuid.UUID, at time.Time) error

	// MarkAllRead marks every unread notification of the user as read and returns how many changed.
	MarkAllRead(ctx context.Context, companyID, userID uuid.UUID, at time.Time) (int64, error)
}
