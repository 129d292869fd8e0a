package dto

import (
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// CreateReminderRequest represents the request body for reminder creation.
type CreateReminderRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	RemindAt    time.Time `json:"remind_at" binding:"required"`
	EntryID     string    `json:"entry_id"`
}

// UpdateReminderRequest represents the request body for reminder update.
type UpdateReminderRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	RemindAt    *time.Time `json:"remind_at,omitempty"`
}

// ReminderResponse represents a reminder in API responses.
type ReminderResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RemindAt    time.Time  `json:"remind_at"`
	EntryID     *string    `json:"entry_id"`
	Done        bool       `json:"done"`
	NotifiedAt  *time.Time `json:"notified_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ReminderListResponse wraps a list of reminders.
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// NotificationResponse represents an in-app notification.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Link      string     `json:"link"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationListResponse wraps the notifications of the caller.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// MarkAllReadResponse reports how many notifications were marked as read.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// ToReminderResponse converts a domain Reminder entity to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		RemindAt:    r.RemindAt,
		EntryID:     uuidString(r.EntryID),
		Done:        r.Done,
		NotifiedAt:  r.NotifiedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// ToReminderResponses converts a list of reminders.
func ToReminderResponses(reminders []*entity.Reminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, ToReminderResponse(r))
	}
	return out
}

// ToNotificationResponses converts a list of notifications.
func ToNotificationResponses(notifications []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID.String(),
			Kind:      string(n.Kind),
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			Read:      n.IsRead(),
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
