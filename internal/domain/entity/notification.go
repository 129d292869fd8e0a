package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies what raised a notification.
type NotificationKind string

const (
	NotificationKindEntryDueSoon NotificationKind = "entry_due_soon"
	NotificationKindEntryOverdue NotificationKind = "entry_overdue"
	NotificationKindReminder     NotificationKind = "reminder"
	NotificationKindSystem       NotificationKind = "system"
)

// Notification is a message for one user of a company.
// DedupKey makes generation idempotent: one notification per key.
type Notification struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Kind      NotificationKind
	Title     string
	Message   string
	Link      string
	DedupKey  string
	ReadAt    *time.Time
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification.
func NewNotification(companyID, userID uuid.UUID, kind NotificationKind, title, message, link, dedupKey string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		Link:      link,
		DedupKey:  dedupKey,
		CreatedAt: time.Now().UTC(),
	}
}

// IsRead reports whether the notification was read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead stamps the notification as read if it is not already.
func (n *Notification) MarkRead(at time.Time) {
	if n.ReadAt != nil {
		return
	}
	stamp := at.UTC()
	n.ReadAt = &stamp
}
