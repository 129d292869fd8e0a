// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send delivers an email through the provider.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueuePasswordResetEmail queues a password reset email.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueueNotificationEmail queues the e-mail copy of a notification.
	QueueNotificationEmail(ctx context.Context, input QueueNotificationInput) error
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueNotificationInput represents the input for queueing a notification email.
type QueueNotificationInput struct {
	NotificationID string
	UserEmail      string
	UserName       string
	CompanyName    string
	Title          string
	Message        string
	Amount         string
	DueDate        string
	Link           string
}
