// Package email queues, renders and delivers transactional e-mails.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

const productName = "ERP Rezende Tech"

// Service writes e-mails to the outbox. The Worker delivers them.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		"Redefinir sua senha - "+productName,
		map[string]string{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		},
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}
	return nil
}

// QueueNotificationEmail queues the e-mail copy of a notification.
// Relative links are resolved against the application base URL.
func (s *Service) QueueNotificationEmail(ctx context.Context, input adapter.QueueNotificationInput) error {
	link := input.Link
	if strings.HasPrefix(link, "/") {
		link = s.appBaseURL + link
	}

	subject := input.Title
	if input.CompanyName != "" {
		subject = fmt.Sprintf("[%s] %s", input.CompanyName, input.Title)
	}

	job := entity.NewEmailJob(
		entity.TemplateNotification,
		input.UserEmail,
		input.UserName,
		subject,
		map[string]string{
			"notification_id": input.NotificationID,
			"user_name":       input.UserName,
			"company_name":    input.CompanyName,
			"title":           input.Title,
			"message":         input.Message,
			"amount":          input.Amount,
			"due_date":        input.DueDate,
			"link":            link,
		},
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue notification email",
			err,
		)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
