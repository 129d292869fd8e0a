package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the outbox.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType represents the type of email template.
type EmailTemplateType string

const (
	TemplatePasswordReset EmailTemplateType = "password_reset"
	TemplateNotification  EmailTemplateType = "notification"
)

// emailRetryDelays is the wait before each retry, indexed by attempts made.
var emailRetryDelays = []time.Duration{0, 1 * time.Minute, 5 * time.Minute}

// EmailJob is an email waiting in the outbox.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]string
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending EmailJob scheduled for now.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]string) *EmailJob {
	now := time.Now().UTC()
	if data == nil {
		data = map[string]string{}
	}
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    len(emailRetryDelays),
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as taken by a worker.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery.
func (e *EmailJob) MarkSent(providerID string, at time.Time) {
	e.Status = EmailStatusSent
	e.ProviderID = providerID
	stamp := at.UTC()
	e.ProcessedAt = &stamp
}

// MarkFailed records a failed attempt. Permanent failures and jobs out of
// attempts are closed; others are rescheduled with backoff.
func (e *EmailJob) MarkFailed(err error, permanent bool, at time.Time) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		stamp := at.UTC()
		e.ProcessedAt = &stamp
		return
	}

	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if e.Attempts < len(emailRetryDelays) {
		delay = emailRetryDelays[e.Attempts]
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = at.UTC().Add(delay)
}
