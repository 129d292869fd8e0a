package error

import "errors"

// Email domain errors.
var (
	// ErrEmailQueueFailed is returned when an email cannot be written to the outbox.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrEmailSendFailed is returned when the provider rejects or fails a delivery.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrInvalidTemplate is returned when a job names an unknown template.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrTemplateRenderFailed is returned when email template rendering fails.
	ErrTemplateRenderFailed = errors.New("failed to render email template")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Outbox errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-010001"

	// Delivery errors (02XXXX)
	ErrCodeEmailSendFailed       EmailErrorCode = "EML-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020003"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate      EmailErrorCode = "EML-030001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EML-030002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether retrying the delivery cannot succeed.
func (e *EmailError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure || e.Code == ErrCodeInvalidTemplate || e.Code == ErrCodeTemplateRenderFailed
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
