package error

import "errors"

// Reminder and notification domain errors.
var (
	// ErrReminderNotFound is returned when a reminder is not found for the user.
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrInvalidReminderTitle is returned when the title is empty or too long.
	ErrInvalidReminderTitle = errors.New("invalid reminder title")

	// ErrInvalidRemindAt is returned when the reminder time is missing.
	ErrInvalidRemindAt = errors.New("invalid reminder time")

	// ErrNotificationNotFound is returned when a notification is not found for the user.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrDuplicateNotification is returned when a notification with the same dedup key exists.
	ErrDuplicateNotification = errors.New("notification already exists")
)

// ReminderErrorCode defines error codes for reminder and notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	// Reminder errors (01XXXX)
	ErrCodeReminderNotFound     ReminderErrorCode = "NTF-010001"
	ErrCodeInvalidReminderTitle ReminderErrorCode = "NTF-010002"
	ErrCodeInvalidRemindAt      ReminderErrorCode = "NTF-010003"
	ErrCodeReminderEntryMissing ReminderErrorCode = "NTF-010004"

	// Notification errors (02XXXX)
	ErrCodeNotificationNotFound ReminderErrorCode = "NTF-020001"

	// Internal errors (99XXXX)
	ErrCodeReminderInternalError ReminderErrorCode = "NTF-990001"
)

// ReminderError represents a reminder error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
