package error

import "errors"

// Person domain errors.
var (
	// ErrPersonNotFound is returned when a person is not found in the company.
	ErrPersonNotFound = errors.New("person not found")

	// ErrInvalidPersonName is returned when the person name is empty or too long.
	ErrInvalidPersonName = errors.New("invalid person name")

	// ErrInvalidPersonRole is returned when a role is not customer, supplier or staff.
	ErrInvalidPersonRole = errors.New("invalid person role")
)

// PersonErrorCode defines error codes for person errors.
// Format: PER-XXYYYY where XX is category and YYYY is specific error.
type PersonErrorCode string

const (
	ErrCodePersonNotFound      PersonErrorCode = "PER-010001"
	ErrCodeInvalidPersonName   PersonErrorCode = "PER-010002"
	ErrCodeInvalidPersonRole   PersonErrorCode = "PER-010003"
	ErrCodeInvalidPersonEmail  PersonErrorCode = "PER-010004"
	ErrCodeInvalidPersonDoc    PersonErrorCode = "PER-010005"
	ErrCodePersonInternalError PersonErrorCode = "PER-990001"
)

// PersonError represents a person error with code and message.
type PersonError struct {
	Code    PersonErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PersonError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PersonError) Unwrap() error {
	return e.Err
}

// NewPersonError creates a new PersonError with the given code and message.
func NewPersonError(code PersonErrorCode, message string, err error) *PersonError {
	return &PersonError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
