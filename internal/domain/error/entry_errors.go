package error

import "errors"

// Ledger entry domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found in the company.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryType is returned when the entry type is not revenue or expense.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrInvalidEntryAmount is returned when the amount is negative or zero.
	ErrInvalidEntryAmount = errors.New("invalid entry amount")

	// ErrInvalidEntryDate is returned when a date is missing or malformed.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrInvalidEntryStatus is returned when the status filter or value is unknown.
	ErrInvalidEntryStatus = errors.New("invalid entry status")

	// ErrEntryAlreadySettled is returned when settling an entry that was already paid or received.
	ErrEntryAlreadySettled = errors.New("entry already settled")

	// ErrEntryCancelled is returned when changing an entry that was cancelled.
	ErrEntryCancelled = errors.New("entry is cancelled")

	// ErrInvalidInstallments is returned when the installment count or mode is invalid.
	ErrInvalidInstallments = errors.New("invalid installments")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotesTooLong is returned when the notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrCategoryTypeMismatch is returned when the category type differs from the entry type.
	ErrCategoryTypeMismatch = errors.New("category type does not match entry type")
)

// EntryErrorCode defines error codes for ledger entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryType      EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryDate      EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryAmount    EntryErrorCode = "ENT-010003"
	ErrCodeEntryNotFound         EntryErrorCode = "ENT-010004"
	ErrCodeEntryCategoryNotFound EntryErrorCode = "ENT-010005"
	ErrCodeEntryPersonNotFound   EntryErrorCode = "ENT-010006"
	ErrCodeCategoryTypeMismatch  EntryErrorCode = "ENT-010007"
	ErrCodeDescriptionTooLong    EntryErrorCode = "ENT-010008"
	ErrCodeNotesTooLong          EntryErrorCode = "ENT-010009"
	ErrCodeMissingEntryFields    EntryErrorCode = "ENT-010010"
	ErrCodeInvalidInstallments   EntryErrorCode = "ENT-010011"
	ErrCodeInvalidEntryStatus    EntryErrorCode = "ENT-010012"

	// State errors (02XXXX)
	ErrCodeEntryAlreadySettled EntryErrorCode = "ENT-020001"
	ErrCodeEntryCancelled      EntryErrorCode = "ENT-020002"

	// Internal errors (99XXXX)
	ErrCodeEntryInternalError EntryErrorCode = "ENT-990001"
)

// EntryError represents a ledger entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
