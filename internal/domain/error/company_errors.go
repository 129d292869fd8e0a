package error

import "errors"

// Company domain errors.
var (
	// ErrCompanyNotFound is returned when a company is not found.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrUserAlreadyHasCompany is returned when the user is already bound to a company.
	ErrUserAlreadyHasCompany = errors.New("user already belongs to a company")

	// ErrCompanyRequired is returned when the caller has no company yet.
	ErrCompanyRequired = errors.New("a company is required for this operation")

	// ErrInvalidCompanyName is returned when the company name is empty or too long.
	ErrInvalidCompanyName = errors.New("invalid company name")

	// ErrInvalidDocument is returned when a CPF/CNPJ document is malformed.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNotAuthorizedToManageCompany is returned when a member tries to change company settings.
	ErrNotAuthorizedToManageCompany = errors.New("not authorized to manage company")
)

// CompanyErrorCode defines error codes for company errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CompanyErrorCode string

const (
	// Validation and access errors (01XXXX)
	ErrCodeCompanyNotFound        CompanyErrorCode = "CMP-010001"
	ErrCodeUserAlreadyHasCompany  CompanyErrorCode = "CMP-010002"
	ErrCodeCompanyRequired        CompanyErrorCode = "CMP-010003"
	ErrCodeInvalidCompanyName     CompanyErrorCode = "CMP-010004"
	ErrCodeInvalidCompanyDocument CompanyErrorCode = "CMP-010005"
	ErrCodeNotAuthorizedCompany   CompanyErrorCode = "CMP-010006"

	// Internal errors (99XXXX)
	ErrCodeCompanyInternalError CompanyErrorCode = "CMP-990001"
)

// CompanyError represents a company error with code and message.
type CompanyError struct {
	Code    CompanyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CompanyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CompanyError) Unwrap() error {
	return e.Err
}

// NewCompanyError creates a new CompanyError with the given code and message.
func NewCompanyError(code CompanyErrorCode, message string, err error) *CompanyError {
	return &CompanyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
