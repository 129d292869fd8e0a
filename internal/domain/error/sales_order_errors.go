package error

import "errors"

// Sales order domain errors.
var (
	// ErrSalesOrderNotFound is returned when a sales order is not found in the company.
	ErrSalesOrderNotFound = errors.New("sales order not found")

	// ErrInvalidStatusTransition is returned when the requested status change is not allowed.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrSalesOrderNotDraft is returned when deleting an order that is no longer a draft.
	ErrSalesOrderNotDraft = errors.New("only draft orders can be deleted")

	// ErrEmptySalesOrder is returned when an order has no items.
	ErrEmptySalesOrder = errors.New("sales order must have at least one item")

	// ErrInvalidOrderItem is returned when an item has a non-positive quantity or negative price.
	ErrInvalidOrderItem = errors.New("invalid order item")
)

// SalesOrderErrorCode defines error codes for sales order errors.
// Format: SOR-XXYYYY where XX is category and YYYY is specific error.
type SalesOrderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSalesOrderNotFound    SalesOrderErrorCode = "SOR-010001"
	ErrCodeEmptySalesOrder       SalesOrderErrorCode = "SOR-010002"
	ErrCodeInvalidOrderItem      SalesOrderErrorCode = "SOR-010003"
	ErrCodeInvalidOrderDate      SalesOrderErrorCode = "SOR-010004"
	ErrCodeInvalidOrderStatus    SalesOrderErrorCode = "SOR-010005"
	ErrCodeOrderCustomerNotFound SalesOrderErrorCode = "SOR-010006"
	ErrCodeOrderProductNotFound  SalesOrderErrorCode = "SOR-010007"
	ErrCodeInvalidOrderDiscount  SalesOrderErrorCode = "SOR-010008"

	// State errors (02XXXX)
	ErrCodeInvalidStatusTransition SalesOrderErrorCode = "SOR-020001"
	ErrCodeSalesOrderNotDraft      SalesOrderErrorCode = "SOR-020002"

	// Internal errors (99XXXX)
	ErrCodeSalesOrderInternalError SalesOrderErrorCode = "SOR-990001"
)

// SalesOrderError represents a sales order error with code and message.
type SalesOrderError struct {
	Code    SalesOrderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SalesOrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SalesOrderError) Unwrap() error {
	return e.Err
}

// NewSalesOrderError creates a new SalesOrderError with the given code and message.
func NewSalesOrderError(code SalesOrderErrorCode, message string, err error) *SalesOrderError {
	return &SalesOrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
