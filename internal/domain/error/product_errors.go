package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the company.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductSKUExists is returned when another product of the company already uses the SKU.
	ErrProductSKUExists = errors.New("product sku already exists")

	// ErrInvalidProductName is returned when the product name is empty or too long.
	ErrInvalidProductName = errors.New("invalid product name")

	// ErrInvalidProductPrice is returned when price or cost is negative.
	ErrInvalidProductPrice = errors.New("invalid product price")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	ErrCodeProductNotFound      ProductErrorCode = "PRD-010001"
	ErrCodeProductSKUExists     ProductErrorCode = "PRD-010002"
	ErrCodeInvalidProductName   ProductErrorCode = "PRD-010003"
	ErrCodeInvalidProductPrice  ProductErrorCode = "PRD-010004"
	ErrCodeInvalidProductStock  ProductErrorCode = "PRD-010005"
	ErrCodeInvalidProductSKU    ProductErrorCode = "PRD-010006"
	ErrCodeProductInternalError ProductErrorCode = "PRD-990001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
