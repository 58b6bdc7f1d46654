// Package error defines domain-specific errors for the Partilio application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category with the same name already exists.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNotOwnedByUser is returned when the category does not belong to the user.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to user")

	// ErrCategoryInUse is returned when deleting a category still referenced by expenses.
	ErrCategoryInUse = errors.New("category is referenced by expenses")

	// ErrInvalidCategoryName is returned when the category name is empty or too long.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrInvalidColorFormat is returned when a color is not a hex string.
	ErrInvalidColorFormat = errors.New("invalid color format")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound    CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists  CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotOwned    CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryInUse       CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidCategoryName CategoryErrorCode = "CAT-010005"
	ErrCodeInvalidColorFormat  CategoryErrorCode = "CAT-010006"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
