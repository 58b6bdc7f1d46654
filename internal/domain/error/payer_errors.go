// Package error defines domain-specific errors for the Partilio application.
package error

import "errors"

// Payer domain errors.
var (
	// ErrPayerNotFound is returned when a payer is not found in the system.
	ErrPayerNotFound = errors.New("payer not found")

	// ErrPayerNotOwnedByUser is returned when the payer does not belong to the user.
	ErrPayerNotOwnedByUser = errors.New("payer does not belong to user")

	// ErrPayerNameExists is returned when a payer with the same name already exists.
	ErrPayerNameExists = errors.New("payer name already exists")

	// ErrPayerInUse is returned when deleting a payer still referenced by expenses or splits.
	ErrPayerInUse = errors.New("payer is referenced by expenses")

	// ErrInvalidPayerName is returned when the payer name is empty or too long.
	ErrInvalidPayerName = errors.New("invalid payer name")
)

// PayerErrorCode defines error codes for payer errors.
// Format: PYR-XXYYYY where XX is category and YYYY is specific error.
type PayerErrorCode string

const (
	ErrCodePayerNotFound    PayerErrorCode = "PYR-010001"
	ErrCodePayerNotOwned    PayerErrorCode = "PYR-010002"
	ErrCodePayerNameExists  PayerErrorCode = "PYR-010003"
	ErrCodePayerInUse       PayerErrorCode = "PYR-010004"
	ErrCodeInvalidPayerName PayerErrorCode = "PYR-010005"
)

// PayerError represents a payer error with code and message.
type PayerError struct {
	Code    PayerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PayerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PayerError) Unwrap() error {
	return e.Err
}

// NewPayerError creates a new PayerError with the given code and message.
func NewPayerError(code PayerErrorCode, message string, err error) *PayerError {
	return &PayerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
