// Package error defines domain-specific errors for the Partilio application.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found in the system.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentNotOwnedByUser is returned when the payment's expense does not belong to the user.
	ErrPaymentNotOwnedByUser = errors.New("payment does not belong to user")

	// ErrPaymentAlreadyPaid is returned when paying a payment that is already PAID.
	ErrPaymentAlreadyPaid = errors.New("payment is already paid")

	// ErrPaymentNotPaid is returned when reverting a payment that is not PAID.
	ErrPaymentNotPaid = errors.New("payment is not paid")

	// ErrInvalidPaymentPeriod is returned when the month/year filter is malformed.
	ErrInvalidPaymentPeriod = errors.New("invalid payment period")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	ErrCodePaymentNotFound      PaymentErrorCode = "PAY-010001"
	ErrCodePaymentNotOwned      PaymentErrorCode = "PAY-010002"
	ErrCodePaymentAlreadyPaid   PaymentErrorCode = "PAY-010003"
	ErrCodePaymentNotPaid       PaymentErrorCode = "PAY-010004"
	ErrCodeInvalidPaymentPeriod PaymentErrorCode = "PAY-010005"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
