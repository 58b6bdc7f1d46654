// Package error defines domain-specific errors for the Partilio application.
package error

import "errors"

// Credit card domain errors.
var (
	// ErrCreditCardNotFound is returned when a credit card is not found in the system.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrCreditCardNotOwnedByUser is returned when the credit card does not belong to the user.
	ErrCreditCardNotOwnedByUser = errors.New("credit card does not belong to user")

	// ErrInvalidClosingDay is returned when the closing day is outside 1-31.
	ErrInvalidClosingDay = errors.New("closing day must be between 1 and 31")

	// ErrInvalidDueDay is returned when the due day is outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidCardLimit is returned when the card limit is not positive.
	ErrInvalidCardLimit = errors.New("card limit must be greater than zero")

	// ErrCreditCardInUse is returned when deleting a card still referenced by expenses.
	ErrCreditCardInUse = errors.New("credit card is referenced by expenses")

	// ErrInvalidCardName is returned when the card name is empty or too long.
	ErrInvalidCardName = errors.New("invalid card name")

	// ErrCreditCardNameExists is returned when the user already has a card with the name.
	ErrCreditCardNameExists = errors.New("credit card name already exists")
)

// CreditCardErrorCode defines error codes for credit card errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CreditCardErrorCode string

const (
	ErrCodeCreditCardNotFound CreditCardErrorCode = "CRD-010001"
	ErrCodeCreditCardNotOwned CreditCardErrorCode = "CRD-010002"
	ErrCodeInvalidClosingDay  CreditCardErrorCode = "CRD-010003"
	ErrCodeInvalidDueDay      CreditCardErrorCode = "CRD-010004"
	ErrCodeInvalidCardLimit   CreditCardErrorCode = "CRD-010005"
	ErrCodeCreditCardInUse    CreditCardErrorCode = "CRD-010006"
	ErrCodeInvalidCardName    CreditCardErrorCode = "CRD-010007"
	ErrCodeCardNameExists     CreditCardErrorCode = "CRD-010008"
)

// CreditCardError represents a credit card error with code and message.
type CreditCardError struct {
	Code    CreditCardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CreditCardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CreditCardError) Unwrap() error {
	return e.Err
}

// NewCreditCardError creates a new CreditCardError with the given code and message.
func NewCreditCardError(code CreditCardErrorCode, message string, err error) *CreditCardError {
	return &CreditCardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
