// Package error defines domain-specific errors for the Partilio application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseNotOwnedByUser is returned when the expense does not belong to the user.
	ErrExpenseNotOwnedByUser = errors.New("expense does not belong to user")

	// ErrInvalidExpenseType is returned when the expense type is not recognized.
	ErrInvalidExpenseType = errors.New("invalid expense type")

	// ErrInvalidExpenseAmount is returned when an amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be greater than zero")

	// ErrInvalidDueDay is declared with the credit card errors; expenses share it.

	// ErrInvalidInstallmentCount is returned when the installment count is zero or negative.
	ErrInvalidInstallmentCount = errors.New("number of installments must be greater than zero")

	// ErrInvalidMonthCount is returned when the recurring month count is negative.
	ErrInvalidMonthCount = errors.New("number of months must be greater than zero")

	// ErrInvalidStartDate is returned when the start date is missing or malformed.
	ErrInvalidStartDate = errors.New("invalid start date")

	// ErrMissingCreditCard is returned when a credit-card expense has no card reference.
	ErrMissingCreditCard = errors.New("credit card expense requires a credit card")

	// ErrBuyerNotFound is returned when the buyer payer reference is invalid.
	ErrBuyerNotFound = errors.New("buyer not found")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrMissingExpenseFields is returned when required fields are absent or malformed.
	ErrMissingExpenseFields = errors.New("missing or malformed expense fields")
)

// Split validation errors.
var (
	// ErrEmptySplits is returned when a divided expense carries no splits.
	ErrEmptySplits = errors.New("divided expense requires at least one split")

	// ErrDuplicateSplitPayer is returned when the same payer appears twice in a split set.
	ErrDuplicateSplitPayer = errors.New("duplicate payer in split set")

	// ErrInvalidSplitPercentage is returned when a percentage is zero or negative.
	ErrInvalidSplitPercentage = errors.New("split percentage must be greater than zero")

	// ErrSplitPercentageSum is returned when percentages do not sum to 100 within tolerance.
	ErrSplitPercentageSum = errors.New("split percentages must sum to 100")

	// ErrSplitsNotAllowed is returned when splits accompany an undivided expense.
	ErrSplitsNotAllowed = errors.New("splits are only allowed when the expense is divided")

	// ErrSplitPayerNotFound is returned when a split references an unknown payer.
	ErrSplitPayerNotFound = errors.New("split payer not found")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound         ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseNotOwned         ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseType      ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseAmount    ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseDueDay    ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidInstallmentCount ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidMonthCount       ExpenseErrorCode = "EXP-010007"
	ErrCodeInvalidStartDate        ExpenseErrorCode = "EXP-010008"
	ErrCodeMissingCreditCard       ExpenseErrorCode = "EXP-010009"
	ErrCodeExpenseBuyerNotFound    ExpenseErrorCode = "EXP-010010"
	ErrCodeExpenseDescTooLong      ExpenseErrorCode = "EXP-010011"
	ErrCodeMissingExpenseFields    ExpenseErrorCode = "EXP-010012"

	// Split errors (02XXXX)
	ErrCodeEmptySplits            ExpenseErrorCode = "EXP-020001"
	ErrCodeDuplicateSplitPayer    ExpenseErrorCode = "EXP-020002"
	ErrCodeInvalidSplitPercentage ExpenseErrorCode = "EXP-020003"
	ErrCodeSplitPercentageSum     ExpenseErrorCode = "EXP-020004"
	ErrCodeSplitPayerNotFound     ExpenseErrorCode = "EXP-020005"
	ErrCodeSplitsNotAllowed       ExpenseErrorCode = "EXP-020006"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
