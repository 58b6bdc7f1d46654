// Package creditcard contains credit card-related use cases.
package creditcard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// MaxCardNameLength is the maximum allowed length for card names.
const MaxCardNameLength = 50

// CreateCreditCardInput represents the input for credit card creation.
type CreateCreditCardInput struct {
	UserID     uuid.UUID
	Name       string
	ClosingDay int
	DueDay     int
	Limit      *decimal.Decimal // Optional
}

// CreateCreditCardOutput represents the output of credit card creation.
type CreateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// CreateCreditCardUseCase handles credit card creation logic.
type CreateCreditCardUseCase struct {
	creditCardRepo adapter.CreditCardRepository
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(creditCardRepo adapter.CreditCardRepository) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		creditCardRepo: creditCardRepo,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxCardNameLength {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidCardName,
			fmt.Sprintf("card name must be between 1 and %d characters", MaxCardNameLength),
			domainerror.ErrInvalidCardName,
		)
	}

	if err := validateBillingDays(input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

	if input.Limit != nil && !input.Limit.IsPositive() {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidCardLimit,
			"card limit must be greater than zero",
			domainerror.ErrInvalidCardLimit,
		)
	}

	exists, err := uc.creditCardRepo.ExistsByNameAndUser(ctx, name, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check credit card name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeCardNameExists,
			"a credit card with this name already exists",
			domainerror.ErrCreditCardNameExists,
		)
	}

	card := entity.NewCreditCard(input.UserID, name, input.ClosingDay, input.DueDay, input.Limit)

	if err := uc.creditCardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &CreateCreditCardOutput{CreditCard: card}, nil
}

// validateBillingDays enforces calendar day bounds for the billing cycle.
func validateBillingDays(closingDay, dueDay int) error {
	if closingDay < 1 || closingDay > 31 {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidClosingDay,
			"closing day must be between 1 and 31",
			domainerror.ErrInvalidClosingDay,
		)
	}
	if dueDay < 1 || dueDay > 31 {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}
	return nil
}
