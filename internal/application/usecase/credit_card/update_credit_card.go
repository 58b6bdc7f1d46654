package creditcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// UpdateCreditCardInput represents the input for credit card updates. Nil
// fields are left untouched. Changing billing days only affects schedules
// generated afterwards; existing payments keep their due dates.
type UpdateCreditCardInput struct {
	UserID       uuid.UUID
	CreditCardID uuid.UUID
	Name         *string
	ClosingDay   *int
	DueDay       *int
	Limit        *decimal.Decimal
}

// UpdateCreditCardOutput represents the output of credit card updates.
type UpdateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// UpdateCreditCardUseCase handles credit card update logic.
type UpdateCreditCardUseCase struct {
	creditCardRepo adapter.CreditCardRepository
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(creditCardRepo adapter.CreditCardRepository) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		creditCardRepo: creditCardRepo,
	}
}

// Execute performs the credit card update.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*UpdateCreditCardOutput, error) {
	card, err := uc.findOwnedCard(ctx, input.CreditCardID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxCardNameLength {
			return nil, domainerror.NewCreditCardError(
				domainerror.ErrCodeInvalidCardName,
				fmt.Sprintf("card name must be between 1 and %d characters", MaxCardNameLength),
				domainerror.ErrInvalidCardName,
			)
		}
		if name != card.Name {
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
		}
		card.Name = name
	}

	closingDay := card.ClosingDay
	if input.ClosingDay != nil {
		closingDay = *input.ClosingDay
	}
	dueDay := card.DueDay
	if input.DueDay != nil {
		dueDay = *input.DueDay
	}
	if err := validateBillingDays(closingDay, dueDay); err != nil {
		return nil, err
	}
	card.ClosingDay = closingDay
	card.DueDay = dueDay

	if input.Limit != nil {
		if !input.Limit.IsPositive() {
			return nil, domainerror.NewCreditCardError(
				domainerror.ErrCodeInvalidCardLimit,
				"card limit must be greater than zero",
				domainerror.ErrInvalidCardLimit,
			)
		}
		card.Limit = input.Limit
	}

	card.UpdatedAt = time.Now().UTC()

	if err := uc.creditCardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}

	return &UpdateCreditCardOutput{CreditCard: card}, nil
}

func (uc *UpdateCreditCardUseCase) findOwnedCard(ctx context.Context, cardID, userID uuid.UUID) (*entity.CreditCard, error) {
	card, err := uc.creditCardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNotFound,
			"credit card not found",
			domainerror.ErrCreditCardNotFound,
		)
	}
	if card.UserID != userID {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNotOwned,
			"credit card does not belong to user",
			domainerror.ErrCreditCardNotOwnedByUser,
		)
	}
	return card, nil
}
