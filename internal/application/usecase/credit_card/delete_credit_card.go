package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// DeleteCreditCardInput represents the input for credit card deletion.
type DeleteCreditCardInput struct {
	UserID       uuid.UUID
	CreditCardID uuid.UUID
}

// DeleteCreditCardUseCase handles credit card deletion. Cards referenced by
// expenses cannot be deleted.
type DeleteCreditCardUseCase struct {
	creditCardRepo adapter.CreditCardRepository
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(creditCardRepo adapter.CreditCardRepository) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		creditCardRepo: creditCardRepo,
	}
}

// Execute performs the credit card deletion.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) error {
	card, err := uc.creditCardRepo.FindByID(ctx, input.CreditCardID)
	if err != nil {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNotFound,
			"credit card not found",
			domainerror.ErrCreditCardNotFound,
		)
	}
	if card.UserID != input.UserID {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNotOwned,
			"credit card does not belong to user",
			domainerror.ErrCreditCardNotOwnedByUser,
		)
	}

	count, err := uc.creditCardRepo.CountExpenses(ctx, input.CreditCardID)
	if err != nil {
		return fmt.Errorf("failed to count card expenses: %w", err)
	}
	if count > 0 {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardInUse,
			fmt.Sprintf("credit card is referenced by %d expense(s)", count),
			domainerror.ErrCreditCardInUse,
		)
	}

	if err := uc.creditCardRepo.Delete(ctx, input.CreditCardID); err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	return nil
}
