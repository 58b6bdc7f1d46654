package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
)

// ListCreditCardsInput represents the input for listing credit cards.
type ListCreditCardsInput struct {
	UserID uuid.UUID
}

// ListCreditCardsOutput represents the output of credit card listing.
type ListCreditCardsOutput struct {
	CreditCards []*entity.CreditCard
}

// ListCreditCardsUseCase handles credit card listing.
type ListCreditCardsUseCase struct {
	creditCardRepo adapter.CreditCardRepository
}

// NewListCreditCardsUseCase creates a new ListCreditCardsUseCase instance.
func NewListCreditCardsUseCase(creditCardRepo adapter.CreditCardRepository) *ListCreditCardsUseCase {
	return &ListCreditCardsUseCase{
		creditCardRepo: creditCardRepo,
	}
}

// Execute lists the user's credit cards ordered by name.
func (uc *ListCreditCardsUseCase) Execute(ctx context.Context, input ListCreditCardsInput) (*ListCreditCardsOutput, error) {
	cards, err := uc.creditCardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}

	return &ListCreditCardsOutput{CreditCards: cards}, nil
}
