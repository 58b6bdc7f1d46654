package payer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// DeletePayerInput represents the input for payer deletion.
type DeletePayerInput struct {
	UserID  uuid.UUID
	PayerID uuid.UUID
}

// DeletePayerUseCase handles payer deletion. Payers referenced by expenses,
// as buyer, single payer or split participant, cannot be deleted.
type DeletePayerUseCase struct {
	payerRepo adapter.PayerRepository
}

// NewDeletePayerUseCase creates a new DeletePayerUseCase instance.
func NewDeletePayerUseCase(payerRepo adapter.PayerRepository) *DeletePayerUseCase {
	return &DeletePayerUseCase{
		payerRepo: payerRepo,
	}
}

// Execute performs the payer deletion.
func (uc *DeletePayerUseCase) Execute(ctx context.Context, input DeletePayerInput) error {
	payer, err := uc.payerRepo.FindByID(ctx, input.PayerID)
	if err != nil {
		return domainerror.NewPayerError(
			domainerror.ErrCodePayerNotFound,
			"payer not found",
			domainerror.ErrPayerNotFound,
		)
	}
	if payer.UserID != input.UserID {
		return domainerror.NewPayerError(
			domainerror.ErrCodePayerNotOwned,
			"payer does not belong to user",
			domainerror.ErrPayerNotOwnedByUser,
		)
	}

	count, err := uc.payerRepo.CountReferences(ctx, input.PayerID)
	if err != nil {
		return fmt.Errorf("failed to count payer references: %w", err)
	}
	if count > 0 {
		return domainerror.NewPayerError(
			domainerror.ErrCodePayerInUse,
			fmt.Sprintf("payer is referenced by %d expense(s) or split(s)", count),
			domainerror.ErrPayerInUse,
		)
	}

	if err := uc.payerRepo.Delete(ctx, input.PayerID); err != nil {
		return fmt.Errorf("failed to delete payer: %w", err)
	}

	return nil
}
