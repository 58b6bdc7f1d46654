package payer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
)

// ListPayersInput represents the input for listing payers.
type ListPayersInput struct {
	UserID uuid.UUID
}

// ListPayersOutput represents the output of payer listing.
type ListPayersOutput struct {
	Payers []*entity.Payer
}

// ListPayersUseCase handles payer listing.
type ListPayersUseCase struct {
	payerRepo adapter.PayerRepository
}

// NewListPayersUseCase creates a new ListPayersUseCase instance.
func NewListPayersUseCase(payerRepo adapter.PayerRepository) *ListPayersUseCase {
	return &ListPayersUseCase{
		payerRepo: payerRepo,
	}
}

// Execute lists the user's payers ordered by name.
func (uc *ListPayersUseCase) Execute(ctx context.Context, input ListPayersInput) (*ListPayersOutput, error) {
	payers, err := uc.payerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payers: %w", err)
	}

	return &ListPayersOutput{Payers: payers}, nil
}
