package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion. The repository cascades the
// delete to splits and payments, paid ones included.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute deletes an expense owned by the user.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	existing, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	if existing.UserID != input.UserID {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotOwned,
			"expense does not belong to user",
			domainerror.ErrExpenseNotOwnedByUser,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
