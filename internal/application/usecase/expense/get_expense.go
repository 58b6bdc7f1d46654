package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/application/usecase/payment"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/domain/entity"
)

// GetExpenseInput represents the input for retrieving a single expense.
type GetExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// GetExpenseOutput represents the output of expense retrieval.
type GetExpenseOutput struct {
	Expense *entity.ExpenseWithRelations
}

// GetExpenseUseCase handles retrieval of a single expense with relations.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves an expense owned by the user. Payment statuses are
// derived against the current clock.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	result, err := uc.expenseRepo.FindByIDWithRelations(ctx, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	if result.Expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotOwned,
			"expense does not belong to user",
			domainerror.ErrExpenseNotOwnedByUser,
		)
	}

	now := time.Now()
	for _, p := range result.Payments {
		p.Status = payment.EffectiveStatus(p, now)
	}

	return &GetExpenseOutput{Expense: result}, nil
}
