package expense

import (
	"context"
	"time"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/application/usecase/payment"
	"github.com/partilio/backend/internal/domain/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Filter     adapter.ExpenseFilter
	Pagination adapter.ExpensePagination
}

// ListExpensesOutput represents the output of expense listing.
type ListExpensesOutput struct {
	Result *entity.ExpenseListResult
}

// ListExpensesUseCase handles filtered, paginated expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the user's expenses matching the filter. Pagination values
// outside the accepted range are normalized rather than rejected.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	pagination := input.Pagination
	if pagination.Page < 1 {
		pagination.Page = defaultPage
	}
	if pagination.Limit < 1 {
		pagination.Limit = defaultLimit
	}
	if pagination.Limit > maxLimit {
		pagination.Limit = maxLimit
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, input.Filter, pagination)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, e := range result.Expenses {
		for _, p := range e.Payments {
			p.Status = payment.EffectiveStatus(p, now)
		}
	}

	return &ListExpensesOutput{Result: result}, nil
}
