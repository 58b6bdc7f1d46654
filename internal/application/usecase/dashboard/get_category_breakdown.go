package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// CategoryBreakdownItem is one category slice of a month's spending.
// Uncategorized expenses are grouped under a nil CategoryID.
type CategoryBreakdownItem struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Total        decimal.Decimal
	Percentage   decimal.Decimal
	PaymentCount int
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Items []*CategoryBreakdownItem
	Total decimal.Decimal
}

// GetCategoryBreakdownUseCase groups the month's payments by category.
type GetCategoryBreakdownUseCase struct {
	dashboardRepo adapter.DashboardRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(dashboardRepo adapter.DashboardRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{dashboardRepo: dashboardRepo}
}

// Execute computes the breakdown for the given period. Percentages are
// rounded to two places and may not sum to exactly 100.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if err := ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	rows, err := uc.dashboardRepo.GetCategoryTotals(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Total)
	}

	hundred := decimal.NewFromInt(100)
	items := make([]*CategoryBreakdownItem, len(rows))
	for i, row := range rows {
		item := &CategoryBreakdownItem{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        row.Total,
			Percentage:   decimal.Zero,
			PaymentCount: row.PaymentCount,
		}
		if total.IsPositive() {
			item.Percentage = row.Total.Mul(hundred).Div(total).Round(2)
		}
		items[i] = item
	}

	return &GetCategoryBreakdownOutput{Items: items, Total: total}, nil
}
