package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
)

// GetPayerBalancesInput represents the input for payer balances.
type GetPayerBalancesInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// PayerBalance is one payer's obligations for the period. Total is the
// payer's share of every payment due in the period, PaidTotal the settled
// part, OpenTotal the remainder.
type PayerBalance struct {
	PayerID   uuid.UUID
	PayerName string
	Total     decimal.Decimal
	PaidTotal decimal.Decimal
	OpenTotal decimal.Decimal
}

// GetPayerBalancesOutput represents the output of payer balances.
type GetPayerBalancesOutput struct {
	Balances []*PayerBalance
}

// GetPayerBalancesUseCase computes each payer's share of the period. Divided
// expenses contribute split amounts, undivided ones the full payment amount
// attributed to the effective payer.
type GetPayerBalancesUseCase struct {
	dashboardRepo adapter.DashboardRepository
}

// NewGetPayerBalancesUseCase creates a new GetPayerBalancesUseCase instance.
func NewGetPayerBalancesUseCase(dashboardRepo adapter.DashboardRepository) *GetPayerBalancesUseCase {
	return &GetPayerBalancesUseCase{dashboardRepo: dashboardRepo}
}

// Execute computes the balances for the given period.
func (uc *GetPayerBalancesUseCase) Execute(ctx context.Context, input GetPayerBalancesInput) (*GetPayerBalancesOutput, error) {
	if err := ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	rows, err := uc.dashboardRepo.GetPayerTotals(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	balances := make([]*PayerBalance, len(rows))
	for i, row := range rows {
		balances[i] = &PayerBalance{
			PayerID:   row.PayerID,
			PayerName: row.PayerName,
			Total:     row.Total,
			PaidTotal: row.PaidTotal,
			OpenTotal: row.Total.Sub(row.PaidTotal),
		}
	}

	return &GetPayerBalancesOutput{Balances: balances}, nil
}
