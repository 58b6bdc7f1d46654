// Package dashboard contains reporting use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/application/usecase/payment"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// MonthlySummary aggregates a month's payments by their derived status.
type MonthlySummary struct {
	Month        int
	Year         int
	Total        decimal.Decimal
	PaidTotal    decimal.Decimal
	PendingTotal decimal.Decimal
	OverdueTotal decimal.Decimal
	FutureTotal  decimal.Decimal
	PaymentCount int
	PaidCount    int
}

// GetMonthlySummaryOutput represents the output of the monthly summary.
type GetMonthlySummaryOutput struct {
	Summary *MonthlySummary
}

// GetMonthlySummaryUseCase computes the month's totals grouped by payment
// status. Statuses are derived in memory so the summary always agrees with
// what the payment listing shows.
type GetMonthlySummaryUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(paymentRepo adapter.PaymentRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{paymentRepo: paymentRepo}
}

// Execute computes the summary for the given period.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if err := ValidatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindByFilter(ctx, adapter.PaymentFilter{
		UserID: input.UserID,
		Month:  &input.Month,
		Year:   &input.Year,
	})
	if err != nil {
		return nil, err
	}

	summary := &MonthlySummary{
		Month:        input.Month,
		Year:         input.Year,
		Total:        decimal.Zero,
		PaidTotal:    decimal.Zero,
		PendingTotal: decimal.Zero,
		OverdueTotal: decimal.Zero,
		FutureTotal:  decimal.Zero,
	}

	now := time.Now()
	for _, row := range payments {
		summary.Total = summary.Total.Add(row.Payment.Amount)
		summary.PaymentCount++

		switch payment.EffectiveStatus(row.Payment, now) {
		case entity.PaymentStatusPaid:
			summary.PaidTotal = summary.PaidTotal.Add(row.Payment.Amount)
			summary.PaidCount++
		case entity.PaymentStatusOverdue:
			summary.OverdueTotal = summary.OverdueTotal.Add(row.Payment.Amount)
		case entity.PaymentStatusFuture:
			summary.FutureTotal = summary.FutureTotal.Add(row.Payment.Amount)
		default:
			summary.PendingTotal = summary.PendingTotal.Add(row.Payment.Amount)
		}
	}

	return &GetMonthlySummaryOutput{Summary: summary}, nil
}

// ValidatePeriod rejects month/year combinations outside the calendar.
func ValidatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDashboardPeriod,
			"period requires a month between 1 and 12 and a positive year",
			domainerror.ErrInvalidDashboardPeriod,
		)
	}
	return nil
}
