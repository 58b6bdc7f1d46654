package payment

import (
	"context"
	"time"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// ListPaymentsInput represents the input for listing payments.
type ListPaymentsInput struct {
	Filter adapter.PaymentFilter
	Status *entity.PaymentStatus // Optional filter on the derived status
}

// ListPaymentsOutput represents the output of payment listing.
type ListPaymentsOutput struct {
	Payments []*entity.PaymentWithExpense
}

// ListPaymentsUseCase handles payment listing with derived statuses.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo}
}

// Execute lists payments matching the filter. Statuses are derived against
// the current clock before any status filter is applied, so OVERDUE and
// FUTURE behave like stored values from the caller's point of view.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	if err := validatePeriod(input.Filter.Month, input.Filter.Year); err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filtered := make([]*entity.PaymentWithExpense, 0, len(payments))
	for _, p := range payments {
		p.Payment.Status = EffectiveStatus(p.Payment, now)
		if input.Status != nil && p.Payment.Status != *input.Status {
			continue
		}
		filtered = append(filtered, p)
	}

	return &ListPaymentsOutput{Payments: filtered}, nil
}

func validatePeriod(month, year *int) error {
	if month != nil && (*month < 1 || *month > 12) {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidPaymentPeriod,
		)
	}
	if year != nil && *year < 1 {
		return domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentPeriod,
			"year must be positive",
			domainerror.ErrInvalidPaymentPeriod,
		)
	}
	return nil
}
