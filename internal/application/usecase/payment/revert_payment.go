package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// RevertPaymentInput represents the input for reverting a paid payment.
type RevertPaymentInput struct {
	UserID    uuid.UUID
	PaymentID uuid.UUID
}

// RevertPaymentOutput represents the output of reverting a payment.
type RevertPaymentOutput struct {
	Payment *entity.ExpensePayment
}

// RevertPaymentUseCase handles undoing a settled payment.
type RevertPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewRevertPaymentUseCase creates a new RevertPaymentUseCase instance.
func NewRevertPaymentUseCase(paymentRepo adapter.PaymentRepository) *RevertPaymentUseCase {
	return &RevertPaymentUseCase{paymentRepo: paymentRepo}
}

// Execute reverts a paid payment to its unpaid state. The returned status is
// the derived one, so a reverted overdue payment comes back as OVERDUE.
func (uc *RevertPaymentUseCase) Execute(ctx context.Context, input RevertPaymentInput) (*RevertPaymentOutput, error) {
	row, err := loadOwnedPayment(ctx, uc.paymentRepo, input.PaymentID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !row.Payment.IsPaid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotPaid,
			"payment is not paid",
			domainerror.ErrPaymentNotPaid,
		)
	}

	row.Payment.RevertPayment()

	if err := uc.paymentRepo.Update(ctx, row.Payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	row.Payment.Status = EffectiveStatus(row.Payment, time.Now())

	return &RevertPaymentOutput{Payment: row.Payment}, nil
}
