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

// PayPaymentInput represents the input for marking a payment as paid.
type PayPaymentInput struct {
	UserID    uuid.UUID
	PaymentID uuid.UUID
	PaidAt    *time.Time // Defaults to now when nil
}

// PayPaymentOutput represents the output of paying a payment.
type PayPaymentOutput struct {
	Payment *entity.ExpensePayment
}

// PayPaymentUseCase handles settling a monthly payment.
type PayPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewPayPaymentUseCase creates a new PayPaymentUseCase instance.
func NewPayPaymentUseCase(paymentRepo adapter.PaymentRepository) *PayPaymentUseCase {
	return &PayPaymentUseCase{paymentRepo: paymentRepo}
}

// Execute marks a payment as paid. Paying an already paid payment is an
// error so double-submissions surface instead of silently rewriting paidAt.
func (uc *PayPaymentUseCase) Execute(ctx context.Context, input PayPaymentInput) (*PayPaymentOutput, error) {
	row, err := loadOwnedPayment(ctx, uc.paymentRepo, input.PaymentID, input.UserID)
	if err != nil {
		return nil, err
	}

	if row.Payment.IsPaid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentAlreadyPaid,
			"payment is already paid",
			domainerror.ErrPaymentAlreadyPaid,
		)
	}

	paidAt := time.Now().UTC()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}
	row.Payment.MarkPaid(paidAt)

	if err := uc.paymentRepo.Update(ctx, row.Payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return &PayPaymentOutput{Payment: row.Payment}, nil
}

// loadOwnedPayment fetches a payment and enforces ownership through the
// parent expense.
func loadOwnedPayment(ctx context.Context, repo adapter.PaymentRepository, paymentID, userID uuid.UUID) (*entity.PaymentWithExpense, error) {
	row, err := repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotFound,
			"payment not found",
			domainerror.ErrPaymentNotFound,
		)
	}
	if row.Expense.UserID != userID {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentNotOwned,
			"payment does not belong to user",
			domainerror.ErrPaymentNotOwnedByUser,
		)
	}
	return row, nil
}
