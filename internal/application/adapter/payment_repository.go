// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/domain/entity"
)

// PaymentFilter defines filter options for listing payments.
type PaymentFilter struct {
	UserID  uuid.UUID
	Month   *int // 1-12
	Year    *int
	PayerID *uuid.UUID
	Paid    *bool // Filters on the stored PAID flag; derived statuses are applied on read
}

// PaymentRepository defines the interface for expense payment persistence operations.
type PaymentRepository interface {
	// FindByID retrieves a payment together with its parent expense.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentWithExpense, error)

	// FindByFilter retrieves payments matching the filter, ordered by due date.
	FindByFilter(ctx context.Context, filter PaymentFilter) ([]*entity.PaymentWithExpense, error)

	// Update persists status changes on a payment.
	Update(ctx context.Context, payment *entity.ExpensePayment) error
}
