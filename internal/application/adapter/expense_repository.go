// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	UserID       uuid.UUID
	Month        *int // 1-12; filters expenses with a payment in the period
	Year         *int
	Type         *entity.ExpenseType
	CategoryID   *uuid.UUID
	PayerID      *uuid.UUID // Matches buyer, single payer or split participant
	CreditCardID *uuid.UUID
	Search       string // Case-insensitive description/supplier match
}

// ExpensePagination defines pagination options.
type ExpensePagination struct {
	Page  int
	Limit int
}

// ExpenseRepository defines the interface for expense persistence operations.
// Writes that touch an expense together with its splits and payments are
// atomic: either every row is persisted or none is.
type ExpenseRepository interface {
	// Create persists an expense with its splits and payment schedule in a
	// single transaction.
	Create(ctx context.Context, expense *entity.Expense, splits []*entity.ExpenseSplit, payments []*entity.ExpensePayment) error

	// FindByID retrieves an expense by its ID without relations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByIDWithRelations retrieves an expense with its category, buyer,
	// splits and payments.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithRelations, error)

	// FindByFilter retrieves expenses based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination ExpensePagination) (*entity.ExpenseListResult, error)

	// Update persists expense changes and replaces its splits and unpaid
	// payments in a single transaction. Paid payments are preserved.
	Update(ctx context.Context, expense *entity.Expense, splits []*entity.ExpenseSplit, payments []*entity.ExpensePayment) error

	// Delete soft-deletes an expense and removes its splits and payments.
	Delete(ctx context.Context, id uuid.UUID) error
}
