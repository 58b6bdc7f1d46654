// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseSplit allocates a percentage share of an expense's installment
// amount to one payer. For a divided expense the split amounts always sum
// to the installment amount exactly; rounding drift is absorbed by the
// split with the largest percentage.
type ExpenseSplit struct {
	ID         uuid.UUID
	ExpenseID  uuid.UUID
	PayerID    uuid.UUID
	Percentage decimal.Decimal
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewExpenseSplit creates a new ExpenseSplit entity.
func NewExpenseSplit(expenseID, payerID uuid.UUID, percentage, amount decimal.Decimal) *ExpenseSplit {
	now := time.Now().UTC()

	return &ExpenseSplit{
		ID:         uuid.New(),
		ExpenseID:  expenseID,
		PayerID:    payerID,
		Percentage: percentage,
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
