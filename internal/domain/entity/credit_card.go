// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCard holds the billing-cycle parameters of a card. ClosingDay and
// DueDay are independent calendar days (1-31); purchases made on or after
// the closing day roll into the next billing cycle.
type CreditCard struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	ClosingDay int
	DueDay     int
	Limit      *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(userID uuid.UUID, name string, closingDay, dueDay int, limit *decimal.Decimal) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		ClosingDay: closingDay,
		DueDay:     dueDay,
		Limit:      limit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
