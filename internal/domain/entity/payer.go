// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payer represents a person who shares household expenses. The account
// holder registers one payer per member of the household; expenses
// reference payers both as buyers and as split participants.
type Payer struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewPayer creates a new Payer entity.
func NewPayer(userID uuid.UUID, name, color string) *Payer {
	now := time.Now().UTC()

	return &Payer{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
