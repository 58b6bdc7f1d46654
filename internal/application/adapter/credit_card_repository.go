// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/domain/entity"
)

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	// Create creates a new credit card in the database.
	Create(ctx context.Context, card *entity.CreditCard) error

	// FindByID retrieves a credit card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)

	// FindByUser retrieves all credit cards for a given user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error)

	// Update updates an existing credit card in the database.
	Update(ctx context.Context, card *entity.CreditCard) error

	// Delete soft-deletes a credit card from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountExpenses counts non-deleted expenses referencing the card.
	CountExpenses(ctx context.Context, id uuid.UUID) (int64, error)

	// ExistsByNameAndUser checks if a credit card with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)
}
