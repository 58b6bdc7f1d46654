// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/domain/entity"
)

// PayerRepository defines the interface for payer persistence operations.
type PayerRepository interface {
	// Create creates a new payer in the database.
	Create(ctx context.Context, payer *entity.Payer) error

	// FindByID retrieves a payer by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payer, error)

	// FindByUser retrieves all payers for a given user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payer, error)

	// FindByIDs retrieves payers by their IDs, scoped to a user.
	FindByIDs(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Payer, error)

	// Update updates an existing payer in the database.
	Update(ctx context.Context, payer *entity.Payer) error

	// Delete soft-deletes a payer from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByNameAndUser checks if a payer with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// CountReferences counts non-deleted expenses and splits referencing the payer.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
}
