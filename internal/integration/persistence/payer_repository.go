// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/persistence/model"
)

// payerRepository implements the adapter.PayerRepository interface.
type payerRepository struct {
	db *gorm.DB
}

// NewPayerRepository creates a new payer repository instance.
func NewPayerRepository(db *gorm.DB) adapter.PayerRepository {
	return &payerRepository{
		db: db,
	}
}

// Create creates a new payer in the database.
func (r *payerRepository) Create(ctx context.Context, payer *entity.Payer) error {
	payerModel := model.PayerFromEntity(payer)
	result := r.db.WithContext(ctx).Create(payerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a payer by its ID.
func (r *payerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payer, error) {
	var payerModel model.PayerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&payerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPayerNotFound
		}
		return nil, result.Error
	}
	return payerModel.ToEntity(), nil
}

// FindByUser retrieves all payers for a given user, ordered by name.
func (r *payerRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payer, error) {
	var payerModels []model.PayerModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&payerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payers := make([]*entity.Payer, len(payerModels))
	for i, pm := range payerModels {
		payers[i] = pm.ToEntity()
	}
	return payers, nil
}

// FindByIDs retrieves the payers with the given IDs belonging to the user.
// Missing IDs are simply absent from the result.
func (r *payerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Payer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var payerModels []model.PayerModel
	result := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Find(&payerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payers := make([]*entity.Payer, len(payerModels))
	for i, pm := range payerModels {
		payers[i] = pm.ToEntity()
	}
	return payers, nil
}

// Update updates an existing payer in the database.
func (r *payerRepository) Update(ctx context.Context, payer *entity.Payer) error {
	payerModel := model.PayerFromEntity(payer)
	result := r.db.WithContext(ctx).Save(payerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a payer from the database.
func (r *payerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PayerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByNameAndUser checks if a payer with the given name exists for the user.
func (r *payerRepository) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PayerModel{}).
		Where("name = ? AND user_id = ?", name, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CountReferences counts expenses and splits referencing the payer.
func (r *payerRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var expenseCount int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("buyer_id = ? OR payer_id = ?", id, id).
		Count(&expenseCount)
	if result.Error != nil {
		return 0, result.Error
	}

	var splitCount int64
	result = r.db.WithContext(ctx).
		Model(&model.ExpenseSplitModel{}).
		Where("payer_id = ?", id).
		Count(&splitCount)
	if result.Error != nil {
		return 0, result.Error
	}

	return expenseCount + splitCount, nil
}
