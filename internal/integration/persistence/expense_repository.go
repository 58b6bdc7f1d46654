// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create persists an expense with its splits and payment schedule in a
// single transaction.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense, splits []*entity.ExpenseSplit, payments []*entity.ExpensePayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
			return err
		}

		for _, split := range splits {
			if err := tx.Create(model.ExpenseSplitFromEntity(split)).Error; err != nil {
				return err
			}
		}

		for _, payment := range payments {
			if err := tx.Create(model.ExpensePaymentFromEntity(payment)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID retrieves an expense by its ID without relations.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByIDWithRelations retrieves an expense with its category, buyer,
// splits and payments.
func (r *expenseRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithRelations, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC")
		}).
		Where("id = ?", id).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}

	return r.buildRelations(ctx, &expenseModel)
}

// FindByFilter retrieves expenses based on filter criteria with pagination.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).Where("user_id = ?", filter.UserID)

	if filter.Month != nil && filter.Year != nil {
		query = query.Where(
			"id IN (SELECT expense_id FROM expense_payments WHERE month = ? AND year = ?)",
			*filter.Month, *filter.Year,
		)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.CreditCardID != nil {
		query = query.Where("credit_card_id = ?", *filter.CreditCardID)
	}
	if filter.PayerID != nil {
		query = query.Where(
			"buyer_id = ? OR payer_id = ? OR id IN (SELECT expense_id FROM expense_splits WHERE payer_id = ?)",
			*filter.PayerID, *filter.PayerID, *filter.PayerID,
		)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(supplier) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var expenseModels []model.ExpenseModel
	offset := (pagination.Page - 1) * pagination.Limit
	result := query.
		Preload("Splits").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC")
		}).
		Order("start_date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithRelations, len(expenseModels))
	for i := range expenseModels {
		withRelations, err := r.buildRelations(ctx, &expenseModels[i])
		if err != nil {
			return nil, err
		}
		expenses[i] = withRelations
	}

	totalPages := int(total) / pagination.Limit
	if int(total)%pagination.Limit > 0 {
		totalPages++
	}

	return &entity.ExpenseListResult{
		Expenses:   expenses,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update persists expense changes and replaces its splits and unpaid
// payments in a single transaction. Months already settled keep their paid
// payment; the regenerated row for such a month is skipped.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense, splits []*entity.ExpenseSplit, payments []*entity.ExpensePayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.ExpenseFromEntity(expense)).Error; err != nil {
			return err
		}

		if err := tx.Where("expense_id = ?", expense.ID).Delete(&model.ExpenseSplitModel{}).Error; err != nil {
			return err
		}
		for _, split := range splits {
			if err := tx.Create(model.ExpenseSplitFromEntity(split)).Error; err != nil {
				return err
			}
		}

		var paidModels []model.ExpensePaymentModel
		if err := tx.Where("expense_id = ? AND paid_at IS NOT NULL", expense.ID).Find(&paidModels).Error; err != nil {
			return err
		}
		paidPeriods := make(map[[2]int]bool, len(paidModels))
		for _, pm := range paidModels {
			paidPeriods[[2]int{pm.Month, pm.Year}] = true
		}

		if err := tx.Where("expense_id = ? AND paid_at IS NULL", expense.ID).Delete(&model.ExpensePaymentModel{}).Error; err != nil {
			return err
		}

		for _, payment := range payments {
			if paidPeriods[[2]int{payment.Month, payment.Year}] {
				continue
			}
			if err := tx.Create(model.ExpensePaymentFromEntity(payment)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete soft-deletes an expense and removes its splits and payments.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expense_id = ?", id).Delete(&model.ExpenseSplitModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("expense_id = ?", id).Delete(&model.ExpensePaymentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ExpenseModel{}, "id = ?", id).Error
	})
}

// buildRelations assembles the aggregate view: owned splits and payments
// come preloaded on the model, referenced category and buyer are fetched.
func (r *expenseRepository) buildRelations(ctx context.Context, expenseModel *model.ExpenseModel) (*entity.ExpenseWithRelations, error) {
	withRelations := &entity.ExpenseWithRelations{
		Expense:  expenseModel.ToEntity(),
		Splits:   make([]*entity.ExpenseSplit, len(expenseModel.Splits)),
		Payments: make([]*entity.ExpensePayment, len(expenseModel.Payments)),
	}

	for i := range expenseModel.Splits {
		withRelations.Splits[i] = expenseModel.Splits[i].ToEntity()
	}
	for i := range expenseModel.Payments {
		withRelations.Payments[i] = expenseModel.Payments[i].ToEntity()
	}

	if expenseModel.CategoryID != nil {
		var categoryModel model.CategoryModel
		result := r.db.WithContext(ctx).Unscoped().Where("id = ?", *expenseModel.CategoryID).First(&categoryModel)
		if result.Error == nil {
			withRelations.Category = categoryModel.ToEntity()
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
	}

	var buyerModel model.PayerModel
	result := r.db.WithContext(ctx).Unscoped().Where("id = ?", expenseModel.BuyerID).First(&buyerModel)
	if result.Error == nil {
		withRelations.Buyer = buyerModel.ToEntity()
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	return withRelations, nil
}
