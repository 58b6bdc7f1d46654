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

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByID retrieves a payment together with its parent expense.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentWithExpense, error) {
	var paymentModel model.ExpensePaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}

	return r.attachExpense(ctx, &paymentModel)
}

// FindByFilter retrieves payments matching the filter, ordered by due date.
// Filters on the parent expense (user, payer) go through a subquery so
// soft-deleted expenses drop their payments from listings.
func (r *paymentRepository) FindByFilter(ctx context.Context, filter adapter.PaymentFilter) ([]*entity.PaymentWithExpense, error) {
	expenseFilter := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("id").
		Where("user_id = ?", filter.UserID)

	if filter.PayerID != nil {
		expenseFilter = expenseFilter.Where(
			"buyer_id = ? OR payer_id = ? OR id IN (SELECT expense_id FROM expense_splits WHERE payer_id = ?)",
			*filter.PayerID, *filter.PayerID, *filter.PayerID,
		)
	}

	query := r.db.WithContext(ctx).
		Model(&model.ExpensePaymentModel{}).
		Where("expense_id IN (?)", expenseFilter)

	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Paid != nil {
		if *filter.Paid {
			query = query.Where("paid_at IS NOT NULL")
		} else {
			query = query.Where("paid_at IS NULL")
		}
	}

	var paymentModels []model.ExpensePaymentModel
	result := query.Order("due_date ASC").Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.PaymentWithExpense, len(paymentModels))
	for i := range paymentModels {
		withExpense, err := r.attachExpense(ctx, &paymentModels[i])
		if err != nil {
			return nil, err
		}
		payments[i] = withExpense
	}
	return payments, nil
}

// Update persists status changes on a payment.
func (r *paymentRepository) Update(ctx context.Context, payment *entity.ExpensePayment) error {
	paymentModel := model.ExpensePaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Save(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// attachExpense loads the payment's parent expense and its category.
func (r *paymentRepository) attachExpense(ctx context.Context, paymentModel *model.ExpensePaymentModel) (*entity.PaymentWithExpense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Unscoped().Where("id = ?", paymentModel.ExpenseID).First(&expenseModel)
	if result.Error != nil {
		return nil, result.Error
	}

	withExpense := &entity.PaymentWithExpense{
		Payment: paymentModel.ToEntity(),
		Expense: expenseModel.ToEntity(),
	}

	if expenseModel.CategoryID != nil {
		var categoryModel model.CategoryModel
		result := r.db.WithContext(ctx).Unscoped().Where("id = ?", *expenseModel.CategoryID).First(&categoryModel)
		if result.Error == nil {
			withExpense.Category = categoryModel.ToEntity()
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
	}

	return withExpense, nil
}
