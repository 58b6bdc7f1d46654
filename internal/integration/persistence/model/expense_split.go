// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/domain/entity"
)

// ExpenseSplitModel represents the expense_splits table in the database.
// Splits are hard-deleted with their parent expense.
type ExpenseSplitModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Percentage decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseSplitModel.
func (ExpenseSplitModel) TableName() string {
	return "expense_splits"
}

// ToEntity converts an ExpenseSplitModel to a domain ExpenseSplit entity.
func (m *ExpenseSplitModel) ToEntity() *entity.ExpenseSplit {
	return &entity.ExpenseSplit{
		ID:         m.ID,
		ExpenseID:  m.ExpenseID,
		PayerID:    m.PayerID,
		Percentage: m.Percentage,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ExpenseSplitFromEntity creates an ExpenseSplitModel from a domain ExpenseSplit entity.
func ExpenseSplitFromEntity(split *entity.ExpenseSplit) *ExpenseSplitModel {
	return &ExpenseSplitModel{
		ID:         split.ID,
		ExpenseID:  split.ExpenseID,
		PayerID:    split.PayerID,
		Percentage: split.Percentage,
		Amount:     split.Amount,
		CreatedAt:  split.CreatedAt,
		UpdatedAt:  split.UpdatedAt,
	}
}
