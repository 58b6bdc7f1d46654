// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/domain/entity"
)

// ExpensePaymentModel represents the expense_payments table in the database.
// A payment is unique per (expense, month, year).
type ExpensePaymentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_expense_period"`
	Month     int             `gorm:"not null;uniqueIndex:idx_expense_period"`
	Year      int             `gorm:"not null;uniqueIndex:idx_expense_period"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate   time.Time       `gorm:"not null;index"`
	Status    string          `gorm:"type:varchar(10);not null;default:'PENDING'"`
	PaidAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpensePaymentModel.
func (ExpensePaymentModel) TableName() string {
	return "expense_payments"
}

// ToEntity converts an ExpensePaymentModel to a domain ExpensePayment entity.
func (m *ExpensePaymentModel) ToEntity() *entity.ExpensePayment {
	return &entity.ExpensePayment{
		ID:        m.ID,
		ExpenseID: m.ExpenseID,
		Month:     m.Month,
		Year:      m.Year,
		Amount:    m.Amount,
		DueDate:   m.DueDate,
		Status:    entity.PaymentStatus(m.Status),
		PaidAt:    m.PaidAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ExpensePaymentFromEntity creates an ExpensePaymentModel from a domain ExpensePayment entity.
func ExpensePaymentFromEntity(payment *entity.ExpensePayment) *ExpensePaymentModel {
	return &ExpensePaymentModel{
		ID:        payment.ID,
		ExpenseID: payment.ExpenseID,
		Month:     payment.Month,
		Year:      payment.Year,
		Amount:    payment.Amount,
		DueDate:   payment.DueDate,
		Status:    string(payment.Status),
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
	}
}
