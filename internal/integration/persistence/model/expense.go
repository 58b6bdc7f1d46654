// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/partilio/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description          string          `gorm:"type:varchar(255);not null"`
	Supplier             string          `gorm:"type:varchar(255)"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type                 string          `gorm:"type:varchar(20);not null;index"`
	StartDate            time.Time       `gorm:"not null"`
	DueDay               int             `gorm:"not null"`
	PurchaseDate         *time.Time
	IsInstallment        bool       `gorm:"default:false"`
	NumberOfInstallments int        `gorm:"default:0"`
	NumberOfMonths       int        `gorm:"default:0"`
	IsDivided            bool       `gorm:"default:false"`
	PayerID              *uuid.UUID `gorm:"type:uuid;index"`
	BuyerID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID           *uuid.UUID `gorm:"type:uuid;index"`
	CreditCardID         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt            time.Time  `gorm:"not null"`
	UpdatedAt            time.Time  `gorm:"not null"`
	DeletedAt            gorm.DeletedAt `gorm:"index"` // Soft-delete support

	Splits   []ExpenseSplitModel   `gorm:"foreignKey:ExpenseID"`
	Payments []ExpensePaymentModel `gorm:"foreignKey:ExpenseID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Expense{
		ID:                   m.ID,
		UserID:               m.UserID,
		Description:          m.Description,
		Supplier:             m.Supplier,
		TotalAmount:          m.TotalAmount,
		InstallmentAmount:    m.InstallmentAmount,
		Type:                 entity.ExpenseType(m.Type),
		StartDate:            m.StartDate,
		DueDay:               m.DueDay,
		PurchaseDate:         m.PurchaseDate,
		IsInstallment:        m.IsInstallment,
		NumberOfInstallments: m.NumberOfInstallments,
		NumberOfMonths:       m.NumberOfMonths,
		IsDivided:            m.IsDivided,
		PayerID:              m.PayerID,
		BuyerID:              m.BuyerID,
		CategoryID:           m.CategoryID,
		CreditCardID:         m.CreditCardID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		DeletedAt:            deletedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
// Splits and payments are persisted separately.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	return &ExpenseModel{
		ID:                   expense.ID,
		UserID:               expense.UserID,
		Description:          expense.Description,
		Supplier:             expense.Supplier,
		TotalAmount:          expense.TotalAmount,
		InstallmentAmount:    expense.InstallmentAmount,
		Type:                 string(expense.Type),
		StartDate:            expense.StartDate,
		DueDay:               expense.DueDay,
		PurchaseDate:         expense.PurchaseDate,
		IsInstallment:        expense.IsInstallment,
		NumberOfInstallments: expense.NumberOfInstallments,
		NumberOfMonths:       expense.NumberOfMonths,
		IsDivided:            expense.IsDivided,
		PayerID:              expense.PayerID,
		BuyerID:              expense.BuyerID,
		CategoryID:           expense.CategoryID,
		CreditCardID:         expense.CreditCardID,
		CreatedAt:            expense.CreatedAt,
		UpdatedAt:            expense.UpdatedAt,
		DeletedAt:            deletedAt,
	}
}
