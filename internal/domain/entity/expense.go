// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseType represents how an expense recurs over time.
type ExpenseType string

const (
	ExpenseTypeOneTime           ExpenseType = "one_time"
	ExpenseTypeFixedRecurring    ExpenseType = "fixed_recurring"
	ExpenseTypeVariableRecurring ExpenseType = "variable_recurring"
	ExpenseTypeInstallment       ExpenseType = "installment"
	ExpenseTypeCreditCard        ExpenseType = "credit_card"
)

// DefaultRecurringMonths is the horizon generated for open-ended recurring
// expenses. Rolling extension is expected to be triggered externally.
const DefaultRecurringMonths = 12

// Expense is the central aggregate of the system. It owns its splits and
// payments: deleting an expense cascades to both.
type Expense struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Description          string
	Supplier             string
	TotalAmount          decimal.Decimal
	InstallmentAmount    decimal.Decimal
	Type                 ExpenseType
	StartDate            time.Time
	DueDay               int // Anchor day-of-month for due dates (1-31)
	PurchaseDate         *time.Time
	IsInstallment        bool
	NumberOfInstallments int
	NumberOfMonths       int // For recurring types; 0 means open-ended
	IsDivided            bool
	PayerID              *uuid.UUID // Single responsible payer when not divided
	BuyerID              uuid.UUID
	CategoryID           *uuid.UUID
	CreditCardID         *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	description, supplier string,
	totalAmount, installmentAmount decimal.Decimal,
	expenseType ExpenseType,
	startDate time.Time,
	dueDay int,
	buyerID uuid.UUID,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:                uuid.New(),
		UserID:            userID,
		Description:       description,
		Supplier:          supplier,
		TotalAmount:       totalAmount,
		InstallmentAmount: installmentAmount,
		Type:              expenseType,
		StartDate:         startDate,
		DueDay:            dueDay,
		BuyerID:           buyerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// EffectivePayerID returns the payer that bears the full amount of an
// undivided expense: the explicit payer when set, the buyer otherwise.
func (e *Expense) EffectivePayerID() uuid.UUID {
	if e.PayerID != nil {
		return *e.PayerID
	}
	return e.BuyerID
}

// ExpenseWithRelations bundles an expense with its owned and referenced rows.
type ExpenseWithRelations struct {
	Expense  *Expense
	Category *Category
	Buyer    *Payer
	Splits   []*ExpenseSplit
	Payments []*ExpensePayment
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*ExpenseWithRelations
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
