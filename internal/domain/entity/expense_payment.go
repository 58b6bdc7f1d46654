// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a monthly obligation.
type PaymentStatus string

const (
	PaymentStatusFuture  PaymentStatus = "FUTURE"
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// ExpensePayment is one monthly obligation derived from an expense.
// A payment is unique per (expense, month, year). The stored status only
// distinguishes PENDING from PAID; FUTURE and OVERDUE are derived against
// the current date on read.
type ExpensePayment struct {
	ID        uuid.UUID
	ExpenseID uuid.UUID
	Month     int
	Year      int
	Amount    decimal.Decimal
	DueDate   time.Time
	Status    PaymentStatus
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpensePayment creates a new ExpensePayment entity with PENDING status.
func NewExpensePayment(expenseID uuid.UUID, month, year int, amount decimal.Decimal, dueDate time.Time) *ExpensePayment {
	now := time.Now().UTC()

	return &ExpensePayment{
		ID:        uuid.New(),
		ExpenseID: expenseID,
		Month:     month,
		Year:      year,
		Amount:    amount,
		DueDate:   dueDate,
		Status:    PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkPaid transitions the payment to PAID at the given time.
func (p *ExpensePayment) MarkPaid(paidAt time.Time) {
	p.Status = PaymentStatusPaid
	p.PaidAt = &paidAt
	p.UpdatedAt = time.Now().UTC()
}

// RevertPayment undoes a payment, returning the obligation to PENDING.
func (p *ExpensePayment) RevertPayment() {
	p.Status = PaymentStatusPending
	p.PaidAt = nil
	p.UpdatedAt = time.Now().UTC()
}

// IsPaid reports whether the payment has been settled.
func (p *ExpensePayment) IsPaid() bool {
	return p.PaidAt != nil
}

// PaymentWithExpense bundles a payment with its parent expense for listings.
type PaymentWithExpense struct {
	Payment  *ExpensePayment
	Expense  *Expense
	Category *Category
}
