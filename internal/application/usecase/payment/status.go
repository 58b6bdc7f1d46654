// Package payment contains payment-related use cases.
package payment

import (
	"time"

	"github.com/partilio/backend/internal/domain/entity"
)

// EffectiveStatus derives the status a payment presents at read time. The
// stored status only records whether a payment was settled; everything else
// is a function of the due date and the clock.
//
// A paid payment is always PAID. An unpaid payment whose due date has passed
// is OVERDUE. An unpaid payment due in the current calendar month (or later
// today) is PENDING. Anything further out is FUTURE.
func EffectiveStatus(p *entity.ExpensePayment, now time.Time) entity.PaymentStatus {
	if p.IsPaid() {
		return entity.PaymentStatusPaid
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(p.DueDate.Year(), p.DueDate.Month(), p.DueDate.Day(), 0, 0, 0, 0, now.Location())

	if due.Before(today) {
		return entity.PaymentStatusOverdue
	}
	if p.Year == now.Year() && time.Month(p.Month) == now.Month() {
		return entity.PaymentStatusPending
	}
	if due.Equal(today) {
		return entity.PaymentStatusPending
	}
	return entity.PaymentStatusFuture
}
