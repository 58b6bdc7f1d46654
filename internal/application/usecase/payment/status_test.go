package payment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/domain/entity"
)

func newPayment(month, year int, dueDate time.Time) *entity.ExpensePayment {
	return entity.NewExpensePayment(uuid.New(), month, year, decimal.NewFromInt(100), dueDate)
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payment *entity.ExpensePayment
		want    entity.PaymentStatus
	}{
		{
			name:    "due earlier this month is overdue",
			payment: newPayment(6, 2025, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)),
			want:    entity.PaymentStatusOverdue,
		},
		{
			name:    "due in a past month is overdue",
			payment: newPayment(4, 2025, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)),
			want:    entity.PaymentStatusOverdue,
		},
		{
			name:    "due later this month is pending",
			payment: newPayment(6, 2025, time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC)),
			want:    entity.PaymentStatusPending,
		},
		{
			name:    "due today is pending",
			payment: newPayment(6, 2025, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)),
			want:    entity.PaymentStatusPending,
		},
		{
			name:    "due next month is future",
			payment: newPayment(7, 2025, time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC)),
			want:    entity.PaymentStatusFuture,
		},
		{
			name:    "due next year is future",
			payment: newPayment(1, 2026, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)),
			want:    entity.PaymentStatusFuture,
		},
		{
			name:    "same month of a previous year is overdue",
			payment: newPayment(6, 2024, time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC)),
			want:    entity.PaymentStatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveStatus(tt.payment, now); got != tt.want {
				t.Errorf("EffectiveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEffectiveStatus_PaidWinsOverEverything(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	p := newPayment(1, 2025, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	p.MarkPaid(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))

	if got := EffectiveStatus(p, now); got != entity.PaymentStatusPaid {
		t.Errorf("EffectiveStatus() = %s, want PAID", got)
	}
}

func TestEffectiveStatus_RevertedPaymentDerivesAgain(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	p := newPayment(1, 2025, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	p.MarkPaid(time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC))
	p.RevertPayment()

	if got := EffectiveStatus(p, now); got != entity.PaymentStatusOverdue {
		t.Errorf("EffectiveStatus() after revert = %s, want OVERDUE", got)
	}
}
