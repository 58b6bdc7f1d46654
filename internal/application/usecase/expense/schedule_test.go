// Package expense contains expense-related use cases.
package expense

import (
	"errors"
	"testing"
	"time"

	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSchedule_OneTime(t *testing.T) {
	t.Run("uses the start date when no due day is given", func(t *testing.T) {
		entries, err := GenerateSchedule(ScheduleInput{
			Type:      entity.ExpenseTypeOneTime,
			StartDate: date(2025, time.March, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Month != 3 || entries[0].Year != 2025 {
			t.Errorf("expected month=3 year=2025, got month=%d year=%d", entries[0].Month, entries[0].Year)
		}
		if !entries[0].DueDate.Equal(date(2025, time.March, 10)) {
			t.Errorf("expected due date 2025-03-10, got %s", entries[0].DueDate.Format("2006-01-02"))
		}
	})

	t.Run("anchors on the due day within the start month", func(t *testing.T) {
		entries, err := GenerateSchedule(ScheduleInput{
			Type:      entity.ExpenseTypeOneTime,
			StartDate: date(2025, time.March, 10),
			DueDay:    25,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !entries[0].DueDate.Equal(date(2025, time.March, 25)) {
			t.Errorf("expected due date 2025-03-25, got %s", entries[0].DueDate.Format("2006-01-02"))
		}
	})
}

func TestGenerateSchedule_RecurringClampsShortMonths(t *testing.T) {
	entries, err := GenerateSchedule(ScheduleInput{
		Type:           entity.ExpenseTypeFixedRecurring,
		StartDate:      date(2025, time.January, 31),
		DueDay:         31,
		NumberOfMonths: 12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}

	expectedDays := map[time.Month]int{
		time.January:   31,
		time.February:  28, // 2025 is not a leap year
		time.March:     31,
		time.April:     30,
		time.May:       31,
		time.June:      30,
		time.July:      31,
		time.August:    31,
		time.September: 30,
		time.October:   31,
		time.November:  30,
		time.December:  31,
	}
	for _, e := range entries {
		if e.Year != 2025 {
			t.Errorf("expected year 2025, got %d for month %d", e.Year, e.Month)
		}
		want := expectedDays[time.Month(e.Month)]
		if e.DueDate.Day() != want {
			t.Errorf("month %d: expected day %d, got %d", e.Month, want, e.DueDate.Day())
		}
	}
}

func TestGenerateSchedule_LeapYearFebruary(t *testing.T) {
	entries, err := GenerateSchedule(ScheduleInput{
		Type:           entity.ExpenseTypeVariableRecurring,
		StartDate:      date(2024, time.January, 31),
		DueDay:         31,
		NumberOfMonths: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !entries[1].DueDate.Equal(date(2024, time.February, 29)) {
		t.Errorf("expected 2024-02-29, got %s", entries[1].DueDate.Format("2006-01-02"))
	}
}

func TestGenerateSchedule_RecurringDefaultsToTwelveMonths(t *testing.T) {
	entries, err := GenerateSchedule(ScheduleInput{
		Type:      entity.ExpenseTypeFixedRecurring,
		StartDate: date(2025, time.June, 1),
		DueDay:    5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != entity.DefaultRecurringMonths {
		t.Fatalf("expected %d entries, got %d", entity.DefaultRecurringMonths, len(entries))
	}
}

func TestGenerateSchedule_InstallmentCrossesYearBoundary(t *testing.T) {
	entries, err := GenerateSchedule(ScheduleInput{
		Type:                 entity.ExpenseTypeInstallment,
		StartDate:            date(2025, time.November, 3),
		DueDay:               15,
		NumberOfInstallments: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []ScheduleEntry{
		{Month: 11, Year: 2025, DueDate: date(2025, time.November, 15)},
		{Month: 12, Year: 2025, DueDate: date(2025, time.December, 15)},
		{Month: 1, Year: 2026, DueDate: date(2026, time.January, 15)},
		{Month: 2, Year: 2026, DueDate: date(2026, time.February, 15)},
	}
	for i, w := range want {
		if entries[i].Month != w.Month || entries[i].Year != w.Year || !entries[i].DueDate.Equal(w.DueDate) {
			t.Errorf("entry %d: expected %+v, got %+v", i, w, entries[i])
		}
	}
}

func TestGenerateSchedule_CreditCardBillingCycle(t *testing.T) {
	card := &entity.CreditCard{ClosingDay: 10, DueDay: 5}

	t.Run("purchase on the closing day rolls to the next cycle", func(t *testing.T) {
		purchase := date(2025, time.January, 10)
		entries, err := GenerateSchedule(ScheduleInput{
			Type:         entity.ExpenseTypeCreditCard,
			StartDate:    purchase,
			PurchaseDate: &purchase,
			Card:         card,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if !entries[0].DueDate.Equal(date(2025, time.March, 5)) {
			t.Errorf("expected due date 2025-03-05, got %s", entries[0].DueDate.Format("2006-01-02"))
		}
	})

	t.Run("purchase before the closing day bills in the current cycle", func(t *testing.T) {
		purchase := date(2025, time.January, 9)
		entries, err := GenerateSchedule(ScheduleInput{
			Type:         entity.ExpenseTypeCreditCard,
			StartDate:    purchase,
			PurchaseDate: &purchase,
			Card:         card,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !entries[0].DueDate.Equal(date(2025, time.February, 5)) {
			t.Errorf("expected due date 2025-02-05, got %s", entries[0].DueDate.Format("2006-01-02"))
		}
	})

	t.Run("installments advance one billing month each", func(t *testing.T) {
		purchase := date(2025, time.January, 10)
		entries, err := GenerateSchedule(ScheduleInput{
			Type:                 entity.ExpenseTypeCreditCard,
			StartDate:            purchase,
			PurchaseDate:         &purchase,
			NumberOfInstallments: 3,
			Card:                 card,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []time.Time{
			date(2025, time.March, 5),
			date(2025, time.April, 5),
			date(2025, time.May, 5),
		}
		for i, w := range want {
			if !entries[i].DueDate.Equal(w) {
				t.Errorf("installment %d: expected %s, got %s",
					i+1, w.Format("2006-01-02"), entries[i].DueDate.Format("2006-01-02"))
			}
		}
	})

	t.Run("falls back to the start date when no purchase date is set", func(t *testing.T) {
		entries, err := GenerateSchedule(ScheduleInput{
			Type:      entity.ExpenseTypeCreditCard,
			StartDate: date(2025, time.January, 9),
			Card:      card,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !entries[0].DueDate.Equal(date(2025, time.February, 5)) {
			t.Errorf("expected due date 2025-02-05, got %s", entries[0].DueDate.Format("2006-01-02"))
		}
	})

	t.Run("clamps the card due day in short months", func(t *testing.T) {
		purchase := date(2024, time.December, 20)
		entries, err := GenerateSchedule(ScheduleInput{
			Type:         entity.ExpenseTypeCreditCard,
			StartDate:    purchase,
			PurchaseDate: &purchase,
			Card:         &entity.CreditCard{ClosingDay: 25, DueDay: 31},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Cycle closes December 25, bill is due in January on day 31.
		if !entries[0].DueDate.Equal(date(2025, time.January, 31)) {
			t.Fatalf("expected due date 2025-01-31, got %s", entries[0].DueDate.Format("2006-01-02"))
		}

		purchase = date(2025, time.January, 20)
		entries, err = GenerateSchedule(ScheduleInput{
			Type:         entity.ExpenseTypeCreditCard,
			StartDate:    purchase,
			PurchaseDate: &purchase,
			Card:         &entity.CreditCard{ClosingDay: 25, DueDay: 31},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !entries[0].DueDate.Equal(date(2025, time.February, 28)) {
			t.Errorf("expected due date 2025-02-28, got %s", entries[0].DueDate.Format("2006-01-02"))
		}
	})
}

func TestGenerateSchedule_InvalidInput(t *testing.T) {
	purchase := date(2025, time.January, 10)

	tests := []struct {
		name    string
		input   ScheduleInput
		wantErr error
	}{
		{
			name: "zero start date",
			input: ScheduleInput{
				Type: entity.ExpenseTypeOneTime,
			},
			wantErr: domainerror.ErrInvalidStartDate,
		},
		{
			name: "due day above 31",
			input: ScheduleInput{
				Type:      entity.ExpenseTypeOneTime,
				StartDate: date(2025, time.March, 10),
				DueDay:    32,
			},
			wantErr: domainerror.ErrInvalidDueDay,
		},
		{
			name: "negative installment count",
			input: ScheduleInput{
				Type:                 entity.ExpenseTypeInstallment,
				StartDate:            date(2025, time.January, 1),
				DueDay:               10,
				NumberOfInstallments: -2,
			},
			wantErr: domainerror.ErrInvalidInstallmentCount,
		},
		{
			name: "zero installment count for installment type",
			input: ScheduleInput{
				Type:      entity.ExpenseTypeInstallment,
				StartDate: date(2025, time.January, 1),
				DueDay:    10,
			},
			wantErr: domainerror.ErrInvalidInstallmentCount,
		},
		{
			name: "negative month count",
			input: ScheduleInput{
				Type:           entity.ExpenseTypeFixedRecurring,
				StartDate:      date(2025, time.January, 1),
				DueDay:         10,
				NumberOfMonths: -1,
			},
			wantErr: domainerror.ErrInvalidMonthCount,
		},
		{
			name: "unknown expense type",
			input: ScheduleInput{
				Type:      entity.ExpenseType("weekly"),
				StartDate: date(2025, time.January, 1),
			},
			wantErr: domainerror.ErrInvalidExpenseType,
		},
		{
			name: "credit card expense without a card",
			input: ScheduleInput{
				Type:         entity.ExpenseTypeCreditCard,
				StartDate:    purchase,
				PurchaseDate: &purchase,
			},
			wantErr: domainerror.ErrMissingCreditCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSchedule(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGenerateSchedule_IsDeterministic(t *testing.T) {
	input := ScheduleInput{
		Type:           entity.ExpenseTypeFixedRecurring,
		StartDate:      date(2025, time.January, 31),
		DueDay:         31,
		NumberOfMonths: 6,
	}

	first, err := GenerateSchedule(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GenerateSchedule(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
