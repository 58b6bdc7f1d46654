// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// ScheduleEntry is one monthly obligation produced by the generator. Month
// and Year always match the entry's due date.
type ScheduleEntry struct {
	Month   int
	Year    int
	DueDate time.Time
}

// ScheduleInput carries the expense parameters the generator needs. Card is
// required for credit-card expenses and ignored otherwise.
type ScheduleInput struct {
	Type                 entity.ExpenseType
	StartDate            time.Time
	DueDay               int // 0 means "use the start date's day"
	PurchaseDate         *time.Time
	NumberOfInstallments int
	NumberOfMonths       int
	Card                 *entity.CreditCard
}

// GenerateSchedule turns an expense definition into an ordered sequence of
// monthly due obligations. It is pure and deterministic: the same input
// always yields the same schedule, and no clock is consulted. Status
// refinement against "now" happens when payments are read, not here.
func GenerateSchedule(in ScheduleInput) ([]ScheduleEntry, error) {
	if in.StartDate.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidStartDate,
			"start date is required",
			domainerror.ErrInvalidStartDate,
		)
	}
	if in.DueDay < 0 || in.DueDay > 31 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}

	occurrences, err := scheduleOccurrences(in)
	if err != nil {
		return nil, err
	}

	if in.Type == entity.ExpenseTypeCreditCard {
		return generateCardSchedule(in, occurrences)
	}
	return generateMonthlySchedule(in, occurrences)
}

// scheduleOccurrences resolves how many entries the schedule has for each
// expense type. Open-ended recurring expenses get a fixed horizon; rolling
// extension is re-triggered externally.
func scheduleOccurrences(in ScheduleInput) (int, error) {
	switch in.Type {
	case entity.ExpenseTypeOneTime:
		return 1, nil

	case entity.ExpenseTypeFixedRecurring, entity.ExpenseTypeVariableRecurring:
		if in.NumberOfMonths == 0 {
			return entity.DefaultRecurringMonths, nil
		}
		if in.NumberOfMonths < 0 {
			return 0, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidMonthCount,
				"number of months must be greater than zero",
				domainerror.ErrInvalidMonthCount,
			)
		}
		return in.NumberOfMonths, nil

	case entity.ExpenseTypeInstallment:
		if in.NumberOfInstallments <= 0 {
			return 0, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidInstallmentCount,
				"number of installments must be greater than zero",
				domainerror.ErrInvalidInstallmentCount,
			)
		}
		return in.NumberOfInstallments, nil

	case entity.ExpenseTypeCreditCard:
		if in.NumberOfInstallments == 0 {
			return 1, nil
		}
		if in.NumberOfInstallments < 0 {
			return 0, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidInstallmentCount,
				"number of installments must be greater than zero",
				domainerror.ErrInvalidInstallmentCount,
			)
		}
		return in.NumberOfInstallments, nil

	default:
		return 0, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseType,
			"unknown expense type",
			domainerror.ErrInvalidExpenseType,
		)
	}
}

// generateMonthlySchedule steps month by month from the start date, anchoring
// each due date on the due day and clamping to the last day of short months
// (anchor day 31 in February yields Feb 28, or 29 in leap years).
func generateMonthlySchedule(in ScheduleInput, occurrences int) ([]ScheduleEntry, error) {
	anchorDay := in.DueDay
	if anchorDay == 0 {
		anchorDay = in.StartDate.Day()
	}

	entries := make([]ScheduleEntry, 0, occurrences)
	base := monthStart(in.StartDate)
	for k := 0; k < occurrences; k++ {
		target := base.AddDate(0, k, 0)
		due := dayInMonth(target.Year(), target.Month(), anchorDay)
		entries = append(entries, ScheduleEntry{
			Month:   int(due.Month()),
			Year:    due.Year(),
			DueDate: due,
		})
	}
	return entries, nil
}

// generateCardSchedule applies the billing-cycle rule: a purchase made on or
// after the card's closing day rolls into the next cycle, and the bill is
// due on the card's due day in the month after the cycle closes. With
// closingDay=10 and dueDay=5, a purchase on January 10 closes February 10
// and falls due March 5.
func generateCardSchedule(in ScheduleInput, occurrences int) ([]ScheduleEntry, error) {
	if in.Card == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingCreditCard,
			"credit card expense requires a credit card",
			domainerror.ErrMissingCreditCard,
		)
	}

	anchor := in.StartDate
	if in.PurchaseDate != nil {
		anchor = *in.PurchaseDate
	}

	entries := make([]ScheduleEntry, 0, occurrences)
	base := monthStart(anchor)
	for k := 0; k < occurrences; k++ {
		cycle := base.AddDate(0, k, 0)
		if anchor.Day() >= in.Card.ClosingDay {
			cycle = cycle.AddDate(0, 1, 0)
		}
		billing := cycle.AddDate(0, 1, 0)
		due := dayInMonth(billing.Year(), billing.Month(), in.Card.DueDay)
		entries = append(entries, ScheduleEntry{
			Month:   int(due.Month()),
			Year:    due.Year(),
			DueDate: due,
		})
	}
	return entries, nil
}

// monthStart returns midnight UTC on the first day of t's month. Stepping
// months from day one avoids time.AddDate overflow normalization (January 31
// plus one month would otherwise land on March 3).
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// dayInMonth builds a date on the given day, clamped to the month's last day.
func dayInMonth(year int, month time.Month, day int) time.Time {
	last := daysInMonth(year, month)
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
