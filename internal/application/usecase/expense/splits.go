// Package expense contains expense-related use cases.
package expense

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/partilio/backend/internal/domain/error"
)

// currencyPlaces is the rounding precision for monetary amounts.
const currencyPlaces = 2

// percentageTolerance is how far the percentage sum may drift from 100
// before the split set is rejected. Client-entered percentages carry
// rounding noise (33.333 entered three times), so the check is not exact;
// 99.999 passes, 99.99 does not.
var (
	hundred             = decimal.NewFromInt(100)
	percentageTolerance = decimal.RequireFromString("0.01")
)

// SplitInput is one requested payer share.
type SplitInput struct {
	PayerID    uuid.UUID
	Percentage decimal.Decimal
}

// SplitResult is one computed allocation. The amounts of a result set always
// sum to the input amount exactly.
type SplitResult struct {
	PayerID    uuid.UUID
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

// ValidateSplits checks that a split set is well-formed: non-empty, strictly
// positive percentages, unique payers, and a percentage sum within tolerance
// of 100. The sum error carries the actual sum so callers can present it.
func ValidateSplits(splits []SplitInput) error {
	if len(splits) == 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeEmptySplits,
			"divided expense requires at least one split",
			domainerror.ErrEmptySplits,
		)
	}

	seen := make(map[uuid.UUID]struct{}, len(splits))
	sum := decimal.Zero
	for _, s := range splits {
		if !s.Percentage.IsPositive() {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidSplitPercentage,
				fmt.Sprintf("split percentage must be greater than zero, got %s", s.Percentage),
				domainerror.ErrInvalidSplitPercentage,
			)
		}
		if _, dup := seen[s.PayerID]; dup {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeDuplicateSplitPayer,
				fmt.Sprintf("payer %s appears more than once in split set", s.PayerID),
				domainerror.ErrDuplicateSplitPayer,
			)
		}
		seen[s.PayerID] = struct{}{}
		sum = sum.Add(s.Percentage)
	}

	if sum.Sub(hundred).Abs().GreaterThanOrEqual(percentageTolerance) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeSplitPercentageSum,
			fmt.Sprintf("split percentages must sum to 100, got %s", sum),
			domainerror.ErrSplitPercentageSum,
		)
	}
	return nil
}

// CalculateSplits distributes amount across the split set by percentage.
// Each share is rounded half-up to currency precision; because independent
// rounding can drift from the original amount by a cent or two, the whole
// drift is applied to a single split so the results sum to amount exactly.
// The correction target is the split with the largest percentage, ties
// broken by the lowest payer ID, which makes the output deterministic.
func CalculateSplits(amount decimal.Decimal, splits []SplitInput) ([]SplitResult, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			fmt.Sprintf("amount must be greater than zero, got %s", amount),
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if err := ValidateSplits(splits); err != nil {
		return nil, err
	}

	results := make([]SplitResult, len(splits))
	rounded := decimal.Zero
	for i, s := range splits {
		// decimal.Round rounds half away from zero, which is half-up for
		// positive amounts. Banker's rounding is deliberately not used.
		share := amount.Mul(s.Percentage).Div(hundred).Round(currencyPlaces)
		results[i] = SplitResult{
			PayerID:    s.PayerID,
			Percentage: s.Percentage,
			Amount:     share,
		}
		rounded = rounded.Add(share)
	}

	if drift := amount.Sub(rounded); !drift.IsZero() {
		target := driftTargetIndex(results)
		results[target].Amount = results[target].Amount.Add(drift)
	}
	return results, nil
}

// driftTargetIndex picks the split that absorbs rounding drift: largest
// percentage first, lowest payer ID on ties.
func driftTargetIndex(results []SplitResult) int {
	target := 0
	for i := 1; i < len(results); i++ {
		switch results[i].Percentage.Cmp(results[target].Percentage) {
		case 1:
			target = i
		case 0:
			if bytes.Compare(results[i].PayerID[:], results[target].PayerID[:]) < 0 {
				target = i
			}
		}
	}
	return target
}
