// Package expense contains expense-related use cases.
package expense

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/partilio/backend/internal/domain/error"
)

var (
	payerA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	payerB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	payerC = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateSplits(t *testing.T) {
	tests := []struct {
		name    string
		splits  []SplitInput
		wantErr error
	}{
		{
			name: "accepts an exact sum of 100",
			splits: []SplitInput{
				{PayerID: payerA, Percentage: pct("33.33")},
				{PayerID: payerB, Percentage: pct("33.33")},
				{PayerID: payerC, Percentage: pct("33.34")},
			},
		},
		{
			name: "accepts 99.999 within tolerance",
			splits: []SplitInput{
				{PayerID: payerA, Percentage: pct("33.333")},
				{PayerID: payerB, Percentage: pct("33.333")},
				{PayerID: payerC, Percentage: pct("33.333")},
			},
		},
		{
			name: "rejects a sum of 99.99",
			splits: []SplitInput{
				{PayerID: payerA, Percentage: pct("33.33")},
				{PayerID: payerB, Percentage: pct("33.33")},
				{PayerID: payerC, Percentage: pct("33.33")},
			},
			wantErr: domainerror.ErrSplitPercentageSum,
		},
		{
			name: "rejects a sum of 100.02",
			splits: []SplitInput{
				{PayerID: payerA, Percentage: pct("50.01")},
				{PayerID: payerB, Percentage: pct("50.01")},
			},
			wantErr: domainerror.ErrSplitPercentageSum,
		},
		{
			name:    "rejects an empty split set",
			splits:  nil,
			wantErr: domainerror.ErrEmptySplits,
		},
		{
			name: "rejects a zero percentage",
			splits: []SplitInput{
				{PayerID: payerA, Percentage: pct("0")},
				{PayerID: payerB, Percentage: pct("100")},
			},
			wantErr: domainerror.ErrInvalidSplitPercentage,
		},
		{
			name: "rejects a negative percentage",
			splits: []SplitInput{
				{PayerID: payerA, Percentage: pct("-10")},
				{PayerID: payerB, Percentage: pct("110")},
			},
			wantErr: domainerror.ErrInvalidSplitPercentage,
		},
		{
			name: "rejects a duplicate payer",
			splits: []SplitInput{
				{PayerID: payerA, Percentage: pct("50")},
				{PayerID: payerA, Percentage: pct("50")},
			},
			wantErr: domainerror.ErrDuplicateSplitPayer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplits(tt.splits)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateSplits_SumErrorNamesActualSum(t *testing.T) {
	err := ValidateSplits([]SplitInput{
		{PayerID: payerA, Percentage: pct("33.33")},
		{PayerID: payerB, Percentage: pct("33.33")},
		{PayerID: payerC, Percentage: pct("33.33")},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "99.99") {
		t.Errorf("expected error message to name the actual sum 99.99, got: %v", err)
	}
}

func TestCalculateSplits_NoDriftWhenRoundingIsExact(t *testing.T) {
	results, err := CalculateSplits(decimal.RequireFromString("100.00"), []SplitInput{
		{PayerID: payerA, Percentage: pct("33.33")},
		{PayerID: payerB, Percentage: pct("33.33")},
		{PayerID: payerC, Percentage: pct("33.34")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"33.33", "33.33", "33.34"}
	for i, w := range want {
		if results[i].Amount.String() != w {
			t.Errorf("split %d: expected %s, got %s", i, w, results[i].Amount)
		}
	}
}

func TestCalculateSplits_DriftGoesToLargestPercentage(t *testing.T) {
	// 33.333% of 100.00 rounds to 33.33 three times, leaving a 0.01 drift.
	// All percentages tie, so the lowest payer ID absorbs the cent.
	results, err := CalculateSplits(decimal.RequireFromString("100.00"), []SplitInput{
		{PayerID: payerC, Percentage: pct("33.333")},
		{PayerID: payerA, Percentage: pct("33.333")},
		{PayerID: payerB, Percentage: pct("33.333")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range results {
		want := "33.33"
		if r.PayerID == payerA {
			want = "33.34"
		}
		if r.Amount.String() != want {
			t.Errorf("payer %s: expected %s, got %s", r.PayerID, want, r.Amount)
		}
	}
}

func TestCalculateSplits_DriftPrefersLargestPercentage(t *testing.T) {
	// 60.001/19.999/20 of 10.01: shares round to 6.01/2.00/2.00 summing to
	// 10.01 already; use a skewed set that actually drifts instead.
	results, err := CalculateSplits(decimal.RequireFromString("0.05"), []SplitInput{
		{PayerID: payerB, Percentage: pct("70")},
		{PayerID: payerA, Percentage: pct("30")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 70% of 0.05 = 0.035 -> 0.04 (half-up); 30% = 0.015 -> 0.02.
	// Rounded sum 0.06 drifts +0.01, corrected on the 70% split.
	var got []string
	for _, r := range results {
		got = append(got, fmt.Sprintf("%s=%s", r.PayerID, r.Amount))
	}
	byPayer := map[uuid.UUID]string{}
	total := decimal.Zero
	for _, r := range results {
		byPayer[r.PayerID] = r.Amount.String()
		total = total.Add(r.Amount)
	}
	if byPayer[payerB] != "0.03" {
		t.Errorf("expected the 70%% split to absorb the drift (0.03), got %v", got)
	}
	if byPayer[payerA] != "0.02" {
		t.Errorf("expected the 30%% split to keep 0.02, got %v", got)
	}
	if !total.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("expected amounts to sum to 0.05, got %s", total)
	}
}

func TestCalculateSplits_SumsExactlyForManyPayers(t *testing.T) {
	amount := decimal.RequireFromString("123.45")

	for n := 1; n <= 20; n++ {
		t.Run(fmt.Sprintf("%d payers", n), func(t *testing.T) {
			// Partition 100 into n shares: n-1 equal slices plus the rest.
			splits := make([]SplitInput, n)
			slice := hundred.Div(decimal.NewFromInt(int64(n))).Round(2)
			rest := hundred
			for i := 0; i < n; i++ {
				id := uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1))
				p := slice
				if i == n-1 {
					p = rest
				}
				splits[i] = SplitInput{PayerID: id, Percentage: p}
				rest = rest.Sub(slice)
			}

			results, err := CalculateSplits(amount, splits)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			total := decimal.Zero
			for _, r := range results {
				total = total.Add(r.Amount)
			}
			if !total.Equal(amount) {
				t.Errorf("expected amounts to sum to %s, got %s", amount, total)
			}
		})
	}
}

func TestCalculateSplits_IsDeterministic(t *testing.T) {
	amount := decimal.RequireFromString("250.10")
	splits := []SplitInput{
		{PayerID: payerB, Percentage: pct("33.333")},
		{PayerID: payerA, Percentage: pct("33.333")},
		{PayerID: payerC, Percentage: pct("33.333")},
	}

	first, err := CalculateSplits(amount, splits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalculateSplits(amount, splits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i].PayerID != second[i].PayerID || !first[i].Amount.Equal(second[i].Amount) {
			t.Errorf("result %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCalculateSplits_RejectsNonPositiveAmount(t *testing.T) {
	_, err := CalculateSplits(decimal.Zero, []SplitInput{
		{PayerID: payerA, Percentage: pct("100")},
	})
	if !errors.Is(err, domainerror.ErrInvalidExpenseAmount) {
		t.Errorf("expected ErrInvalidExpenseAmount, got %v", err)
	}
}
