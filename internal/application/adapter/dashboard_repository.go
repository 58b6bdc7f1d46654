// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryTotalRow is one category aggregation row for a period.
type CategoryTotalRow struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Total        decimal.Decimal
	PaymentCount int
}

// PayerTotalRow is one payer aggregation row for a period. For divided
// expenses the payer's share comes from the split amount; for undivided
// expenses the effective payer carries the full payment amount.
type PayerTotalRow struct {
	PayerID   uuid.UUID
	PayerName string
	Total     decimal.Decimal
	PaidTotal decimal.Decimal
}

// DashboardRepository defines aggregation queries for reports.
type DashboardRepository interface {
	// GetCategoryTotals groups the period's payments by expense category.
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, month, year int) ([]*CategoryTotalRow, error)

	// GetPayerTotals computes each payer's share of the period's payments.
	GetPayerTotals(ctx context.Context, userID uuid.UUID, month, year int) ([]*PayerTotalRow, error)
}
