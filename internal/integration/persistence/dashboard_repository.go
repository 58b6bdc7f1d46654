// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/partilio/backend/internal/application/adapter"
)

// dashboardRepository implements the adapter.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) adapter.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// categoryTotalScan receives the category aggregation rows.
type categoryTotalScan struct {
	CategoryID   *uuid.UUID
	CategoryName *string
	Total        decimal.Decimal
	PaymentCount int
}

// GetCategoryTotals groups the period's payments by expense category.
// Payments of uncategorized expenses come back with a nil category.
func (r *dashboardRepository) GetCategoryTotals(ctx context.Context, userID uuid.UUID, month, year int) ([]*adapter.CategoryTotalRow, error) {
	var scans []categoryTotalScan
	result := r.db.WithContext(ctx).
		Table("expense_payments").
		Select("expenses.category_id AS category_id, categories.name AS category_name, SUM(expense_payments.amount) AS total, COUNT(expense_payments.id) AS payment_count").
		Joins("JOIN expenses ON expenses.id = expense_payments.expense_id AND expenses.deleted_at IS NULL").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ? AND expense_payments.month = ? AND expense_payments.year = ?", userID, month, year).
		Group("expenses.category_id, categories.name").
		Order("total DESC").
		Scan(&scans)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]*adapter.CategoryTotalRow, len(scans))
	for i, s := range scans {
		row := &adapter.CategoryTotalRow{
			CategoryID:   s.CategoryID,
			CategoryName: "Uncategorized",
			Total:        s.Total,
			PaymentCount: s.PaymentCount,
		}
		if s.CategoryName != nil {
			row.CategoryName = *s.CategoryName
		}
		rows[i] = row
	}
	return rows, nil
}

// payerTotalScan receives the payer aggregation rows.
type payerTotalScan struct {
	PayerID   uuid.UUID
	PayerName string
	Total     decimal.Decimal
	PaidTotal decimal.Decimal
}

// GetPayerTotals computes each payer's share of the period's payments.
// Undivided expenses attribute the full payment amount to the effective
// payer; divided expenses attribute each participant's split amount.
func (r *dashboardRepository) GetPayerTotals(ctx context.Context, userID uuid.UUID, month, year int) ([]*adapter.PayerTotalRow, error) {
	var undivided []payerTotalScan
	result := r.db.WithContext(ctx).
		Table("expense_payments").
		Select("payers.id AS payer_id, payers.name AS payer_name, "+
			"SUM(expense_payments.amount) AS total, "+
			"SUM(CASE WHEN expense_payments.paid_at IS NOT NULL THEN expense_payments.amount ELSE 0 END) AS paid_total").
		Joins("JOIN expenses ON expenses.id = expense_payments.expense_id AND expenses.deleted_at IS NULL").
		Joins("JOIN payers ON payers.id = COALESCE(expenses.payer_id, expenses.buyer_id)").
		Where("expenses.user_id = ? AND expenses.is_divided = ? AND expense_payments.month = ? AND expense_payments.year = ?",
			userID, false, month, year).
		Group("payers.id, payers.name").
		Scan(&undivided)
	if result.Error != nil {
		return nil, result.Error
	}

	var divided []payerTotalScan
	result = r.db.WithContext(ctx).
		Table("expense_payments").
		Select("payers.id AS payer_id, payers.name AS payer_name, "+
			"SUM(expense_splits.amount) AS total, "+
			"SUM(CASE WHEN expense_payments.paid_at IS NOT NULL THEN expense_splits.amount ELSE 0 END) AS paid_total").
		Joins("JOIN expenses ON expenses.id = expense_payments.expense_id AND expenses.deleted_at IS NULL").
		Joins("JOIN expense_splits ON expense_splits.expense_id = expenses.id").
		Joins("JOIN payers ON payers.id = expense_splits.payer_id").
		Where("expenses.user_id = ? AND expenses.is_divided = ? AND expense_payments.month = ? AND expense_payments.year = ?",
			userID, true, month, year).
		Group("payers.id, payers.name").
		Scan(&divided)
	if result.Error != nil {
		return nil, result.Error
	}

	merged := make(map[uuid.UUID]*adapter.PayerTotalRow)
	order := make([]uuid.UUID, 0, len(undivided)+len(divided))
	for _, scan := range append(undivided, divided...) {
		row, ok := merged[scan.PayerID]
		if !ok {
			row = &adapter.PayerTotalRow{
				PayerID:   scan.PayerID,
				PayerName: scan.PayerName,
				Total:     decimal.Zero,
				PaidTotal: decimal.Zero,
			}
			merged[scan.PayerID] = row
			order = append(order, scan.PayerID)
		}
		row.Total = row.Total.Add(scan.Total)
		row.PaidTotal = row.PaidTotal.Add(scan.PaidTotal)
	}

	rows := make([]*adapter.PayerTotalRow, len(order))
	for i, id := range order {
		rows[i] = merged[id]
	}
	return rows, nil
}
