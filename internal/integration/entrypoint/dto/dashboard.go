package dto

import (
	"github.com/partilio/backend/internal/application/usecase/dashboard"
)

// MonthlySummaryResponse represents the monthly dashboard summary.
type MonthlySummaryResponse struct {
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	Total        string `json:"total"`
	PaidTotal    string `json:"paid_total"`
	PendingTotal string `json:"pending_total"`
	OverdueTotal string `json:"overdue_total"`
	FutureTotal  string `json:"future_total"`
	PaymentCount int    `json:"payment_count"`
	PaidCount    int    `json:"paid_count"`
}

// CategoryBreakdownItemResponse represents one category's slice of the month.
type CategoryBreakdownItemResponse struct {
	CategoryID   *string `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        string  `json:"total"`
	Percentage   string  `json:"percentage"`
	PaymentCount int     `json:"payment_count"`
}

// CategoryBreakdownResponse represents the category breakdown for a month.
type CategoryBreakdownResponse struct {
	Month      int                             `json:"month"`
	Year       int                             `json:"year"`
	Total      string                          `json:"total"`
	Categories []CategoryBreakdownItemResponse `json:"categories"`
}

// PayerBalanceResponse represents one payer's share of a month.
type PayerBalanceResponse struct {
	PayerID   string `json:"payer_id"`
	PayerName string `json:"payer_name"`
	Total     string `json:"total"`
	PaidTotal string `json:"paid_total"`
	OpenTotal string `json:"open_total"`
}

// PayerBalancesResponse represents the payer balances for a month.
type PayerBalancesResponse struct {
	Month    int                    `json:"month"`
	Year     int                    `json:"year"`
	Balances []PayerBalanceResponse `json:"balances"`
}

// ToMonthlySummaryResponse converts a monthly summary to its DTO.
func ToMonthlySummaryResponse(summary *dashboard.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:        summary.Month,
		Year:         summary.Year,
		Total:        summary.Total.String(),
		PaidTotal:    summary.PaidTotal.String(),
		PendingTotal: summary.PendingTotal.String(),
		OverdueTotal: summary.OverdueTotal.String(),
		FutureTotal:  summary.FutureTotal.String(),
		PaymentCount: summary.PaymentCount,
		PaidCount:    summary.PaidCount,
	}
}

// ToCategoryBreakdownResponse converts a category breakdown to its DTO.
func ToCategoryBreakdownResponse(month, year int, output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{
		Month:      month,
		Year:       year,
		Total:      output.Total.String(),
		Categories: make([]CategoryBreakdownItemResponse, len(output.Items)),
	}
	for i, item := range output.Items {
		itemResponse := CategoryBreakdownItemResponse{
			CategoryName: item.CategoryName,
			Total:        item.Total.String(),
			Percentage:   item.Percentage.String(),
			PaymentCount: item.PaymentCount,
		}
		if item.CategoryID != nil {
			categoryID := item.CategoryID.String()
			itemResponse.CategoryID = &categoryID
		}
		response.Categories[i] = itemResponse
	}
	return response
}

// ToPayerBalancesResponse converts payer balances to their DTO.
func ToPayerBalancesResponse(month, year int, balances []*dashboard.PayerBalance) PayerBalancesResponse {
	response := PayerBalancesResponse{
		Month:    month,
		Year:     year,
		Balances: make([]PayerBalanceResponse, len(balances)),
	}
	for i, balance := range balances {
		response.Balances[i] = PayerBalanceResponse{
			PayerID:   balance.PayerID.String(),
			PayerName: balance.PayerName,
			Total:     balance.Total.String(),
			PaidTotal: balance.PaidTotal.String(),
			OpenTotal: balance.OpenTotal.String(),
		}
	}
	return response
}
