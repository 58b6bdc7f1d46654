// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/partilio/backend/internal/domain/entity"
)

// SplitRequest represents one payer share in an expense request.
type SplitRequest struct {
	PayerID    string  `json:"payer_id" binding:"required,uuid"`
	Percentage float64 `json:"percentage" binding:"required,gt=0"`
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Description          string         `json:"description" binding:"required,min=1,max=255"`
	Supplier             string         `json:"supplier,omitempty" binding:"omitempty,max=255"`
	TotalAmount          float64        `json:"total_amount" binding:"required,gt=0"`
	InstallmentAmount    *float64       `json:"installment_amount,omitempty" binding:"omitempty,gt=0"`
	Type                 string         `json:"type" binding:"required,oneof=one_time fixed_recurring variable_recurring installment credit_card"`
	StartDate            string         `json:"start_date" binding:"required"`
	DueDay               int            `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	PurchaseDate         *string        `json:"purchase_date,omitempty"`
	IsInstallment        bool           `json:"is_installment,omitempty"`
	NumberOfInstallments int            `json:"number_of_installments,omitempty" binding:"omitempty,min=1"`
	NumberOfMonths       int            `json:"number_of_months,omitempty" binding:"omitempty,min=1"`
	IsDivided            bool           `json:"is_divided,omitempty"`
	PayerID              *string        `json:"payer_id,omitempty" binding:"omitempty,uuid"`
	BuyerID              string         `json:"buyer_id" binding:"required,uuid"`
	CategoryID           *string        `json:"category_id,omitempty" binding:"omitempty,uuid"`
	CreditCardID         *string        `json:"credit_card_id,omitempty" binding:"omitempty,uuid"`
	Splits               []SplitRequest `json:"splits,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update. The
// full expense definition is resubmitted.
type UpdateExpenseRequest struct {
	CreateExpenseRequest
}

// SplitResponse represents one payer share in API responses.
type SplitResponse struct {
	ID         string `json:"id"`
	PayerID    string `json:"payer_id"`
	Percentage string `json:"percentage"`
	Amount     string `json:"amount"`
}

// PaymentSummaryResponse represents a payment row nested in an expense response.
type PaymentSummaryResponse struct {
	ID      string     `json:"id"`
	Month   int        `json:"month"`
	Year    int        `json:"year"`
	Amount  string     `json:"amount"`
	DueDate string     `json:"due_date"`
	Status  string     `json:"status"`
	PaidAt  *time.Time `json:"paid_at,omitempty"`
}

// ExpenseResponse represents the expense data in API responses.
type ExpenseResponse struct {
	ID                   string                   `json:"id"`
	Description          string                   `json:"description"`
	Supplier             string                   `json:"supplier,omitempty"`
	TotalAmount          string                   `json:"total_amount"`
	InstallmentAmount    string                   `json:"installment_amount"`
	Type                 string                   `json:"type"`
	StartDate            string                   `json:"start_date"`
	DueDay               int                      `json:"due_day"`
	PurchaseDate         *string                  `json:"purchase_date,omitempty"`
	IsInstallment        bool                     `json:"is_installment"`
	NumberOfInstallments int                      `json:"number_of_installments,omitempty"`
	NumberOfMonths       int                      `json:"number_of_months,omitempty"`
	IsDivided            bool                     `json:"is_divided"`
	PayerID              *string                  `json:"payer_id,omitempty"`
	BuyerID              string                   `json:"buyer_id"`
	CategoryID           *string                  `json:"category_id,omitempty"`
	CreditCardID         *string                  `json:"credit_card_id,omitempty"`
	Category             *CategoryResponse        `json:"category,omitempty"`
	Buyer                *PayerResponse           `json:"buyer,omitempty"`
	Splits               []SplitResponse          `json:"splits,omitempty"`
	Payments             []PaymentSummaryResponse `json:"payments,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

// ExpenseListResponse represents the response for expense listing.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

const dateLayout = "2006-01-02"

// ToExpenseResponse converts an expense aggregate to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.ExpenseWithRelations) ExpenseResponse {
	expense := e.Expense

	response := ExpenseResponse{
		ID:                   expense.ID.String(),
		Description:          expense.Description,
		Supplier:             expense.Supplier,
		TotalAmount:          expense.TotalAmount.String(),
		InstallmentAmount:    expense.InstallmentAmount.String(),
		Type:                 string(expense.Type),
		StartDate:            expense.StartDate.Format(dateLayout),
		DueDay:               expense.DueDay,
		IsInstallment:        expense.IsInstallment,
		NumberOfInstallments: expense.NumberOfInstallments,
		NumberOfMonths:       expense.NumberOfMonths,
		IsDivided:            expense.IsDivided,
		BuyerID:              expense.BuyerID.String(),
		CreatedAt:            expense.CreatedAt,
		UpdatedAt:            expense.UpdatedAt,
	}

	if expense.PurchaseDate != nil {
		purchaseDate := expense.PurchaseDate.Format(dateLayout)
		response.PurchaseDate = &purchaseDate
	}
	if expense.PayerID != nil {
		payerID := expense.PayerID.String()
		response.PayerID = &payerID
	}
	if expense.CategoryID != nil {
		categoryID := expense.CategoryID.String()
		response.CategoryID = &categoryID
	}
	if expense.CreditCardID != nil {
		creditCardID := expense.CreditCardID.String()
		response.CreditCardID = &creditCardID
	}
	if e.Category != nil {
		category := ToCategoryResponse(e.Category)
		response.Category = &category
	}
	if e.Buyer != nil {
		buyer := ToPayerResponse(e.Buyer)
		response.Buyer = &buyer
	}

	response.Splits = make([]SplitResponse, len(e.Splits))
	for i, split := range e.Splits {
		response.Splits[i] = SplitResponse{
			ID:         split.ID.String(),
			PayerID:    split.PayerID.String(),
			Percentage: split.Percentage.String(),
			Amount:     split.Amount.String(),
		}
	}

	response.Payments = make([]PaymentSummaryResponse, len(e.Payments))
	for i, payment := range e.Payments {
		response.Payments[i] = PaymentSummaryResponse{
			ID:      payment.ID.String(),
			Month:   payment.Month,
			Year:    payment.Year,
			Amount:  payment.Amount.String(),
			DueDate: payment.DueDate.Format(dateLayout),
			Status:  string(payment.Status),
			PaidAt:  payment.PaidAt,
		}
	}

	return response
}

// ToExpenseListResponse converts an expense listing result to its DTO.
func ToExpenseListResponse(result *entity.ExpenseListResult) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses:   make([]ExpenseResponse, len(result.Expenses)),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
	for i, expense := range result.Expenses {
		response.Expenses[i] = ToExpenseResponse(expense)
	}
	return response
}
