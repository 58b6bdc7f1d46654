package dto

import (
	"time"

	"github.com/partilio/backend/internal/domain/entity"
)

// PayPaymentRequest represents the request body for settling a payment.
// PaidAt defaults to the current time when omitted.
type PayPaymentRequest struct {
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

// PaymentExpenseResponse is the expense summary nested in a payment response.
type PaymentExpenseResponse struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	Supplier     string  `json:"supplier,omitempty"`
	Type         string  `json:"type"`
	IsDivided    bool    `json:"is_divided"`
	CategoryID   *string `json:"category_id,omitempty"`
	CategoryName *string `json:"category_name,omitempty"`
}

// PaymentResponse represents a monthly payment in API responses.
type PaymentResponse struct {
	ID        string                  `json:"id"`
	ExpenseID string                  `json:"expense_id"`
	Month     int                     `json:"month"`
	Year      int                     `json:"year"`
	Amount    string                  `json:"amount"`
	DueDate   string                  `json:"due_date"`
	Status    string                  `json:"status"`
	PaidAt    *time.Time              `json:"paid_at,omitempty"`
	Expense   *PaymentExpenseResponse `json:"expense,omitempty"`
}

// PaymentListResponse represents the response for payment listing.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a payment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.ExpensePayment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		ExpenseID: p.ExpenseID.String(),
		Month:     p.Month,
		Year:      p.Year,
		Amount:    p.Amount.String(),
		DueDate:   p.DueDate.Format(dateLayout),
		Status:    string(p.Status),
		PaidAt:    p.PaidAt,
	}
}

// ToPaymentWithExpenseResponse converts a payment with its parent expense.
func ToPaymentWithExpenseResponse(row *entity.PaymentWithExpense) PaymentResponse {
	response := ToPaymentResponse(row.Payment)

	if row.Expense != nil {
		expense := &PaymentExpenseResponse{
			ID:          row.Expense.ID.String(),
			Description: row.Expense.Description,
			Supplier:    row.Expense.Supplier,
			Type:        string(row.Expense.Type),
			IsDivided:   row.Expense.IsDivided,
		}
		if row.Expense.CategoryID != nil {
			categoryID := row.Expense.CategoryID.String()
			expense.CategoryID = &categoryID
		}
		if row.Category != nil {
			categoryName := row.Category.Name
			expense.CategoryName = &categoryName
		}
		response.Expense = expense
	}

	return response
}

// ToPaymentListResponse converts a payment listing to its DTO.
func ToPaymentListResponse(rows []*entity.PaymentWithExpense) PaymentListResponse {
	response := PaymentListResponse{
		Payments: make([]PaymentResponse, len(rows)),
	}
	for i, row := range rows {
		response.Payments[i] = ToPaymentWithExpenseResponse(row)
	}
	return response
}
