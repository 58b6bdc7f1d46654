// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/partilio/backend/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for credit card creation.
type CreateCreditCardRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=50"`
	ClosingDay int      `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay     int      `json:"due_day" binding:"required,min=1,max=31"`
	Limit      *float64 `json:"limit,omitempty"`
}

// UpdateCreditCardRequest represents the request body for credit card update.
type UpdateCreditCardRequest struct {
	Name       *string  `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	ClosingDay *int     `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay     *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	Limit      *float64 `json:"limit,omitempty"`
}

// CreditCardResponse represents the credit card data in API responses.
type CreditCardResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClosingDay int       `json:"closing_day"`
	DueDay     int       `json:"due_day"`
	Limit      *string   `json:"limit,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreditCardListResponse represents the response for credit card listing.
type CreditCardListResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
}

// ToCreditCardResponse converts a CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	response := CreditCardResponse{
		ID:         card.ID.String(),
		Name:       card.Name,
		ClosingDay: card.ClosingDay,
		DueDay:     card.DueDay,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
	if card.Limit != nil {
		limit := card.Limit.String()
		response.Limit = &limit
	}
	return response
}

// ToCreditCardListResponse converts CreditCard entities to a CreditCardListResponse DTO.
func ToCreditCardListResponse(cards []*entity.CreditCard) CreditCardListResponse {
	response := CreditCardListResponse{
		CreditCards: make([]CreditCardResponse, len(cards)),
	}
	for i, card := range cards {
		response.CreditCards[i] = ToCreditCardResponse(card)
	}
	return response
}
