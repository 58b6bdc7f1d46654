// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/partilio/backend/internal/domain/entity"
)

// CreatePayerRequest represents the request body for payer creation.
type CreatePayerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color,omitempty" binding:"omitempty,max=7"`
}

// UpdatePayerRequest represents the request body for payer update.
type UpdatePayerRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color *string `json:"color,omitempty" binding:"omitempty,max=7"`
}

// PayerResponse represents the payer data in API responses.
type PayerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PayerListResponse represents the response for payer listing.
type PayerListResponse struct {
	Payers []PayerResponse `json:"payers"`
}

// ToPayerResponse converts a Payer entity to a PayerResponse DTO.
func ToPayerResponse(payer *entity.Payer) PayerResponse {
	return PayerResponse{
		ID:        payer.ID.String(),
		Name:      payer.Name,
		Color:     payer.Color,
		CreatedAt: payer.CreatedAt,
		UpdatedAt: payer.UpdatedAt,
	}
}

// ToPayerListResponse converts Payer entities to a PayerListResponse DTO.
func ToPayerListResponse(payers []*entity.Payer) PayerListResponse {
	response := PayerListResponse{
		Payers: make([]PayerResponse, len(payers)),
	}
	for i, payer := range payers {
		response.Payers[i] = ToPayerResponse(payer)
	}
	return response
}
