// Package payer contains payer-related use cases.
package payer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// MaxPayerNameLength is the maximum allowed length for payer names.
const MaxPayerNameLength = 50

// DefaultPayerColor is assigned when the client omits a color.
const DefaultPayerColor = "#10B981"

var payerColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreatePayerInput represents the input for payer creation.
type CreatePayerInput struct {
	UserID uuid.UUID
	Name   string
	Color  string // Optional, defaults to DefaultPayerColor
}

// CreatePayerOutput represents the output of payer creation.
type CreatePayerOutput struct {
	Payer *entity.Payer
}

// CreatePayerUseCase handles payer creation logic.
type CreatePayerUseCase struct {
	payerRepo adapter.PayerRepository
}

// NewCreatePayerUseCase creates a new CreatePayerUseCase instance.
func NewCreatePayerUseCase(payerRepo adapter.PayerRepository) *CreatePayerUseCase {
	return &CreatePayerUseCase{
		payerRepo: payerRepo,
	}
}

// Execute performs the payer creation.
func (uc *CreatePayerUseCase) Execute(ctx context.Context, input CreatePayerInput) (*CreatePayerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validatePayerName(name); err != nil {
		return nil, err
	}

	if input.Color != "" && !payerColorRegex.MatchString(input.Color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}

	color := input.Color
	if color == "" {
		color = DefaultPayerColor
	}

	exists, err := uc.payerRepo.ExistsByNameAndUser(ctx, name, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check payer name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewPayerError(
			domainerror.ErrCodePayerNameExists,
			"a payer with this name already exists",
			domainerror.ErrPayerNameExists,
		)
	}

	payer := entity.NewPayer(input.UserID, name, color)

	if err := uc.payerRepo.Create(ctx, payer); err != nil {
		return nil, fmt.Errorf("failed to create payer: %w", err)
	}

	return &CreatePayerOutput{Payer: payer}, nil
}

// validatePayerName rejects empty and oversized names.
func validatePayerName(name string) error {
	if name == "" {
		return domainerror.NewPayerError(
			domainerror.ErrCodeInvalidPayerName,
			"payer name must not be empty",
			domainerror.ErrInvalidPayerName,
		)
	}
	if len(name) > MaxPayerNameLength {
		return domainerror.NewPayerError(
			domainerror.ErrCodeInvalidPayerName,
			fmt.Sprintf("payer name must not exceed %d characters", MaxPayerNameLength),
			domainerror.ErrInvalidPayerName,
		)
	}
	return nil
}
