package payer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// UpdatePayerInput represents the input for payer updates. Nil fields are
// left untouched.
type UpdatePayerInput struct {
	UserID  uuid.UUID
	PayerID uuid.UUID
	Name    *string
	Color   *string
}

// UpdatePayerOutput represents the output of payer updates.
type UpdatePayerOutput struct {
	Payer *entity.Payer
}

// UpdatePayerUseCase handles payer update logic.
type UpdatePayerUseCase struct {
	payerRepo adapter.PayerRepository
}

// NewUpdatePayerUseCase creates a new UpdatePayerUseCase instance.
func NewUpdatePayerUseCase(payerRepo adapter.PayerRepository) *UpdatePayerUseCase {
	return &UpdatePayerUseCase{
		payerRepo: payerRepo,
	}
}

// Execute performs the payer update.
func (uc *UpdatePayerUseCase) Execute(ctx context.Context, input UpdatePayerInput) (*UpdatePayerOutput, error) {
	payer, err := uc.findOwnedPayer(ctx, input.PayerID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validatePayerName(name); err != nil {
			return nil, err
		}
		if name != payer.Name {
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
		}
		payer.Name = name
	}

	if input.Color != nil {
		if !payerColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidColorFormat,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidColorFormat,
			)
		}
		payer.Color = *input.Color
	}

	payer.UpdatedAt = time.Now().UTC()

	if err := uc.payerRepo.Update(ctx, payer); err != nil {
		return nil, fmt.Errorf("failed to update payer: %w", err)
	}

	return &UpdatePayerOutput{Payer: payer}, nil
}

func (uc *UpdatePayerUseCase) findOwnedPayer(ctx context.Context, payerID, userID uuid.UUID) (*entity.Payer, error) {
	payer, err := uc.payerRepo.FindByID(ctx, payerID)
	if err != nil {
		return nil, domainerror.NewPayerError(
			domainerror.ErrCodePayerNotFound,
			"payer not found",
			domainerror.ErrPayerNotFound,
		)
	}
	if payer.UserID != userID {
		return nil, domainerror.NewPayerError(
			domainerror.ErrCodePayerNotOwned,
			"payer does not belong to user",
			domainerror.ErrPayerNotOwnedByUser,
		)
	}
	return payer, nil
}
