package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	creditcard "github.com/partilio/backend/internal/application/usecase/credit_card"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/entrypoint/dto"
	"github.com/partilio/backend/internal/integration/entrypoint/middleware"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	createUseCase *creditcard.CreateCreditCardUseCase
	listUseCase   *creditcard.ListCreditCardsUseCase
	updateUseCase *creditcard.UpdateCreditCardUseCase
	deleteUseCase *creditcard.DeleteCreditCardUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	createUseCase *creditcard.CreateCreditCardUseCase,
	listUseCase *creditcard.ListCreditCardsUseCase,
	updateUseCase *creditcard.UpdateCreditCardUseCase,
	deleteUseCase *creditcard.DeleteCreditCardUseCase,
) *CreditCardController {
	return &CreditCardController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidCardName),
		})
		return
	}

	input := creditcard.CreateCreditCardInput{
		UserID:     userID,
		Name:       req.Name,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
		Limit:      decimalFromFloat(req.Limit),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), creditcard.ListCreditCardsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve credit cards",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output.CreditCards))
}

// Update handles PATCH /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := creditcard.UpdateCreditCardInput{
		UserID:       userID,
		CreditCardID: cardID,
		Name:         req.Name,
		ClosingDay:   req.ClosingDay,
		DueDay:       req.DueDay,
		Limit:        decimalFromFloat(req.Limit),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.CreditCard))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCreditCardInput{
		UserID:       userID,
		CreditCardID: cardID,
	})
	if err != nil {
		c.handleCreditCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// decimalFromFloat converts an optional float into an optional decimal.
func decimalFromFloat(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}

// handleCreditCardError handles credit card errors and returns appropriate HTTP responses.
func (c *CreditCardController) handleCreditCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CreditCardError
	if errors.As(err, &cardErr) {
		statusCode := c.getStatusCodeForCreditCardError(cardErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCreditCardError maps credit card error codes to HTTP status codes.
func (c *CreditCardController) getStatusCodeForCreditCardError(code domainerror.CreditCardErrorCode) int {
	switch code {
	case domainerror.ErrCodeCreditCardNotFound, domainerror.ErrCodeCreditCardNotOwned:
		return http.StatusNotFound
	case domainerror.ErrCodeCreditCardInUse, domainerror.ErrCodeCardNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidClosingDay,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeInvalidCardLimit,
		domainerror.ErrCodeInvalidCardName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
