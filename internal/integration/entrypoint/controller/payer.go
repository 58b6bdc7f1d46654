package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/usecase/payer"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/entrypoint/dto"
	"github.com/partilio/backend/internal/integration/entrypoint/middleware"
)

// PayerController handles payer endpoints.
type PayerController struct {
	createUseCase *payer.CreatePayerUseCase
	listUseCase   *payer.ListPayersUseCase
	updateUseCase *payer.UpdatePayerUseCase
	deleteUseCase *payer.DeletePayerUseCase
}

// NewPayerController creates a new payer controller instance.
func NewPayerController(
	createUseCase *payer.CreatePayerUseCase,
	listUseCase *payer.ListPayersUseCase,
	updateUseCase *payer.UpdatePayerUseCase,
	deleteUseCase *payer.DeletePayerUseCase,
) *PayerController {
	return &PayerController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /payers requests.
func (c *PayerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreatePayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPayerName),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), payer.CreatePayerInput{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		c.handlePayerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPayerResponse(output.Payer))
}

// List handles GET /payers requests.
func (c *PayerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), payer.ListPayersInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve payers",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayerListResponse(output.Payers))
}

// Update handles PATCH /payers/:id requests.
func (c *PayerController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	payerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payer ID format",
		})
		return
	}

	var req dto.UpdatePayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), payer.UpdatePayerInput{
		UserID:  userID,
		PayerID: payerID,
		Name:    req.Name,
		Color:   req.Color,
	})
	if err != nil {
		c.handlePayerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayerResponse(output.Payer))
}

// Delete handles DELETE /payers/:id requests.
func (c *PayerController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	payerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payer ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), payer.DeletePayerInput{
		UserID:  userID,
		PayerID: payerID,
	})
	if err != nil {
		c.handlePayerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePayerError handles payer errors and returns appropriate HTTP responses.
func (c *PayerController) handlePayerError(ctx *gin.Context, err error) {
	var payerErr *domainerror.PayerError
	if errors.As(err, &payerErr) {
		statusCode := c.getStatusCodeForPayerError(payerErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: payerErr.Message,
			Code:  string(payerErr.Code),
		})
		return
	}

	// Color validation reuses the category error type.
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPayerError maps payer error codes to HTTP status codes.
func (c *PayerController) getStatusCodeForPayerError(code domainerror.PayerErrorCode) int {
	switch code {
	case domainerror.ErrCodePayerNotFound, domainerror.ErrCodePayerNotOwned:
		return http.StatusNotFound
	case domainerror.ErrCodePayerNameExists, domainerror.ErrCodePayerInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPayerName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
