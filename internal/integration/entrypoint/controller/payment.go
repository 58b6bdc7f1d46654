package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/application/usecase/payment"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/entrypoint/dto"
	"github.com/partilio/backend/internal/integration/entrypoint/middleware"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	listUseCase   *payment.ListPaymentsUseCase
	payUseCase    *payment.PayPaymentUseCase
	revertUseCase *payment.RevertPaymentUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	listUseCase *payment.ListPaymentsUseCase,
	payUseCase *payment.PayPaymentUseCase,
	revertUseCase *payment.RevertPaymentUseCase,
) *PaymentController {
	return &PaymentController{
		listUseCase:   listUseCase,
		payUseCase:    payUseCase,
		revertUseCase: revertUseCase,
	}
}

// List handles GET /payments requests.
func (c *PaymentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	filter := adapter.PaymentFilter{UserID: userID}
	if month := queryInt(ctx, "month", 0); month != 0 {
		filter.Month = &month
	}
	if year := queryInt(ctx, "year", 0); year != 0 {
		filter.Year = &year
	}
	if payerID, err := uuid.Parse(ctx.Query("payer_id")); err == nil {
		filter.PayerID = &payerID
	}

	input := payment.ListPaymentsInput{Filter: filter}
	if status := ctx.Query("status"); status != "" {
		s := entity.PaymentStatus(status)
		input.Status = &s
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments))
}

// Pay handles POST /payments/:id/pay requests.
func (c *PaymentController) Pay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment ID format",
		})
		return
	}

	// Body is optional; an empty one means "paid now".
	var req dto.PayPaymentRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), payment.PayPaymentInput{
		UserID:    userID,
		PaymentID: paymentID,
		PaidAt:    req.PaidAt,
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(output.Payment))
}

// Revert handles POST /payments/:id/revert requests.
func (c *PaymentController) Revert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment ID format",
		})
		return
	}

	output, err := c.revertUseCase.Execute(ctx.Request.Context(), payment.RevertPaymentInput{
		UserID:    userID,
		PaymentID: paymentID,
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(output.Payment))
}

// handlePaymentError handles payment errors and returns appropriate HTTP responses.
func (c *PaymentController) handlePaymentError(ctx *gin.Context, err error) {
	var payErr *domainerror.PaymentError
	if errors.As(err, &payErr) {
		statusCode := c.getStatusCodeForPaymentError(payErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPaymentError maps payment error codes to HTTP status codes.
func (c *PaymentController) getStatusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentNotFound, domainerror.ErrCodePaymentNotOwned:
		return http.StatusNotFound
	case domainerror.ErrCodePaymentAlreadyPaid, domainerror.ErrCodePaymentNotPaid:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPaymentPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
