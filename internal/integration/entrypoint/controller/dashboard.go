package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/partilio/backend/internal/application/usecase/dashboard"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/entrypoint/dto"
	"github.com/partilio/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetMonthlySummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	balancesUseCase  *dashboard.GetPayerBalancesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetMonthlySummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	balancesUseCase *dashboard.GetPayerBalancesUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
		balancesUseCase:  balancesUseCase,
	}
}

// periodFromQuery reads the month and year query parameters, defaulting to
// the current month.
func periodFromQuery(ctx *gin.Context) (int, int) {
	now := time.Now()
	month := queryInt(ctx, "month", int(now.Month()))
	year := queryInt(ctx, "year", now.Year())
	return month, year
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, year := periodFromQuery(ctx)
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySummaryInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output.Summary))
}

// CategoryBreakdown handles GET /dashboard/categories requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, year := periodFromQuery(ctx)
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(month, year, output))
}

// PayerBalances handles GET /dashboard/payers requests.
func (c *DashboardController) PayerBalances(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, year := periodFromQuery(ctx)
	output, err := c.balancesUseCase.Execute(ctx.Request.Context(), dashboard.GetPayerBalancesInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayerBalancesResponse(month, year, output.Balances))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := http.StatusInternalServerError
		if dashErr.Code == domainerror.ErrCodeInvalidDashboardPeriod {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
