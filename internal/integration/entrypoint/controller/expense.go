package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/application/usecase/expense"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/entrypoint/dto"
	"github.com/partilio/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	getUseCase    *expense.GetExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	input, err := c.buildCreateInput(userID, &req)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	response := dto.ToExpenseResponse(&entity.ExpenseWithRelations{
		Expense:  output.Expense,
		Splits:   output.Splits,
		Payments: output.Payments,
	})
	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	filter := adapter.ExpenseFilter{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if month := queryInt(ctx, "month", 0); month != 0 {
		filter.Month = &month
	}
	if year := queryInt(ctx, "year", 0); year != 0 {
		filter.Year = &year
	}
	if expenseType := ctx.Query("type"); expenseType != "" {
		t := entity.ExpenseType(expenseType)
		filter.Type = &t
	}
	if categoryID, err := uuid.Parse(ctx.Query("category_id")); err == nil {
		filter.CategoryID = &categoryID
	}
	if payerID, err := uuid.Parse(ctx.Query("payer_id")); err == nil {
		filter.PayerID = &payerID
	}
	if cardID, err := uuid.Parse(ctx.Query("credit_card_id")); err == nil {
		filter.CreditCardID = &cardID
	}

	input := expense.ListExpensesInput{
		Filter: filter,
		Pagination: adapter.ExpensePagination{
			Page:  queryInt(ctx, "page", 0),
			Limit: queryInt(ctx, "limit", 0),
		},
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Result))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	createInput, err := c.buildCreateInput(userID, &req.CreateExpenseRequest)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		UserID:             userID,
		ExpenseID:          expenseID,
		CreateExpenseInput: *createInput,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	response := dto.ToExpenseResponse(&entity.ExpenseWithRelations{
		Expense:  output.Expense,
		Splits:   output.Splits,
		Payments: output.Payments,
	})
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// buildCreateInput converts a request body into a use case input, parsing
// dates and UUID references.
func (c *ExpenseController) buildCreateInput(userID uuid.UUID, req *dto.CreateExpenseRequest) (*expense.CreateExpenseInput, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeInvalidStartDate, "Invalid start date", domainerror.ErrInvalidStartDate)
	}

	input := &expense.CreateExpenseInput{
		UserID:               userID,
		Description:          req.Description,
		Supplier:             req.Supplier,
		TotalAmount:          decimal.NewFromFloat(req.TotalAmount),
		Type:                 entity.ExpenseType(req.Type),
		StartDate:            startDate,
		DueDay:               req.DueDay,
		IsInstallment:        req.IsInstallment,
		NumberOfInstallments: req.NumberOfInstallments,
		NumberOfMonths:       req.NumberOfMonths,
		IsDivided:            req.IsDivided,
	}

	if req.InstallmentAmount != nil {
		input.InstallmentAmount = decimal.NewFromFloat(*req.InstallmentAmount)
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := time.Parse("2006-01-02", *req.PurchaseDate)
		if err != nil {
			return nil, domainerror.NewExpenseError(domainerror.ErrCodeInvalidStartDate, "Invalid purchase date", domainerror.ErrInvalidStartDate)
		}
		input.PurchaseDate = &purchaseDate
	}

	buyerID, err := uuid.Parse(req.BuyerID)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeExpenseBuyerNotFound, "Invalid buyer ID", domainerror.ErrBuyerNotFound)
	}
	input.BuyerID = buyerID

	if req.PayerID != nil {
		payerID, err := uuid.Parse(*req.PayerID)
		if err != nil {
			return nil, domainerror.NewExpenseError(domainerror.ErrCodeMissingExpenseFields, "Invalid payer ID", domainerror.ErrMissingExpenseFields)
		}
		input.PayerID = &payerID
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, domainerror.NewExpenseError(domainerror.ErrCodeMissingExpenseFields, "Invalid category ID", domainerror.ErrMissingExpenseFields)
		}
		input.CategoryID = &categoryID
	}
	if req.CreditCardID != nil {
		cardID, err := uuid.Parse(*req.CreditCardID)
		if err != nil {
			return nil, domainerror.NewExpenseError(domainerror.ErrCodeMissingExpenseFields, "Invalid credit card ID", domainerror.ErrMissingExpenseFields)
		}
		input.CreditCardID = &cardID
	}

	input.Splits = make([]expense.SplitInput, len(req.Splits))
	for i, split := range req.Splits {
		payerID, err := uuid.Parse(split.PayerID)
		if err != nil {
			return nil, domainerror.NewExpenseError(domainerror.ErrCodeSplitPayerNotFound, "Invalid split payer ID", domainerror.ErrSplitPayerNotFound)
		}
		input.Splits[i] = expense.SplitInput{
			PayerID:    payerID,
			Percentage: decimal.NewFromFloat(split.Percentage),
		}
	}

	return input, nil
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	// Referenced payers, categories and cards surface their own error types.
	var payerErr *domainerror.PayerError
	if errors.As(err, &payerErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: payerErr.Message,
			Code:  string(payerErr.Code),
		})
		return
	}
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}
	var cardErr *domainerror.CreditCardError
	if errors.As(err, &cardErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound, domainerror.ErrCodeExpenseNotOwned:
		return http.StatusNotFound
	case domainerror.ErrCodeSplitPayerNotFound, domainerror.ErrCodeExpenseBuyerNotFound:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidExpenseType,
		domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDueDay,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeInvalidMonthCount,
		domainerror.ErrCodeInvalidStartDate,
		domainerror.ErrCodeMissingCreditCard,
		domainerror.ErrCodeExpenseDescTooLong,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeEmptySplits,
		domainerror.ErrCodeDuplicateSplitPayer,
		domainerror.ErrCodeInvalidSplitPercentage,
		domainerror.ErrCodeSplitPercentageSum,
		domainerror.ErrCodeSplitsNotAllowed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
