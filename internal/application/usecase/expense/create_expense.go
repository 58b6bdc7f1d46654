// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/application/usecase/payment"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID               uuid.UUID
	Description          string
	Supplier             string
	TotalAmount          decimal.Decimal
	InstallmentAmount    decimal.Decimal // Zero means "derive from total"
	Type                 entity.ExpenseType
	StartDate            time.Time
	DueDay               int
	PurchaseDate         *time.Time
	IsInstallment        bool
	NumberOfInstallments int
	NumberOfMonths       int
	IsDivided            bool
	PayerID              *uuid.UUID
	BuyerID              uuid.UUID
	CategoryID           *uuid.UUID
	CreditCardID         *uuid.UUID
	Splits               []SplitInput
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense  *entity.Expense
	Splits   []*entity.ExpenseSplit
	Payments []*entity.ExpensePayment
}

// CreateExpenseUseCase handles expense creation logic: validation, split
// calculation, schedule generation and the atomic persistence of all rows.
type CreateExpenseUseCase struct {
	expenseRepo    adapter.ExpenseRepository
	payerRepo      adapter.PayerRepository
	categoryRepo   adapter.CategoryRepository
	creditCardRepo adapter.CreditCardRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	payerRepo adapter.PayerRepository,
	categoryRepo adapter.CategoryRepository,
	creditCardRepo adapter.CreditCardRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:    expenseRepo,
		payerRepo:      payerRepo,
		categoryRepo:   categoryRepo,
		creditCardRepo: creditCardRepo,
	}
}

// Execute performs the expense creation. Splits and the payment schedule are
// computed before anything is written; persistence is all-or-nothing.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := uc.validateBasics(input); err != nil {
		return nil, err
	}

	if err := uc.checkPayerOwnership(ctx, input.BuyerID, input.UserID, domainerror.ErrCodeExpenseBuyerNotFound, domainerror.ErrBuyerNotFound); err != nil {
		return nil, err
	}
	if input.PayerID != nil {
		if err := uc.checkPayerOwnership(ctx, *input.PayerID, input.UserID, domainerror.ErrCodeSplitPayerNotFound, domainerror.ErrPayerNotFound); err != nil {
			return nil, err
		}
	}
	if input.CategoryID != nil {
		if err := uc.checkCategoryOwnership(ctx, *input.CategoryID, input.UserID); err != nil {
			return nil, err
		}
	}

	card, err := uc.resolveCard(ctx, input)
	if err != nil {
		return nil, err
	}

	installmentAmount, err := resolveInstallmentAmount(input)
	if err != nil {
		return nil, err
	}

	// Compute splits before generation so invalid percentages reject the
	// whole request without touching storage.
	var splitResults []SplitResult
	if input.IsDivided {
		splitResults, err = CalculateSplits(installmentAmount, input.Splits)
		if err != nil {
			return nil, err
		}
		if err := uc.checkSplitPayers(ctx, input.Splits, input.UserID); err != nil {
			return nil, err
		}
	} else if len(input.Splits) > 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSplitsNotAllowed,
			"splits are only allowed when the expense is divided",
			domainerror.ErrSplitsNotAllowed,
		)
	}

	schedule, err := GenerateSchedule(ScheduleInput{
		Type:                 input.Type,
		StartDate:            input.StartDate,
		DueDay:               input.DueDay,
		PurchaseDate:         input.PurchaseDate,
		NumberOfInstallments: input.NumberOfInstallments,
		NumberOfMonths:       input.NumberOfMonths,
		Card:                 card,
	})
	if err != nil {
		return nil, err
	}

	exp := entity.NewExpense(
		input.UserID,
		input.Description,
		input.Supplier,
		input.TotalAmount,
		installmentAmount,
		input.Type,
		input.StartDate,
		input.DueDay,
		input.BuyerID,
	)
	exp.PurchaseDate = input.PurchaseDate
	exp.IsInstallment = input.IsInstallment
	exp.NumberOfInstallments = input.NumberOfInstallments
	exp.NumberOfMonths = input.NumberOfMonths
	exp.IsDivided = input.IsDivided
	exp.PayerID = input.PayerID
	exp.CategoryID = input.CategoryID
	exp.CreditCardID = input.CreditCardID

	splits := make([]*entity.ExpenseSplit, len(splitResults))
	for i, s := range splitResults {
		splits[i] = entity.NewExpenseSplit(exp.ID, s.PayerID, s.Percentage, s.Amount)
	}

	payments := make([]*entity.ExpensePayment, len(schedule))
	for i, e := range schedule {
		payments[i] = entity.NewExpensePayment(exp.ID, e.Month, e.Year, installmentAmount, e.DueDate)
	}

	if err := uc.expenseRepo.Create(ctx, exp, splits, payments); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	now := time.Now()
	for _, p := range payments {
		p.Status = payment.EffectiveStatus(p, now)
	}

	return &CreateExpenseOutput{
		Expense:  exp,
		Splits:   splits,
		Payments: payments,
	}, nil
}

func (uc *CreateExpenseUseCase) validateBasics(input CreateExpenseInput) error {
	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if !isValidExpenseType(input.Type) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseType,
			"expense type must be one_time, fixed_recurring, variable_recurring, installment or credit_card",
			domainerror.ErrInvalidExpenseType,
		)
	}
	if !input.TotalAmount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if input.InstallmentAmount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"installment amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return nil
}

func (uc *CreateExpenseUseCase) checkPayerOwnership(ctx context.Context, payerID, userID uuid.UUID, code domainerror.ExpenseErrorCode, sentinel error) error {
	payer, err := uc.payerRepo.FindByID(ctx, payerID)
	if err != nil || payer.UserID != userID {
		return domainerror.NewExpenseError(code, "payer not found", sentinel)
	}
	return nil
}

func (uc *CreateExpenseUseCase) checkCategoryOwnership(ctx context.Context, categoryID, userID uuid.UUID) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil || category.UserID != userID {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	return nil
}

// resolveCard loads the referenced credit card and enforces that credit-card
// expenses always carry one.
func (uc *CreateExpenseUseCase) resolveCard(ctx context.Context, input CreateExpenseInput) (*entity.CreditCard, error) {
	if input.CreditCardID == nil {
		if input.Type == entity.ExpenseTypeCreditCard {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeMissingCreditCard,
				"credit card expense requires a credit card",
				domainerror.ErrMissingCreditCard,
			)
		}
		return nil, nil
	}

	card, err := uc.creditCardRepo.FindByID(ctx, *input.CreditCardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingCreditCard,
			"credit card not found",
			domainerror.ErrCreditCardNotFound,
		)
	}
	return card, nil
}

// checkSplitPayers verifies every split payer exists and belongs to the user.
func (uc *CreateExpenseUseCase) checkSplitPayers(ctx context.Context, splits []SplitInput, userID uuid.UUID) error {
	ids := make([]uuid.UUID, len(splits))
	for i, s := range splits {
		ids[i] = s.PayerID
	}
	payers, err := uc.payerRepo.FindByIDs(ctx, ids, userID)
	if err != nil {
		return fmt.Errorf("failed to load split payers: %w", err)
	}
	if len(payers) != len(ids) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeSplitPayerNotFound,
			"one or more split payers not found",
			domainerror.ErrSplitPayerNotFound,
		)
	}
	return nil
}

// resolveInstallmentAmount derives the per-month amount when the client did
// not supply one: the total for single and recurring expenses, the total
// divided by the installment count for financed purchases.
func resolveInstallmentAmount(input CreateExpenseInput) (decimal.Decimal, error) {
	if input.InstallmentAmount.IsPositive() {
		return input.InstallmentAmount, nil
	}

	switch input.Type {
	case entity.ExpenseTypeInstallment, entity.ExpenseTypeCreditCard:
		n := input.NumberOfInstallments
		if n == 0 && input.Type == entity.ExpenseTypeCreditCard {
			n = 1
		}
		if n <= 0 {
			return decimal.Zero, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidInstallmentCount,
				"number of installments must be greater than zero",
				domainerror.ErrInvalidInstallmentCount,
			)
		}
		return input.TotalAmount.Div(decimal.NewFromInt(int64(n))).Round(currencyPlaces), nil
	default:
		return input.TotalAmount, nil
	}
}

// isValidExpenseType validates the expense type.
func isValidExpenseType(t entity.ExpenseType) bool {
	switch t {
	case entity.ExpenseTypeOneTime,
		entity.ExpenseTypeFixedRecurring,
		entity.ExpenseTypeVariableRecurring,
		entity.ExpenseTypeInstallment,
		entity.ExpenseTypeCreditCard:
		return true
	}
	return false
}
