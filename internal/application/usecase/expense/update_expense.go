package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/application/usecase/payment"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense updates. The full
// expense definition is resubmitted; splits and the schedule are recomputed.
type UpdateExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
	CreateExpenseInput
}

// UpdateExpenseOutput represents the output of expense updates.
type UpdateExpenseOutput struct {
	Expense  *entity.Expense
	Splits   []*entity.ExpenseSplit
	Payments []*entity.ExpensePayment
}

// UpdateExpenseUseCase handles expense updates. Splits and the payment
// schedule are regenerated from the new definition; payments already marked
// as paid are preserved by the repository.
type UpdateExpenseUseCase struct {
	expenseRepo    adapter.ExpenseRepository
	payerRepo      adapter.PayerRepository
	categoryRepo   adapter.CategoryRepository
	creditCardRepo adapter.CreditCardRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	payerRepo adapter.PayerRepository,
	categoryRepo adapter.CategoryRepository,
	creditCardRepo adapter.CreditCardRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:    expenseRepo,
		payerRepo:      payerRepo,
		categoryRepo:   categoryRepo,
		creditCardRepo: creditCardRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	existing, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	if existing.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotOwned,
			"expense does not belong to user",
			domainerror.ErrExpenseNotOwnedByUser,
		)
	}

	// Validation and generation reuse the creation path so updates cannot
	// produce a state creation would have rejected.
	create := NewCreateExpenseUseCase(uc.expenseRepo, uc.payerRepo, uc.categoryRepo, uc.creditCardRepo)

	createInput := input.CreateExpenseInput
	createInput.UserID = input.UserID

	if err := create.validateBasics(createInput); err != nil {
		return nil, err
	}
	if err := create.checkPayerOwnership(ctx, createInput.BuyerID, input.UserID, domainerror.ErrCodeExpenseBuyerNotFound, domainerror.ErrBuyerNotFound); err != nil {
		return nil, err
	}
	if createInput.PayerID != nil {
		if err := create.checkPayerOwnership(ctx, *createInput.PayerID, input.UserID, domainerror.ErrCodeSplitPayerNotFound, domainerror.ErrPayerNotFound); err != nil {
			return nil, err
		}
	}
	if createInput.CategoryID != nil {
		if err := create.checkCategoryOwnership(ctx, *createInput.CategoryID, input.UserID); err != nil {
			return nil, err
		}
	}

	card, err := create.resolveCard(ctx, createInput)
	if err != nil {
		return nil, err
	}

	installmentAmount, err := resolveInstallmentAmount(createInput)
	if err != nil {
		return nil, err
	}

	var splitResults []SplitResult
	if createInput.IsDivided {
		splitResults, err = CalculateSplits(installmentAmount, createInput.Splits)
		if err != nil {
			return nil, err
		}
		if err := create.checkSplitPayers(ctx, createInput.Splits, input.UserID); err != nil {
			return nil, err
		}
	} else if len(createInput.Splits) > 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSplitsNotAllowed,
			"splits are only allowed when the expense is divided",
			domainerror.ErrSplitsNotAllowed,
		)
	}

	schedule, err := GenerateSchedule(ScheduleInput{
		Type:                 createInput.Type,
		StartDate:            createInput.StartDate,
		DueDay:               createInput.DueDay,
		PurchaseDate:         createInput.PurchaseDate,
		NumberOfInstallments: createInput.NumberOfInstallments,
		NumberOfMonths:       createInput.NumberOfMonths,
		Card:                 card,
	})
	if err != nil {
		return nil, err
	}

	existing.Description = createInput.Description
	existing.Supplier = createInput.Supplier
	existing.TotalAmount = createInput.TotalAmount
	existing.InstallmentAmount = installmentAmount
	existing.Type = createInput.Type
	existing.StartDate = createInput.StartDate
	existing.DueDay = createInput.DueDay
	existing.PurchaseDate = createInput.PurchaseDate
	existing.IsInstallment = createInput.IsInstallment
	existing.NumberOfInstallments = createInput.NumberOfInstallments
	existing.NumberOfMonths = createInput.NumberOfMonths
	existing.IsDivided = createInput.IsDivided
	existing.PayerID = createInput.PayerID
	existing.BuyerID = createInput.BuyerID
	existing.CategoryID = createInput.CategoryID
	existing.CreditCardID = createInput.CreditCardID
	existing.UpdatedAt = time.Now().UTC()

	splits := make([]*entity.ExpenseSplit, len(splitResults))
	for i, s := range splitResults {
		splits[i] = entity.NewExpenseSplit(existing.ID, s.PayerID, s.Percentage, s.Amount)
	}

	payments := make([]*entity.ExpensePayment, len(schedule))
	for i, e := range schedule {
		payments[i] = entity.NewExpensePayment(existing.ID, e.Month, e.Year, installmentAmount, e.DueDate)
	}

	if err := uc.expenseRepo.Update(ctx, existing, splits, payments); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	now := time.Now()
	for _, p := range payments {
		p.Status = payment.EffectiveStatus(p, now)
	}

	return &UpdateExpenseOutput{
		Expense:  existing,
		Splits:   splits,
		Payments: payments,
	}, nil
}
