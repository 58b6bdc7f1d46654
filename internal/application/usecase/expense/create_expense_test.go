package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	created  *entity.Expense
	splits   []*entity.ExpenseSplit
	payments []*entity.ExpensePayment
	err      error
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense, splits []*entity.ExpenseSplit, payments []*entity.ExpensePayment) error {
	if f.err != nil {
		return f.err
	}
	f.created = e
	f.splits = splits
	f.payments = payments
	return nil
}

func (f *fakeExpenseRepo) FindByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByIDWithRelations(context.Context, uuid.UUID) (*entity.ExpenseWithRelations, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByFilter(context.Context, adapter.ExpenseFilter, adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	return &entity.ExpenseListResult{}, nil
}

func (f *fakeExpenseRepo) Update(context.Context, *entity.Expense, []*entity.ExpenseSplit, []*entity.ExpensePayment) error {
	return nil
}

func (f *fakeExpenseRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

type fakePayerRepo struct {
	payers map[uuid.UUID]*entity.Payer
}

func (f *fakePayerRepo) Create(context.Context, *entity.Payer) error { return nil }

func (f *fakePayerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payer, error) {
	p, ok := f.payers[id]
	if !ok {
		return nil, domainerror.ErrPayerNotFound
	}
	return p, nil
}

func (f *fakePayerRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Payer, error) {
	return nil, nil
}

func (f *fakePayerRepo) FindByIDs(_ context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Payer, error) {
	var found []*entity.Payer
	for _, id := range ids {
		if p, ok := f.payers[id]; ok && p.UserID == userID {
			found = append(found, p)
		}
	}
	return found, nil
}

func (f *fakePayerRepo) Update(context.Context, *entity.Payer) error { return nil }
func (f *fakePayerRepo) Delete(context.Context, uuid.UUID) error     { return nil }

func (f *fakePayerRepo) ExistsByNameAndUser(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakePayerRepo) CountReferences(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (f *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return nil }

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Update(context.Context, *entity.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error        { return nil }

func (f *fakeCategoryRepo) ExistsByNameAndUser(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) CountExpenses(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeCreditCardRepo struct {
	cards map[uuid.UUID]*entity.CreditCard
}

func (f *fakeCreditCardRepo) Create(context.Context, *entity.CreditCard) error { return nil }

func (f *fakeCreditCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, domainerror.ErrCreditCardNotFound
	}
	return c, nil
}

func (f *fakeCreditCardRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.CreditCard, error) {
	return nil, nil
}

func (f *fakeCreditCardRepo) Update(context.Context, *entity.CreditCard) error { return nil }
func (f *fakeCreditCardRepo) Delete(context.Context, uuid.UUID) error          { return nil }

func (f *fakeCreditCardRepo) CountExpenses(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeCreditCardRepo) ExistsByNameAndUser(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}

type createFixture struct {
	useCase     *CreateExpenseUseCase
	expenseRepo *fakeExpenseRepo
	userID      uuid.UUID
	buyer       *entity.Payer
	other       *entity.Payer
	card        *entity.CreditCard
}

func newCreateFixture() createFixture {
	userID := uuid.New()
	buyer := entity.NewPayer(userID, "Alice", "")
	other := entity.NewPayer(userID, "Bob", "")
	card := entity.NewCreditCard(userID, "Nubank", 10, 5, nil)

	expenseRepo := &fakeExpenseRepo{}
	payerRepo := &fakePayerRepo{payers: map[uuid.UUID]*entity.Payer{
		buyer.ID: buyer,
		other.ID: other,
	}}
	categoryRepo := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
	cardRepo := &fakeCreditCardRepo{cards: map[uuid.UUID]*entity.CreditCard{card.ID: card}}

	return createFixture{
		useCase:     NewCreateExpenseUseCase(expenseRepo, payerRepo, categoryRepo, cardRepo),
		expenseRepo: expenseRepo,
		userID:      userID,
		buyer:       buyer,
		other:       other,
		card:        card,
	}
}

func validInput(f createFixture) CreateExpenseInput {
	return CreateExpenseInput{
		UserID:      f.userID,
		Description: "Groceries",
		TotalAmount: decimal.NewFromInt(200),
		Type:        entity.ExpenseTypeOneTime,
		StartDate:   time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC),
		BuyerID:     f.buyer.ID,
	}
}

func TestCreateExpense_DividedExpense(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.IsDivided = true
	input.Splits = []SplitInput{
		{PayerID: f.buyer.ID, Percentage: decimal.NewFromInt(60)},
		{PayerID: f.other.ID, Percentage: decimal.NewFromInt(40)},
	}

	output, err := f.useCase.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Splits) != 2 {
		t.Fatalf("len(Splits) = %d, want 2", len(output.Splits))
	}
	sum := decimal.Zero
	for _, s := range output.Splits {
		sum = sum.Add(s.Amount)
	}
	if !sum.Equal(decimal.NewFromInt(200)) {
		t.Errorf("split amounts sum to %s, want 200", sum)
	}
	if len(output.Payments) != 1 {
		t.Fatalf("len(Payments) = %d, want 1", len(output.Payments))
	}
	if output.Payments[0].Status != entity.PaymentStatusFuture {
		t.Errorf("payment status = %s, want FUTURE", output.Payments[0].Status)
	}
	if f.expenseRepo.created == nil {
		t.Fatal("expense was not persisted")
	}
	if len(f.expenseRepo.splits) != 2 || len(f.expenseRepo.payments) != 1 {
		t.Errorf("persisted %d splits and %d payments, want 2 and 1",
			len(f.expenseRepo.splits), len(f.expenseRepo.payments))
	}
}

func TestCreateExpense_InstallmentDerivesAmount(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.Description = "Washing machine"
	input.TotalAmount = decimal.NewFromInt(600)
	input.Type = entity.ExpenseTypeInstallment
	input.IsInstallment = true
	input.NumberOfInstallments = 6
	input.DueDay = 15

	output, err := f.useCase.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Payments) != 6 {
		t.Fatalf("len(Payments) = %d, want 6", len(output.Payments))
	}
	want := decimal.NewFromInt(100)
	for _, p := range output.Payments {
		if !p.Amount.Equal(want) {
			t.Errorf("payment amount = %s, want %s", p.Amount, want)
		}
	}
}

func TestCreateExpense_RejectsSplitsWhenNotDivided(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.Splits = []SplitInput{{PayerID: f.buyer.ID, Percentage: decimal.NewFromInt(100)}}

	_, err := f.useCase.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrSplitsNotAllowed) {
		t.Errorf("Execute() error = %v, want ErrSplitsNotAllowed", err)
	}
	if f.expenseRepo.created != nil {
		t.Error("expense was persisted despite validation failure")
	}
}

func TestCreateExpense_RejectsBadPercentageSum(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.IsDivided = true
	input.Splits = []SplitInput{
		{PayerID: f.buyer.ID, Percentage: decimal.NewFromInt(50)},
		{PayerID: f.other.ID, Percentage: decimal.NewFromInt(40)},
	}

	_, err := f.useCase.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrSplitPercentageSum) {
		t.Errorf("Execute() error = %v, want ErrSplitPercentageSum", err)
	}
	if f.expenseRepo.created != nil {
		t.Error("expense was persisted despite validation failure")
	}
}

func TestCreateExpense_RejectsUnknownSplitPayer(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.IsDivided = true
	input.Splits = []SplitInput{
		{PayerID: f.buyer.ID, Percentage: decimal.NewFromInt(50)},
		{PayerID: uuid.New(), Percentage: decimal.NewFromInt(50)},
	}

	_, err := f.useCase.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrSplitPayerNotFound) {
		t.Errorf("Execute() error = %v, want ErrSplitPayerNotFound", err)
	}
}

func TestCreateExpense_RejectsUnknownBuyer(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.BuyerID = uuid.New()

	_, err := f.useCase.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrBuyerNotFound) {
		t.Errorf("Execute() error = %v, want ErrBuyerNotFound", err)
	}
}

func TestCreateExpense_RejectsBuyerOfAnotherUser(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.UserID = uuid.New()

	_, err := f.useCase.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrBuyerNotFound) {
		t.Errorf("Execute() error = %v, want ErrBuyerNotFound", err)
	}
}

func TestCreateExpense_CreditCardRequiresCard(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.Type = entity.ExpenseTypeCreditCard

	_, err := f.useCase.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrMissingCreditCard) {
		t.Errorf("Execute() error = %v, want ErrMissingCreditCard", err)
	}
}

func TestCreateExpense_CardScheduleUsesBillingCycle(t *testing.T) {
	f := newCreateFixture()
	input := validInput(f)
	input.Description = "Headphones"
	input.Type = entity.ExpenseTypeCreditCard
	input.CreditCardID = &f.card.ID
	// Purchase on the closing day rolls into the next cycle.
	input.StartDate = time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)

	output, err := f.useCase.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Payments) != 1 {
		t.Fatalf("len(Payments) = %d, want 1", len(output.Payments))
	}
	wantDue := time.Date(2030, 3, 5, 0, 0, 0, 0, time.UTC)
	if !output.Payments[0].DueDate.Equal(wantDue) {
		t.Errorf("due date = %v, want %v", output.Payments[0].DueDate, wantDue)
	}
}

func TestCreateExpense_PersistenceFailureSurfaces(t *testing.T) {
	f := newCreateFixture()
	f.expenseRepo.err = errors.New("connection reset")

	_, err := f.useCase.Execute(context.Background(), validInput(f))
	if err == nil {
		t.Fatal("Execute() error = nil, want wrapped repository error")
	}
}

func TestCreateExpense_ReportsDerivedPaymentStatuses(t *testing.T) {
	now := time.Now().UTC()
	tests := []struct {
		name      string
		startDate time.Time
		want      entity.PaymentStatus
	}{
		{"past due date", now.AddDate(0, -2, 0), entity.PaymentStatusOverdue},
		{"due today", now, entity.PaymentStatusPending},
		{"far future", now.AddDate(2, 0, 0), entity.PaymentStatusFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateFixture()
			input := validInput(f)
			input.StartDate = tt.startDate

			output, err := f.useCase.Execute(context.Background(), input)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if len(output.Payments) != 1 {
				t.Fatalf("len(Payments) = %d, want 1", len(output.Payments))
			}
			if output.Payments[0].Status != tt.want {
				t.Errorf("payment status = %s, want %s", output.Payments[0].Status, tt.want)
			}
		})
	}
}
