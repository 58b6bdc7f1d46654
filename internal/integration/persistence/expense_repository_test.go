package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/partilio/backend/internal/application/adapter"
	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
	"github.com/partilio/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.PayerModel{},
		&model.ExpenseModel{},
		&model.ExpenseSplitModel{},
		&model.ExpensePaymentModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

type expenseFixture struct {
	user     *entity.User
	buyer    *entity.Payer
	other    *entity.Payer
	category *entity.Category
}

func seedExpenseFixture(t *testing.T, db *gorm.DB) expenseFixture {
	t.Helper()

	user := entity.NewUser("ana@example.com", "Ana", "hash", time.Now().UTC())
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	buyer := entity.NewPayer(user.ID, "Alice", "#FF5733")
	other := entity.NewPayer(user.ID, "Bob", "#3357FF")
	for _, p := range []*entity.Payer{buyer, other} {
		if err := db.Create(model.PayerFromEntity(p)).Error; err != nil {
			t.Fatalf("failed to seed payer: %v", err)
		}
	}

	category := entity.NewCategory(user.ID, "Housing", "#4CAF50", "home")
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	return expenseFixture{user: user, buyer: buyer, other: other, category: category}
}

func buildExpense(f expenseFixture) (*entity.Expense, []*entity.ExpenseSplit, []*entity.ExpensePayment) {
	amount := decimal.NewFromInt(1500)
	exp := entity.NewExpense(
		f.user.ID, "Rent", "Landlord Inc",
		amount, amount,
		entity.ExpenseTypeFixedRecurring,
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), 5,
		f.buyer.ID,
	)
	exp.NumberOfMonths = 3
	exp.IsDivided = true
	exp.CategoryID = &f.category.ID

	splits := []*entity.ExpenseSplit{
		entity.NewExpenseSplit(exp.ID, f.buyer.ID, decimal.NewFromInt(60), decimal.NewFromInt(900)),
		entity.NewExpenseSplit(exp.ID, f.other.ID, decimal.NewFromInt(40), decimal.NewFromInt(600)),
	}

	payments := make([]*entity.ExpensePayment, 0, 3)
	for m := 1; m <= 3; m++ {
		due := time.Date(2030, time.Month(m), 5, 0, 0, 0, 0, time.UTC)
		payments = append(payments, entity.NewExpensePayment(exp.ID, m, 2030, amount, due))
	}

	return exp, splits, payments
}

func TestExpenseRepository_CreateAndFindWithRelations(t *testing.T) {
	db := newTestDB(t)
	f := seedExpenseFixture(t, db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	exp, splits, payments := buildExpense(f)
	if err := repo.Create(ctx, exp, splits, payments); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByIDWithRelations(ctx, exp.ID)
	if err != nil {
		t.Fatalf("FindByIDWithRelations() error = %v", err)
	}

	if got.Expense.Description != "Rent" {
		t.Errorf("Description = %q, want %q", got.Expense.Description, "Rent")
	}
	if len(got.Splits) != 2 {
		t.Fatalf("len(Splits) = %d, want 2", len(got.Splits))
	}
	if len(got.Payments) != 3 {
		t.Fatalf("len(Payments) = %d, want 3", len(got.Payments))
	}
	for i := 1; i < len(got.Payments); i++ {
		if got.Payments[i].DueDate.Before(got.Payments[i-1].DueDate) {
			t.Errorf("payments not ordered by due date: %v before %v",
				got.Payments[i].DueDate, got.Payments[i-1].DueDate)
		}
	}
	if got.Buyer == nil || got.Buyer.Name != "Alice" {
		t.Errorf("Buyer = %+v, want Alice", got.Buyer)
	}
	if got.Category == nil || got.Category.Name != "Housing" {
		t.Errorf("Category = %+v, want Housing", got.Category)
	}
}

func TestExpenseRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("FindByID() error = %v, want ErrExpenseNotFound", err)
	}
}

func TestExpenseRepository_UpdatePreservesPaidPayments(t *testing.T) {
	db := newTestDB(t)
	f := seedExpenseFixture(t, db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	exp, splits, payments := buildExpense(f)
	if err := repo.Create(ctx, exp, splits, payments); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Settle January directly in the store.
	paidAt := time.Date(2030, 1, 3, 10, 0, 0, 0, time.UTC)
	err := db.Model(&model.ExpensePaymentModel{}).
		Where("expense_id = ? AND month = ?", exp.ID, 1).
		Updates(map[string]any{"status": string(entity.PaymentStatusPaid), "paid_at": paidAt}).Error
	if err != nil {
		t.Fatalf("failed to mark payment paid: %v", err)
	}

	// Regenerate with a new amount over four months.
	newAmount := decimal.NewFromInt(1800)
	exp.TotalAmount = newAmount
	exp.InstallmentAmount = newAmount
	exp.NumberOfMonths = 4
	regenerated := make([]*entity.ExpensePayment, 0, 4)
	for m := 1; m <= 4; m++ {
		due := time.Date(2030, time.Month(m), 5, 0, 0, 0, 0, time.UTC)
		regenerated = append(regenerated, entity.NewExpensePayment(exp.ID, m, 2030, newAmount, due))
	}

	newSplits := []*entity.ExpenseSplit{
		entity.NewExpenseSplit(exp.ID, f.buyer.ID, decimal.NewFromInt(100), newAmount),
	}

	if err := repo.Update(ctx, exp, newSplits, regenerated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.FindByIDWithRelations(ctx, exp.ID)
	if err != nil {
		t.Fatalf("FindByIDWithRelations() error = %v", err)
	}

	if len(got.Payments) != 4 {
		t.Fatalf("len(Payments) = %d, want 4", len(got.Payments))
	}
	if len(got.Splits) != 1 {
		t.Fatalf("len(Splits) = %d, want 1", len(got.Splits))
	}

	january := got.Payments[0]
	if !january.IsPaid() {
		t.Error("January payment lost its paid state")
	}
	if !january.Amount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("January amount = %s, want 1500", january.Amount)
	}
	for _, p := range got.Payments[1:] {
		if p.IsPaid() {
			t.Errorf("month %d should be unpaid after regeneration", p.Month)
		}
		if !p.Amount.Equal(newAmount) {
			t.Errorf("month %d amount = %s, want %s", p.Month, p.Amount, newAmount)
		}
	}
}

func TestExpenseRepository_DeleteRemovesOwnedRows(t *testing.T) {
	db := newTestDB(t)
	f := seedExpenseFixture(t, db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	exp, splits, payments := buildExpense(f)
	if err := repo.Create(ctx, exp, splits, payments); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, exp.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, exp.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrExpenseNotFound", err)
	}

	var splitCount, paymentCount int64
	db.Model(&model.ExpenseSplitModel{}).Where("expense_id = ?", exp.ID).Count(&splitCount)
	db.Model(&model.ExpensePaymentModel{}).Where("expense_id = ?", exp.ID).Count(&paymentCount)
	if splitCount != 0 {
		t.Errorf("split count after delete = %d, want 0", splitCount)
	}
	if paymentCount != 0 {
		t.Errorf("payment count after delete = %d, want 0", paymentCount)
	}
}

func TestExpenseRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	f := seedExpenseFixture(t, db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	rent, rentSplits, rentPayments := buildExpense(f)
	if err := repo.Create(ctx, rent, rentSplits, rentPayments); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	concertAmount := decimal.NewFromInt(200)
	concert := entity.NewExpense(
		f.user.ID, "Concert tickets", "",
		concertAmount, concertAmount,
		entity.ExpenseTypeOneTime,
		time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC), 0,
		f.buyer.ID,
	)
	concertPayment := entity.NewExpensePayment(
		concert.ID, 6, 2030, concertAmount,
		time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	if err := repo.Create(ctx, concert, nil, []*entity.ExpensePayment{concertPayment}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	pagination := adapter.ExpensePagination{Page: 1, Limit: 20}

	t.Run("by type", func(t *testing.T) {
		oneTime := entity.ExpenseTypeOneTime
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: f.user.ID, Type: &oneTime}, pagination)
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("Total = %d, want 1", result.Total)
		}
		if result.Expenses[0].Expense.Description != "Concert tickets" {
			t.Errorf("Description = %q, want %q", result.Expenses[0].Expense.Description, "Concert tickets")
		}
	})

	t.Run("by month and year", func(t *testing.T) {
		month, year := 2, 2030
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: f.user.ID, Month: &month, Year: &year}, pagination)
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("Total = %d, want 1", result.Total)
		}
		if result.Expenses[0].Expense.Description != "Rent" {
			t.Errorf("Description = %q, want %q", result.Expenses[0].Expense.Description, "Rent")
		}
	})

	t.Run("by search", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: f.user.ID, Search: "landlord"}, pagination)
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("Total = %d, want 1", result.Total)
		}
	})

	t.Run("by split payer", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: f.user.ID, PayerID: &f.other.ID}, pagination)
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("Total = %d, want 1", result.Total)
		}
		if result.Expenses[0].Expense.Description != "Rent" {
			t.Errorf("Description = %q, want %q", result.Expenses[0].Expense.Description, "Rent")
		}
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{UserID: uuid.New()}, pagination)
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 0 {
			t.Errorf("Total = %d, want 0", result.Total)
		}
	})
}
