package creditcard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/partilio/backend/internal/domain/entity"
	domainerror "github.com/partilio/backend/internal/domain/error"
)

type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.CreditCard
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: map[uuid.UUID]*entity.CreditCard{}}
}

func (f *fakeCardRepo) Create(_ context.Context, card *entity.CreditCard) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, domainerror.ErrCreditCardNotFound
	}
	return c, nil
}

func (f *fakeCardRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.CreditCard, error) {
	return nil, nil
}

func (f *fakeCardRepo) Update(_ context.Context, card *entity.CreditCard) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.cards, id)
	return nil
}

func (f *fakeCardRepo) CountExpenses(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeCardRepo) ExistsByNameAndUser(_ context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, c := range f.cards {
		if c.Name == name && c.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateCreditCardUseCase_RejectsDuplicateName(t *testing.T) {
	userID := uuid.New()
	repo := newFakeCardRepo()
	existing := entity.NewCreditCard(userID, "Nubank", 10, 5, nil)
	repo.cards[existing.ID] = existing

	useCase := NewCreateCreditCardUseCase(repo)

	_, err := useCase.Execute(context.Background(), CreateCreditCardInput{
		UserID:     userID,
		Name:       "Nubank",
		ClosingDay: 15,
		DueDay:     8,
	})
	if err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
	var cardErr *domainerror.CreditCardError
	if !errors.As(err, &cardErr) || cardErr.Code != domainerror.ErrCodeCardNameExists {
		t.Fatalf("expected card name exists error, got %v", err)
	}
}

func TestCreateCreditCardUseCase_AllowsSameNameForOtherUser(t *testing.T) {
	repo := newFakeCardRepo()
	existing := entity.NewCreditCard(uuid.New(), "Nubank", 10, 5, nil)
	repo.cards[existing.ID] = existing

	useCase := NewCreateCreditCardUseCase(repo)

	output, err := useCase.Execute(context.Background(), CreateCreditCardInput{
		UserID:     uuid.New(),
		Name:       "Nubank",
		ClosingDay: 10,
		DueDay:     5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.CreditCard.Name != "Nubank" {
		t.Fatalf("expected card name Nubank, got %q", output.CreditCard.Name)
	}
}

func TestUpdateCreditCardUseCase_RejectsRenameToExistingName(t *testing.T) {
	userID := uuid.New()
	repo := newFakeCardRepo()
	taken := entity.NewCreditCard(userID, "Nubank", 10, 5, nil)
	card := entity.NewCreditCard(userID, "Inter", 20, 12, nil)
	repo.cards[taken.ID] = taken
	repo.cards[card.ID] = card

	useCase := NewUpdateCreditCardUseCase(repo)

	name := "Nubank"
	_, err := useCase.Execute(context.Background(), UpdateCreditCardInput{
		UserID:       userID,
		CreditCardID: card.ID,
		Name:         &name,
	})
	if err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
	var cardErr *domainerror.CreditCardError
	if !errors.As(err, &cardErr) || cardErr.Code != domainerror.ErrCodeCardNameExists {
		t.Fatalf("expected card name exists error, got %v", err)
	}
}

func TestUpdateCreditCardUseCase_KeepingOwnNameIsNotAConflict(t *testing.T) {
	userID := uuid.New()
	repo := newFakeCardRepo()
	card := entity.NewCreditCard(userID, "Nubank", 10, 5, nil)
	repo.cards[card.ID] = card

	useCase := NewUpdateCreditCardUseCase(repo)

	name := "Nubank"
	closingDay := 12
	output, err := useCase.Execute(context.Background(), UpdateCreditCardInput{
		UserID:       userID,
		CreditCardID: card.ID,
		Name:         &name,
		ClosingDay:   &closingDay,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.CreditCard.ClosingDay != 12 {
		t.Fatalf("expected closing day 12, got %d", output.CreditCard.ClosingDay)
	}
}
