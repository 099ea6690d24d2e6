package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/randomtoy/cardstore-go/internal/app"
	"github.com/randomtoy/cardstore-go/internal/domain"
)

type mockCardStore struct {
	cards   []domain.Card
	created []domain.CardInput
	err     error
}

func (m *mockCardStore) List(_ context.Context) ([]domain.Card, error) {
	return m.cards, m.err
}

func (m *mockCardStore) Get(_ context.Context, id int) (domain.Card, error) {
	if m.err != nil {
		return domain.Card{}, m.err
	}
	for _, c := range m.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Card{}, domain.ErrCardNotFound
}

func (m *mockCardStore) Create(_ context.Context, in domain.CardInput) (domain.Card, error) {
	if m.err != nil {
		return domain.Card{}, m.err
	}
	m.created = append(m.created, in)
	c := domain.Card{ID: 100 + len(m.created), Suit: in.Suit, Value: in.Value}
	m.cards = append(m.cards, c)
	return c, nil
}

func (m *mockCardStore) Delete(_ context.Context, id int) (domain.Card, error) {
	if m.err != nil {
		return domain.Card{}, m.err
	}
	for i, c := range m.cards {
		if c.ID == id {
			m.cards = append(m.cards[:i], m.cards[i+1:]...)
			return c, nil
		}
	}
	return domain.Card{}, domain.ErrCardNotFound
}

func TestCreateCard_Success(t *testing.T) {
	store := &mockCardStore{}
	svc := app.NewCardService(store, nil)

	c, err := svc.CreateCard(context.Background(), domain.CardInput{Suit: "Clubs", Value: "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 101 || c.Suit != "Clubs" || c.Value != "2" {
		t.Errorf("unexpected card: %+v", c)
	}
}

func TestCreateCard_MissingFieldsSkipsStore(t *testing.T) {
	store := &mockCardStore{}
	svc := app.NewCardService(store, nil)

	_, err := svc.CreateCard(context.Background(), domain.CardInput{Suit: "Clubs"})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("store should not be called, got %d creates", len(store.created))
	}
}

func TestGetCard_NotFoundIsWrapped(t *testing.T) {
	svc := app.NewCardService(&mockCardStore{}, nil)

	_, err := svc.GetCard(context.Background(), 42)
	if !errors.Is(err, domain.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestDeleteCard_ReturnsRemoved(t *testing.T) {
	store := &mockCardStore{cards: []domain.Card{{ID: 1, Suit: "Hearts", Value: "Ace"}}}
	svc := app.NewCardService(store, nil)

	c, err := svc.DeleteCard(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 1 {
		t.Errorf("expected removed card 1, got %+v", c)
	}
	if len(store.cards) != 0 {
		t.Errorf("expected empty store, got %v", store.cards)
	}
}

func TestListCards_StoreFailure(t *testing.T) {
	storeErr := errors.New("boom")
	svc := app.NewCardService(&mockCardStore{err: storeErr}, nil)

	_, err := svc.ListCards(context.Background())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
