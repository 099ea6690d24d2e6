package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randomtoy/cardstore-go/internal/domain"
	"github.com/randomtoy/cardstore-go/internal/ports"
)

// CardService implements the card use cases on top of a CardStore.
type CardService struct {
	store  ports.CardStore
	logger *slog.Logger
}

func NewCardService(store ports.CardStore, logger *slog.Logger) *CardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardService{
		store:  store,
		logger: logger,
	}
}

func (s *CardService) ListCards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

func (s *CardService) GetCard(ctx context.Context, id int) (domain.Card, error) {
	card, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("get card %d: %w", id, err)
	}
	return card, nil
}

// CreateCard validates in before it reaches the store, so a rejected
// request never allocates an id.
func (s *CardService) CreateCard(ctx context.Context, in domain.CardInput) (domain.Card, error) {
	if err := in.Validate(); err != nil {
		return domain.Card{}, err
	}

	card, err := s.store.Create(ctx, in)
	if err != nil {
		return domain.Card{}, fmt.Errorf("create card: %w", err)
	}
	s.logger.DebugContext(ctx, "card created", "id", card.ID, "suit", card.Suit, "value", card.Value)
	return card, nil
}

func (s *CardService) DeleteCard(ctx context.Context, id int) (domain.Card, error) {
	card, err := s.store.Delete(ctx, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("delete card %d: %w", id, err)
	}
	s.logger.DebugContext(ctx, "card deleted", "id", card.ID)
	return card, nil
}
