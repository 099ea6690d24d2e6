package cards

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/randomtoy/cardstore-go/internal/domain"
)

//go:embed data/seed.json
var seedFS embed.FS

// MemoryStore keeps cards in insertion order in process memory.
// A single RWMutex guards both the slice and the id counter so that
// id allocation and append are one atomic step.
type MemoryStore struct {
	mu     sync.RWMutex
	cards  []domain.Card
	nextID int
}

// NewMemoryStore returns a store holding seed, with the counter set one
// past the highest seeded id.
func NewMemoryStore(seed ...domain.Card) (*MemoryStore, error) {
	s := &MemoryStore{
		cards:  make([]domain.Card, 0, len(seed)),
		nextID: 1,
	}
	seen := make(map[int]struct{}, len(seed))
	for _, c := range seed {
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("seed card %d: %w", c.ID, domain.ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
		s.cards = append(s.cards, c)
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s, nil
}

// NewSeededStore returns a store loaded with the embedded seed data.
func NewSeededStore() (*MemoryStore, error) {
	seed, err := loadSeed()
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(seed...)
}

func loadSeed() ([]domain.Card, error) {
	raw, err := seedFS.ReadFile("data/seed.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded seed: %w", err)
	}
	var seed []domain.Card
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse embedded seed: %w", err)
	}
	return seed, nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cards), nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Card{}, domain.ErrCardNotFound
	}
	return s.cards[i], nil
}

func (s *MemoryStore) Create(_ context.Context, in domain.CardInput) (domain.Card, error) {
	if err := in.Validate(); err != nil {
		return domain.Card{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	card := domain.Card{
		ID:    s.nextID,
		Suit:  in.Suit,
		Value: in.Value,
	}
	s.nextID++
	s.cards = append(s.cards, card)
	return card, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) (domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Card{}, domain.ErrCardNotFound
	}
	removed := s.cards[i]
	s.cards = slices.Delete(s.cards, i, i+1)
	return removed, nil
}

// indexOf must be called with mu held.
func (s *MemoryStore) indexOf(id int) int {
	return slices.IndexFunc(s.cards, func(c domain.Card) bool { return c.ID == id })
}
