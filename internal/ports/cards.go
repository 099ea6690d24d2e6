package ports

import (
	"context"

	"github.com/randomtoy/cardstore-go/internal/domain"
)

// CardStore owns the card collection and the id counter.
type CardStore interface {
	List(ctx context.Context) ([]domain.Card, error)
	// Get returns domain.ErrCardNotFound when no card has the given id.
	Get(ctx context.Context, id int) (domain.Card, error)
	// Create assigns the next id and appends the card to the collection.
	Create(ctx context.Context, in domain.CardInput) (domain.Card, error)
	// Delete removes and returns the card, or domain.ErrCardNotFound.
	Delete(ctx context.Context, id int) (domain.Card, error)
}
