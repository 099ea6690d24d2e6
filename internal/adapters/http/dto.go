package http

import "github.com/randomtoy/cardstore-go/internal/domain"

// CreateCardRequest is the JSON body accepted by POST /cards.
type CreateCardRequest struct {
	Suit  string `json:"suit"`
	Value string `json:"value"`
}

func (r CreateCardRequest) toInput() domain.CardInput {
	return domain.CardInput{Suit: r.Suit, Value: r.Value}
}

// DeleteCardResponse is returned by DELETE /cards/:id.
type DeleteCardResponse struct {
	Message string      `json:"message"`
	Card    domain.Card `json:"card"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

const (
	msgCardNotFound   = "Card not found"
	msgMissingFields  = "Suit and value are required properties."
	msgMalformedBody  = "Request body must be a JSON object with string suit and value."
	msgInternalError  = "Internal server error"
	msgCardRemovedFmt = "Card with ID %d removed."
)
