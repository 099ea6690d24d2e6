package domain

// Card is a single playing card record. ID is assigned by the store.
type Card struct {
	ID    int    `json:"id"`
	Suit  string `json:"suit"`
	Value string `json:"value"`
}

// CardInput carries the caller-supplied fields of a new card.
type CardInput struct {
	Suit  string
	Value string
}

// Validate reports ErrMissingFields when either field is empty.
func (in CardInput) Validate() error {
	if in.Suit == "" || in.Value == "" {
		return ErrMissingFields
	}
	return nil
}
