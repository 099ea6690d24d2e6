package domain_test

import (
	"errors"
	"testing"

	"github.com/randomtoy/cardstore-go/internal/domain"
)

func TestCardInput_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   domain.CardInput
		want error
	}{
		{"both present", domain.CardInput{Suit: "Clubs", Value: "2"}, nil},
		{"missing suit", domain.CardInput{Value: "2"}, domain.ErrMissingFields},
		{"missing value", domain.CardInput{Suit: "Clubs"}, domain.ErrMissingFields},
		{"both missing", domain.CardInput{}, domain.ErrMissingFields},
		// Whitespace is a non-empty string and is accepted as-is.
		{"whitespace suit", domain.CardInput{Suit: " ", Value: "2"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
