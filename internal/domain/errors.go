package domain

import "errors"

var (
	ErrCardNotFound  = errors.New("card not found")
	ErrMissingFields = errors.New("suit and value are required")
	ErrDuplicateID   = errors.New("duplicate card id")
)
