package usecase

import "errors"

// Sentinel errors the delivery layer maps onto HTTP statuses.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)
