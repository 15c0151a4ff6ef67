package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrUndefinedStatus       = errors.New("undefined target status")

	ErrUnauthorized = errors.New("actor is not allowed to perform this operation")
	ErrNotVerified  = errors.New("logistics actor is not verified")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotAvailable = errors.New("order is not available for acceptance")
	ErrInvalidTransition = errors.New("order status does not allow this transition")
)
