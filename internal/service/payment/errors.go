package payment

import "errors"

var (
	ErrUnauthorized = errors.New("actor is not allowed to pay for this order")
	ErrNotPayable   = errors.New("order is not awaiting payment")
)
