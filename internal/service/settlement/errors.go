package settlement

import "errors"

var (
	ErrMissingLogistics = errors.New("order has no assigned logistics provider")
	ErrAlreadySettled   = errors.New("order is already settled")
	ErrNotFound         = errors.New("settlement not found")
)
