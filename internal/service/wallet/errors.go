package wallet

import "errors"

var (
	ErrUnauthorized   = errors.New("actor is not allowed to read this wallet")
	ErrWalletNotFound = errors.New("wallet not found")
)
