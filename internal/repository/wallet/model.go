package wallet

import "time"

type WalletDB struct {
	UserID    string
	Balance   int64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
