package entities

import "time"

// Wallet создаётся лениво при первом зачислении. Баланс меняется только
// сервисом расчётов и только в большую сторону.
type Wallet struct {
	UserID    string
	Balance   int64 // минорные единицы
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
