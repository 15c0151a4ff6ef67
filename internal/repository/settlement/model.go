package settlement

import "time"

type SettlementDB struct {
	ID          int64
	OrderID     string
	LogisticsID string
	Amount      int64
	Fee         int64
	Net         int64
	PlanID      string
	Currency    string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
