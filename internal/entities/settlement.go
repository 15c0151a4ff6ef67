package entities

import "time"

// Settlement — расчёт по подтверждённому заказу. Создаётся в той же
// транзакции, что и переход в confirmed_by_business; зачисление на кошелёк
// применяется отдельным шагом и повторяется до успеха.
type Settlement struct {
	ID          int64
	OrderID     string
	LogisticsID string
	Amount      int64 // цена заказа, минорные единицы
	Fee         int64 // комиссия площадки
	Net         int64 // к зачислению исполнителю
	PlanID      PlanID
	Currency    string
	Status      SettlementStatusType
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type SettlementStatusType string

const (
	SettlementPending   SettlementStatusType = "pending"
	SettlementCompleted SettlementStatusType = "completed"
)

func (s SettlementStatusType) String() string {
	return string(s)
}
