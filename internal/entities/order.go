package entities

import "time"

type Order struct {
	ID               string
	BusinessID       string
	BusinessName     string
	LogisticsID      *string
	LogisticsName    *string
	PickupAddress    string
	PickupLat        *float64
	PickupLng        *float64
	DropoffAddress   string
	DropoffLat       *float64
	DropoffLng       *float64
	ItemDescription  string
	Price            int64 // минорные единицы (копейки/kobo/cents)
	Currency         string
	Status           OrderStatusType
	PlanAtAcceptance *PlanID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderStatusType string

const (
	OrderPendingAcceptance   OrderStatusType = "pending_acceptance"
	OrderPendingPayment      OrderStatusType = "pending_payment"
	OrderInEscrow            OrderStatusType = "in_escrow"
	OrderDelivered           OrderStatusType = "delivered"
	OrderConfirmedByBusiness OrderStatusType = "confirmed_by_business"
	OrderCancelledByBusiness OrderStatusType = "cancelled_by_business"
	// OrderCancelledByLogistics как целевой статус возвращает заказ в пул,
	// в БД никогда не сохраняется.
	OrderCancelledByLogistics OrderStatusType = "cancelled_by_logistics"
	// OrderDisputed зарезервирован для внешнего процесса разрешения споров,
	// переходами этого сервиса недостижим.
	OrderDisputed OrderStatusType = "disputed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderCreate — входные данные создания заказа; цена в мажорных единицах,
// конвертация в минорные происходит в сервисе.
type OrderCreate struct {
	PickupAddress   string
	PickupLat       *float64
	PickupLng       *float64
	DropoffAddress  string
	DropoffLat      *float64
	DropoffLng      *float64
	ItemDescription string
	Price           float64
}

type OrderModify struct {
	ID               *string
	LogisticsID      *string
	LogisticsName    *string
	Status           *OrderStatusType
	PlanAtAcceptance *PlanID
}
