package order

import "time"

type OrderDB struct {
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
	Price            int64
	Currency         string
	Status           string
	PlanAtAcceptance *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
