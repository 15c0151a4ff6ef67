package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	var plan *entities.PlanID
	if o.PlanAtAcceptance != nil {
		p := entities.PlanID(*o.PlanAtAcceptance)
		plan = &p
	}

	return &entities.Order{
		ID:               o.ID,
		BusinessID:       o.BusinessID,
		BusinessName:     o.BusinessName,
		LogisticsID:      o.LogisticsID,
		LogisticsName:    o.LogisticsName,
		PickupAddress:    o.PickupAddress,
		PickupLat:        o.PickupLat,
		PickupLng:        o.PickupLng,
		DropoffAddress:   o.DropoffAddress,
		DropoffLat:       o.DropoffLat,
		DropoffLng:       o.DropoffLng,
		ItemDescription:  o.ItemDescription,
		Price:            o.Price,
		Currency:         o.Currency,
		Status:           entities.OrderStatusType(o.Status),
		PlanAtAcceptance: plan,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
