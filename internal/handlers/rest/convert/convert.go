// Package convert переводит доменные сущности в транспортные DTO.
package convert

import (
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
)

func ToOrderDTO(o *entities.Order) dto.Order {
	var plan *string
	if o.PlanAtAcceptance != nil {
		p := o.PlanAtAcceptance.String()
		plan = &p
	}

	return dto.Order{
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
		Status:           o.Status.String(),
		PlanAtAcceptance: plan,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func ToOrderListDTO(orders []entities.Order) dto.OrderList {
	list := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for i := range orders {
		list.Orders = append(list.Orders, ToOrderDTO(&orders[i]))
	}
	return list
}

func ToWalletDTO(w *entities.Wallet) dto.Wallet {
	return dto.Wallet{
		UserID:    w.UserID,
		Balance:   w.Balance,
		Currency:  w.Currency,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
