package settlement

import "marketplace/internal/entities"

func ToDomain(s *SettlementDB) *entities.Settlement {
	if s == nil {
		return nil
	}
	return &entities.Settlement{
		ID:          s.ID,
		OrderID:     s.OrderID,
		LogisticsID: s.LogisticsID,
		Amount:      s.Amount,
		Fee:         s.Fee,
		Net:         s.Net,
		PlanID:      entities.PlanID(s.PlanID),
		Currency:    s.Currency,
		Status:      entities.SettlementStatusType(s.Status),
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	}
}
