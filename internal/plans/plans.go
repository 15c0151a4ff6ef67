package plans

import "marketplace/internal/entities"

// Registry — статичная таблица тарифов. Загружается один раз, в рантайме
// не мутирует.
type Registry struct {
	plans map[entities.PlanID]entities.Plan
}

func New() *Registry {
	return &Registry{
		plans: map[entities.PlanID]entities.Plan{
			entities.PlanBasic: {
				ID:             entities.PlanBasic,
				Name:           "Basic",
				FeeBasisPoints: 500,
				Description:    "Ideal for new logistics partners or individual couriers.",
			},
			entities.PlanPro: {
				ID:             entities.PlanPro,
				Name:           "Pro",
				FeeBasisPoints: 350,
				Description:    "For established delivery companies aiming to expand.",
			},
			entities.PlanEnterprise: {
				ID:             entities.PlanEnterprise,
				Name:           "Enterprise",
				FeeBasisPoints: 200,
				Description:    "Custom solutions for large-scale logistics operations.",
			},
		},
	}
}

func (r *Registry) Fee(id entities.PlanID) (entities.Plan, bool) {
	plan, ok := r.plans[id]
	return plan, ok
}

// Basic — тариф нижнего уровня, используется как fallback при расчёте,
// если тариф заказа неизвестен реестру.
func (r *Registry) Basic() entities.Plan {
	return r.plans[entities.PlanBasic]
}

func (r *Registry) IsValid(id entities.PlanID) bool {
	_, ok := r.plans[id]
	return ok
}
