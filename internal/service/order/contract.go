//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	ListByBusiness(ctx context.Context, businessID string) ([]entities.Order, error)
	ListAvailable(ctx context.Context) ([]entities.Order, error)
	ListByLogistics(ctx context.Context, logisticsID string) ([]entities.Order, error)

	// AcceptPending — условный UPDATE: назначает исполнителя только если заказ
	// всё ещё pending_acceptance и не назначен. Гарантирует одного победителя
	// при конкурентных попытках.
	AcceptPending(ctx context.Context, orderID string, logisticsID, logisticsName string, plan entities.PlanID) (*entities.Order, error)

	// Transition — условный UPDATE статуса from -> to; clearLogistics
	// дополнительно очищает назначение и зафиксированный тариф.
	Transition(ctx context.Context, orderID string, from, to entities.OrderStatusType, clearLogistics bool) (*entities.Order, error)
}

type SettlementService interface {
	Prepare(ctx context.Context, order *entities.Order) (*entities.Settlement, error)
	Apply(ctx context.Context, settlement *entities.Settlement) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
