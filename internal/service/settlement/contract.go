//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, settlement entities.Settlement) (*entities.Settlement, error)
	MarkCompleted(ctx context.Context, settlementID int64) error
	ListPending(ctx context.Context) ([]entities.Settlement, error)
}

type WalletRepository interface {
	// Credit создаёт кошелёк при первом зачислении (нулевой стартовый баланс,
	// валюта заказа) и увеличивает баланс на amount.
	Credit(ctx context.Context, userID string, amount int64, currency string) (*entities.Wallet, error)
}

type PlanRegistry interface {
	Fee(id entities.PlanID) (entities.Plan, bool)
	Basic() entities.Plan
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
