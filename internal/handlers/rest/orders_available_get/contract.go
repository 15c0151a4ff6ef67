//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_available_get_test
package orders_available_get

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AvailableOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
}
