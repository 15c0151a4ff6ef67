//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_pay_post_test
package order_pay_post

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
	InitiatePayment(ctx context.Context, actor entities.Actor, orderID string) (*entities.PaymentInit, error)
}
