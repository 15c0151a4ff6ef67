//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"marketplace/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type Gateway interface {
	InitializeTransaction(ctx context.Context, email string, amount int64, currency, reference string) (*entities.PaymentInit, error)
}
