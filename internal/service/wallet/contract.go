//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*entities.Wallet, error)
}
