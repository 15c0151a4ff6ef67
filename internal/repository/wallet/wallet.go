package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	walletservice "marketplace/internal/service/wallet"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.Wallet, error) {
	query := `
		SELECT user_id, balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1`

	var walletDB WalletDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&walletDB.UserID,
		&walletDB.Balance,
		&walletDB.Currency,
		&walletDB.CreatedAt,
		&walletDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, walletservice.ErrWalletNotFound
		}
		return nil, fmt.Errorf("unexpected wallet repository get error: %w", err)
	}

	return ToDomain(&walletDB), nil
}

// Credit — upsert: кошелёк создаётся при первом зачислении с валютой заказа,
// дальше только растёт. Валюта существующего кошелька не перезаписывается.
func (r *Repository) Credit(ctx context.Context, userID string, amount int64, currency string) (*entities.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, balance, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = wallets.balance + EXCLUDED.balance,
		    updated_at = NOW()
		RETURNING user_id, balance, currency, created_at, updated_at`

	var walletDB WalletDB
	err := r.querier.QueryRow(ctx, query, userID, amount, currency).Scan(
		&walletDB.UserID,
		&walletDB.Balance,
		&walletDB.Currency,
		&walletDB.CreatedAt,
		&walletDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository credit error: %w", err)
	}

	return ToDomain(&walletDB), nil
}
