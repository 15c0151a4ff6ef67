package wallet

import "marketplace/internal/entities"

func ToDomain(w *WalletDB) *entities.Wallet {
	if w == nil {
		return nil
	}
	return &entities.Wallet{
		UserID:    w.UserID,
		Balance:   w.Balance,
		Currency:  w.Currency,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
