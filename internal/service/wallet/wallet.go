package wallet

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Wallet возвращает кошелёк исполнителя. Читать можно только свой; запись
// идёт исключительно через сервис расчётов. Кошелёк создаётся лениво первым
// зачислением, поэтому его отсутствие — нормальное состояние нового аккаунта.
func (s *Service) Wallet(ctx context.Context, actor entities.Actor) (*entities.Wallet, error) {
	if actor.Role != entities.RoleLogistics {
		return nil, ErrUnauthorized
	}

	wallet, err := s.repository.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}
