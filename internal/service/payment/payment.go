package payment

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	repository OrderRepository
	gateway    Gateway
}

func New(repository OrderRepository, gateway Gateway) *Service {
	return &Service{
		repository: repository,
		gateway:    gateway,
	}
}

// InitiatePayment инициализирует транзакцию у провайдера для заказа в статусе
// pending_payment. Статус заказа здесь не меняется: подтверждение оплаты
// приходит асинхронно событием escrow.funded.
func (s *Service) InitiatePayment(ctx context.Context, actor entities.Actor, orderID string) (*entities.PaymentInit, error) {
	if actor.Role != entities.RoleBusiness {
		return nil, ErrUnauthorized
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("service payment, get order: %w", err)
	}

	if orderEntity.BusinessID != actor.ID {
		return nil, ErrUnauthorized
	}
	if orderEntity.Status != entities.OrderPendingPayment {
		return nil, ErrNotPayable
	}

	paymentInit, err := s.gateway.InitializeTransaction(ctx, actor.Email, orderEntity.Price, orderEntity.Currency, orderEntity.ID)
	if err != nil {
		return nil, fmt.Errorf("service payment, initialize transaction: %w", err)
	}

	return paymentInit, nil
}
