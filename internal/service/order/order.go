package order

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// minorUnitsPerMajor — цена приходит от клиента в мажорных единицах,
// хранится всегда в минорных.
const minorUnitsPerMajor = 100

type Service struct {
	repository      Repository
	settlement      SettlementService
	txManager       TxManager
	defaultCurrency string
}

func New(repository Repository, settlement SettlementService, txManager TxManager, defaultCurrency string) *Service {
	return &Service{
		repository:      repository,
		settlement:      settlement,
		txManager:       txManager,
		defaultCurrency: defaultCurrency,
	}
}

func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, create entities.OrderCreate) (*entities.Order, error) {
	if actor.Role != entities.RoleBusiness {
		return nil, ErrUnauthorized
	}

	if !isFilled(create.PickupAddress) ||
		!isFilled(create.DropoffAddress) ||
		!isFilled(create.ItemDescription) {
		return nil, ErrMissingRequiredFields
	}
	if create.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	newOrder := entities.Order{
		ID:              "ord_" + uuid.NewString(),
		BusinessID:      actor.ID,
		BusinessName:    actor.Name,
		PickupAddress:   create.PickupAddress,
		PickupLat:       create.PickupLat,
		PickupLng:       create.PickupLng,
		DropoffAddress:  create.DropoffAddress,
		DropoffLat:      create.DropoffLat,
		DropoffLng:      create.DropoffLng,
		ItemDescription: create.ItemDescription,
		Price:           int64(math.Round(create.Price * minorUnitsPerMajor)),
		Currency:        s.defaultCurrency,
		Status:          entities.OrderPendingAcceptance,
	}

	created, err := s.repository.Create(ctx, newOrder)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return created, nil
}

func (s *Service) BusinessOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if actor.Role != entities.RoleBusiness {
		return nil, ErrUnauthorized
	}

	orders, err := s.repository.ListByBusiness(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list business orders: %w", err)
	}
	return orders, nil
}

func (s *Service) AvailableOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if actor.Role != entities.RoleLogistics {
		return nil, ErrUnauthorized
	}
	if !actor.IsVerified {
		return nil, ErrNotVerified
	}

	orders, err := s.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available orders: %w", err)
	}
	return orders, nil
}

func (s *Service) LogisticsDeliveries(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if actor.Role != entities.RoleLogistics {
		return nil, ErrUnauthorized
	}

	orders, err := s.repository.ListByLogistics(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list logistics deliveries: %w", err)
	}
	return orders, nil
}

// AcceptOrder назначает верифицированного исполнителя на свободный заказ и
// фиксирует его текущий тариф на весь срок жизни заказа. Эксклюзивность
// обеспечивает условный UPDATE в репозитории: из конкурентных попыток
// выигрывает ровно одна.
func (s *Service) AcceptOrder(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrOrderNotFound
	}
	if actor.Role != entities.RoleLogistics {
		return nil, ErrUnauthorized
	}
	if !actor.IsVerified {
		return nil, ErrNotVerified
	}

	accepted, err := s.repository.AcceptPending(ctx, orderID, actor.ID, actor.Name, actor.CurrentPlan)
	if err != nil {
		return nil, fmt.Errorf("accept order: %w", err)
	}

	return accepted, nil
}

// UpdateOrderStatus применяет переход из таблицы жизненного цикла. Любое
// нарушение роли, владения или предусловия оставляет заказ нетронутым.
func (s *Service) UpdateOrderStatus(ctx context.Context, actor entities.Actor, orderID string, target entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrOrderNotFound
	}

	switch target {
	case entities.OrderInEscrow:
		return s.markPaid(ctx, actor, orderID)
	case entities.OrderDelivered:
		return s.markDelivered(ctx, actor, orderID)
	case entities.OrderConfirmedByBusiness:
		return s.confirmDelivery(ctx, actor, orderID)
	case entities.OrderCancelledByBusiness:
		return s.cancelByBusiness(ctx, actor, orderID)
	case entities.OrderCancelledByLogistics:
		return s.cancelByLogistics(ctx, actor, orderID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, target)
	}
}

// markPaid — подтверждение оплаты эскроу. Реальный триггер — событие
// платёжного шлюза, поэтому операция идемпотентна: повтор по заказу,
// уже находящемуся в эскроу, успешен без мутации.
func (s *Service) markPaid(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	var result *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if actor.Role != entities.RoleBusiness || current.BusinessID != actor.ID {
			return ErrUnauthorized
		}

		if current.Status == entities.OrderInEscrow {
			result = current
			return nil
		}
		if current.Status != entities.OrderPendingPayment {
			return ErrInvalidTransition
		}

		result, err = s.repository.Transition(ctx, orderID, entities.OrderPendingPayment, entities.OrderInEscrow, false)
		if err != nil {
			return fmt.Errorf("mark paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) markDelivered(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	var result *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if actor.Role != entities.RoleLogistics ||
			current.LogisticsID == nil ||
			*current.LogisticsID != actor.ID {
			return ErrUnauthorized
		}
		if current.Status != entities.OrderInEscrow {
			return ErrInvalidTransition
		}

		result, err = s.repository.Transition(ctx, orderID, entities.OrderInEscrow, entities.OrderDelivered, false)
		if err != nil {
			return fmt.Errorf("mark delivered: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// confirmDelivery переводит заказ в терминальный успешный статус и в той же
// транзакции фиксирует расчёт. Само зачисление на кошелёк выполняется после
// коммита: его сбой не откатывает подтверждение, запись расчёта остаётся
// pending и будет повторена фоновой задачей.
func (s *Service) confirmDelivery(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	var result *entities.Order
	var settlement *entities.Settlement

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if actor.Role != entities.RoleBusiness || current.BusinessID != actor.ID {
			return ErrUnauthorized
		}
		if current.Status != entities.OrderDelivered {
			return ErrInvalidTransition
		}

		result, err = s.repository.Transition(ctx, orderID, entities.OrderDelivered, entities.OrderConfirmedByBusiness, false)
		if err != nil {
			return fmt.Errorf("confirm delivery: %w", err)
		}

		settlement, err = s.settlement.Prepare(ctx, result)
		if err != nil {
			return fmt.Errorf("prepare settlement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сбой логируется внутри сервиса расчётов, заказ уже подтверждён.
	_ = s.settlement.Apply(ctx, settlement)

	return result, nil
}

func (s *Service) cancelByBusiness(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	var result *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if actor.Role != entities.RoleBusiness || current.BusinessID != actor.ID {
			return ErrUnauthorized
		}
		if current.Status != entities.OrderPendingAcceptance &&
			current.Status != entities.OrderPendingPayment {
			return ErrInvalidTransition
		}

		result, err = s.repository.Transition(ctx, orderID, current.Status, entities.OrderCancelledByBusiness, true)
		if err != nil {
			return fmt.Errorf("cancel by business: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// cancelByLogistics — единственный разрешённый переход "назад": заказ
// возвращается в пул pending_acceptance с очищенным назначением.
func (s *Service) cancelByLogistics(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	var result *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if actor.Role != entities.RoleLogistics ||
			current.LogisticsID == nil ||
			*current.LogisticsID != actor.ID {
			return ErrUnauthorized
		}
		if current.Status != entities.OrderPendingPayment {
			return ErrInvalidTransition
		}

		result, err = s.repository.Transition(ctx, orderID, entities.OrderPendingPayment, entities.OrderPendingAcceptance, true)
		if err != nil {
			return fmt.Errorf("cancel by logistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
