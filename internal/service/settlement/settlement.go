package settlement

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// basisPointsDenominator и halfBasisPoint дают целочисленное округление
// "половина вверх" для fee = round(price * pct / 100) без плавающей точки:
// комиссия тарифа хранится в базисных пунктах.
const (
	basisPointsDenominator = 10000
	halfBasisPoint         = basisPointsDenominator / 2
)

type Service struct {
	repository Repository
	wallets    WalletRepository
	registry   PlanRegistry
	txManager  TxManager
	log        serviceLogger
}

func New(repository Repository, wallets WalletRepository, registry PlanRegistry, txManager TxManager, log serviceLogger) *Service {
	return &Service{
		repository: repository,
		wallets:    wallets,
		registry:   registry,
		txManager:  txManager,
		log:        log.With(),
	}
}

// Prepare вычисляет комиссию и чистую выплату и создаёт pending-запись
// расчёта. Вызывается внутри транзакции подтверждения заказа: переход и
// намерение расчёта атомарны. Тариф берётся зафиксированный при принятии —
// смена тарифа исполнителем после принятия на комиссию не влияет.
func (s *Service) Prepare(ctx context.Context, order *entities.Order) (*entities.Settlement, error) {
	if order.LogisticsID == nil {
		return nil, ErrMissingLogistics
	}

	plan := s.resolvePlan(order)
	fee := computeFee(order.Price, plan.FeeBasisPoints)

	created, err := s.repository.Create(ctx, entities.Settlement{
		OrderID:     order.ID,
		LogisticsID: *order.LogisticsID,
		Amount:      order.Price,
		Fee:         fee,
		Net:         order.Price - fee,
		PlanID:      plan.ID,
		Currency:    order.Currency,
		Status:      entities.SettlementPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create settlement: %w", err)
	}

	return created, nil
}

// Apply зачисляет чистую выплату на кошелёк исполнителя и закрывает расчёт.
// Сбой не фатален для вызывающего перехода: запись остаётся pending, деньги
// не теряются, повтор — за ApplyPending.
func (s *Service) Apply(ctx context.Context, stl *entities.Settlement) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.wallets.Credit(ctx, stl.LogisticsID, stl.Net, stl.Currency)
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		if err := s.repository.MarkCompleted(ctx, stl.ID); err != nil {
			return fmt.Errorf("complete settlement: %w", err)
		}
		return nil
	})
	if err != nil {
		ApplyFailuresTotal.Inc()
		s.log.With(
			logger.NewField("order", stl.OrderID),
			logger.NewField("logistics", stl.LogisticsID),
			logger.NewField("net", stl.Net),
			logger.NewField("error", err),
		).Error("settlement apply failed, left pending for retry")
		return err
	}

	CompletedTotal.Inc()
	s.log.With(
		logger.NewField("order", stl.OrderID),
		logger.NewField("logistics", stl.LogisticsID),
		logger.NewField("fee", stl.Fee),
		logger.NewField("net", stl.Net),
	).Info("settlement applied")
	return nil
}

// ApplyPending добирает расчёты, у которых зачисление не прошло с первого
// раза. Возвращает число успешно применённых.
func (s *Service) ApplyPending(ctx context.Context) (int64, error) {
	pending, err := s.repository.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending settlements: %w", err)
	}

	var applied int64
	for i := range pending {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		if err := s.Apply(ctx, &pending[i]); err == nil {
			applied++
		}
	}
	return applied, nil
}

// resolvePlan — защитный fallback: зафиксированный тариф обязан существовать
// по инварианту принятия, но неизвестный тариф не должен ронять расчёт.
func (s *Service) resolvePlan(order *entities.Order) entities.Plan {
	if order.PlanAtAcceptance != nil {
		if plan, ok := s.registry.Fee(*order.PlanAtAcceptance); ok {
			return plan
		}
	}

	PlanFallbackTotal.Inc()
	s.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("plan", order.PlanAtAcceptance),
	).Warn("unknown plan at acceptance, falling back to basic tier")
	return s.registry.Basic()
}

func computeFee(price, feeBasisPoints int64) int64 {
	return (price*feeBasisPoints + halfBasisPoint) / basisPointsDenominator
}
