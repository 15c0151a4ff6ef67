package settlement_retry

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	ApplyPending(ctx context.Context) (int64, error)
}

// SettlementRetry доводит до конца расчёты, у которых зачисление на кошелёк
// не прошло при подтверждении доставки: строка осталась в статусе pending.
type SettlementRetry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSettlementRetry(log logger.Logger, service Service, interval time.Duration) *SettlementRetry {
	return &SettlementRetry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SettlementRetry) TTL() time.Duration {
	return s.interval
}

func (s *SettlementRetry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	applied, err := s.service.ApplyPending(ctxWithTimeout)

	if applied > 0 {
		s.log.With(
			logger.NewField("applied_settlements", applied),
		).Info("settlement retry")
	}

	return err
}

func (s *SettlementRetry) Info() string {
	return "settlement retry"
}
