package escrow_funded

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	orderservice "marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

// fundedEvent публикует обработчик вебхуков платёжного провайдера после
// успешного charge.success: средства бизнеса в эскроу.
type fundedEvent struct {
	OrderID      string `json:"order_id"`
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Reference    string `json:"reference"`
	Amount       int64  `json:"amount"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("escrow.funded: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("escrow.funded: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event fundedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("escrow.funded handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("reference", event.Reference),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("escrow.funded processing")

	// Переход выполняется от имени бизнеса-владельца: подтверждение оплаты
	// эквивалентно его действию "оплачено".
	actor := entities.Actor{
		ID:   event.BusinessID,
		Name: event.BusinessName,
		Role: entities.RoleBusiness,
	}

	order, err := h.orderService.UpdateOrderStatus(ctx, actor, event.OrderID, entities.OrderInEscrow)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("escrow.funded handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("escrow.funded handler order not found")

		case errors.Is(err, orderservice.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("escrow.funded handler order is not awaiting payment")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("escrow.funded handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("escrow.funded: processed")

	sess.MarkMessage(message, "")
	return false
}
