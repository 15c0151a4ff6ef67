//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"marketplace/internal/gateway/paystack"
	deliveries_get "marketplace/internal/handlers/rest/deliveries_get"
	order_accept_post "marketplace/internal/handlers/rest/order_accept_post"
	order_pay_post "marketplace/internal/handlers/rest/order_pay_post"
	order_post "marketplace/internal/handlers/rest/order_post"
	order_status_post "marketplace/internal/handlers/rest/order_status_post"
	orders_available_get "marketplace/internal/handlers/rest/orders_available_get"
	orders_business_get "marketplace/internal/handlers/rest/orders_business_get"
	wallet_get "marketplace/internal/handlers/rest/wallet_get"
	"marketplace/internal/handlers/tasks/settlement_retry"
	"marketplace/internal/pkg/config"
	"marketplace/internal/plans"

	orderRepo "marketplace/internal/repository/order"
	settlementRepo "marketplace/internal/repository/settlement"
	walletRepo "marketplace/internal/repository/wallet"
	orderService "marketplace/internal/service/order"
	paymentService "marketplace/internal/service/payment"
	settlementService "marketplace/internal/service/settlement"
	walletService "marketplace/internal/service/wallet"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RetryInterval time.Duration
)

const paymentHTTPTimeout = 30 * time.Second

type Application struct {
	ServiceOrder      ServiceOrder
	ServicePayment    ServicePayment
	ServiceWallet     ServiceWallet
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_business_get.Service
	orders_available_get.Service
	deliveries_get.Service
	order_accept_post.Service
	order_status_post.Service
}

type ServicePayment interface {
	order_pay_post.Service
}

type ServiceWallet interface {
	wallet_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRetryInterval,

		provideOrderRepository,
		provideWalletRepository,
		provideSettlementRepository,

		plans.New,
		provideSettlementService,
		provideOrderService,
		provideWalletService,
		providePaymentGateway,
		providePaymentService,

		provideSettlementRetryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServicePayment), new(*paymentService.Service)),
		wire.Bind(new(ServiceWallet), new(*walletService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.SettlementService), new(*settlementService.Service)),
		wire.Bind(new(settlementService.Repository), new(*settlementRepo.Repository)),
		wire.Bind(new(settlementService.WalletRepository), new(*walletRepo.Repository)),
		wire.Bind(new(settlementService.PlanRegistry), new(*plans.Registry)),
		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(paymentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*paystack.Gateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),

		wire.Bind(new(settlement_retry.Service), new(*settlementService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideWalletRepository,
		provideSettlementRepository,

		plans.New,
		provideSettlementService,
		provideOrderService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.SettlementService), new(*settlementService.Service)),
		wire.Bind(new(settlementService.Repository), new(*settlementRepo.Repository)),
		wire.Bind(new(settlementService.WalletRepository), new(*walletRepo.Repository)),
		wire.Bind(new(settlementService.PlanRegistry), new(*plans.Registry)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func provideSettlementRepository(querier *querier.Querier) *settlementRepo.Repository {
	return settlementRepo.New(querier)
}

func provideSettlementService(
	repository settlementService.Repository,
	wallets settlementService.WalletRepository,
	registry settlementService.PlanRegistry,
	txManager settlementService.TxManager,
	log logger.Logger,
) *settlementService.Service {
	return settlementService.New(repository, wallets, registry, txManager, log)
}

func provideOrderService(
	repository orderService.Repository,
	settlement orderService.SettlementService,
	txManager orderService.TxManager,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(repository, settlement, txManager, cfg.Payments.DefaultCurrency)
}

func provideWalletService(repository walletService.Repository) *walletService.Service {
	return walletService.New(repository)
}

func providePaymentGateway(cfg *config.Config) *paystack.Gateway {
	client := &http.Client{Timeout: paymentHTTPTimeout}
	return paystack.New(client, cfg.Payments.BaseURL, cfg.Payments.SecretKey)
}

func providePaymentService(
	repository paymentService.OrderRepository,
	gateway paymentService.Gateway,
) *paymentService.Service {
	return paymentService.New(repository, gateway)
}

func provideRetryInterval(cfg *config.Config) RetryInterval {
	return RetryInterval(cfg.Tasks.SettlementRetryInterval)
}

func provideSettlementRetryTask(
	log logger.Logger,
	settlementSvc settlement_retry.Service,
	interval RetryInterval,
) *settlement_retry.SettlementRetry {
	return settlement_retry.NewSettlementRetry(log, settlementSvc, time.Duration(interval))
}

func provideTaskList(
	settlementRetryTask *settlement_retry.SettlementRetry,
) []background.Task {
	return []background.Task{
		settlementRetryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
