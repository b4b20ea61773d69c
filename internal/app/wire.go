//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"marketplace/internal/dispatcher"
	auth_refresh_post "marketplace/internal/handlers/rest/auth_refresh_post"
	custom_order_actions_get "marketplace/internal/handlers/rest/custom_order_actions_get"
	custom_order_get "marketplace/internal/handlers/rest/custom_order_get"
	custom_order_post "marketplace/internal/handlers/rest/custom_order_post"
	custom_order_status_patch "marketplace/internal/handlers/rest/custom_order_status_patch"
	notifications_get "marketplace/internal/handlers/rest/notifications_get"
	order_actions_get "marketplace/internal/handlers/rest/order_actions_get"
	order_cancel_post "marketplace/internal/handlers/rest/order_cancel_post"
	order_get "marketplace/internal/handlers/rest/order_get"
	order_post "marketplace/internal/handlers/rest/order_post"
	order_status_patch "marketplace/internal/handlers/rest/order_status_patch"
	review_post "marketplace/internal/handlers/rest/review_post"
	"marketplace/internal/handlers/tasks/custom_order_expiry"
	"marketplace/internal/handlers/tasks/order_autocomplete"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/lifecycle"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/kafka"
	"marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/auth"

	customOrderRepo "marketplace/internal/repository/customorder"
	notificationRepo "marketplace/internal/repository/notification"
	orderRepo "marketplace/internal/repository/order"
	outboxRepo "marketplace/internal/repository/outbox"
	reviewRepo "marketplace/internal/repository/review"
	sessionRepo "marketplace/internal/repository/session"
	customOrderService "marketplace/internal/service/customorder"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"
	outboxService "marketplace/internal/service/outbox"
	reviewService "marketplace/internal/service/review"
	sessionService "marketplace/internal/service/session"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/redislock"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type Application struct {
	ServiceOrder        ServiceOrder
	ServiceCustomOrder  ServiceCustomOrder
	ServiceReview       review_post.Service
	ServiceNotification notifications_get.Service
	ServiceSession      ServiceSession
	BackgroundWorkers   *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_actions_get.Service
	order_status_patch.Service
	order_cancel_post.Service
}

type ServiceCustomOrder interface {
	custom_order_post.Service
	custom_order_get.Service
	custom_order_actions_get.Service
	custom_order_status_patch.Service
}

type ServiceSession interface {
	auth.Resolver
	auth_refresh_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLocker,
		provideOrderEngine,
		provideCustomOrderEngine,
		metrics.NewTransitions,

		provideOrderRepository,
		provideCustomOrderRepository,
		provideReviewRepository,
		provideNotificationRepository,
		provideOutboxRepository,
		provideSessionStore,
		provideDispatcher,

		provideServiceOrder,
		provideServiceCustomOrder,
		provideServiceReview,
		provideServiceNotification,
		provideServiceSession,
		provideServiceOutbox,

		provideOutboxRelayTask,
		provideOrderAutocompleteTask,
		provideCustomOrderExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCustomOrder), new(*customOrderService.Service)),
		wire.Bind(new(review_post.Service), new(*reviewService.Service)),
		wire.Bind(new(notifications_get.Service), new(*notificationService.Service)),
		wire.Bind(new(ServiceSession), new(*sessionService.Service)),
	)
	return &Application{}, nil
}

type NotificationWorkerApp struct {
	NotificationService *notificationService.Service
}

// InitializeNotificationWorkerApp для Kafka воркера (cmd/worker-notifications)
func InitializeNotificationWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*NotificationWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideNotificationRepository,
		provideServiceNotification,

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideLocker(client *goredis.Client, cfg *config.Config) *redislock.Locker {
	return redislock.New(client, cfg.Redis.LockTTL)
}

func provideOrderEngine() *lifecycle.OrderEngine {
	return lifecycle.NewOrderEngine()
}

func provideCustomOrderEngine(cfg *config.Config) *lifecycle.CustomOrderEngine {
	return lifecycle.NewCustomOrderEngine(lifecycle.WithResponseWindow(cfg.Lifecycle.CustomOrderResponseWindow))
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCustomOrderRepository(querier *querier.Querier) *customOrderRepo.Repository {
	return customOrderRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideSessionStore(client *goredis.Client) *sessionRepo.Store {
	return sessionRepo.New(client)
}

func provideDispatcher(
	orders *orderRepo.Repository,
	customOrders *customOrderRepo.Repository,
	outbox *outboxRepo.Repository,
	txManager *tx.Manager,
	cfg *config.Config,
) *dispatcher.Dispatcher {
	return dispatcher.New(orders, customOrders, outbox, txManager, cfg.Kafka.Topic)
}

func provideServiceOrder(
	repository *orderRepo.Repository,
	dispatcher *dispatcher.Dispatcher,
	locker *redislock.Locker,
	transitions *metrics.Transitions,
	engine *lifecycle.OrderEngine,
) *orderService.Service {
	return orderService.New(repository, dispatcher, locker, transitions, engine)
}

func provideServiceCustomOrder(
	repository *customOrderRepo.Repository,
	dispatcher *dispatcher.Dispatcher,
	locker *redislock.Locker,
	transitions *metrics.Transitions,
	txManager *tx.Manager,
	engine *lifecycle.CustomOrderEngine,
) *customOrderService.Service {
	return customOrderService.New(repository, dispatcher, locker, transitions, txManager, engine)
}

func provideServiceReview(
	repository *reviewRepo.Repository,
	orders *orderRepo.Repository,
	dispatcher *dispatcher.Dispatcher,
	txManager *tx.Manager,
) *reviewService.Service {
	return reviewService.New(repository, orders, dispatcher, txManager)
}

func provideServiceNotification(repository *notificationRepo.Repository) *notificationService.Service {
	return notificationService.New(repository)
}

func provideServiceSession(store *sessionRepo.Store, cfg *config.Config) *sessionService.Service {
	return sessionService.New(store, cfg.Redis.AccessTokenTTL, cfg.Redis.RefreshTokenTTL)
}

func provideServiceOutbox(
	repository *outboxRepo.Repository,
	producer *kafka.Producer,
	txManager *tx.Manager,
	cfg *config.Config,
) *outboxService.Service {
	return outboxService.New(repository, producer, txManager, cfg.Tasks.OutboxRelayBatchSize)
}

func provideOutboxRelayTask(
	log logger.Logger,
	service *outboxService.Service,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, service, cfg.Tasks.OutboxRelayInterval)
}

func provideOrderAutocompleteTask(
	log logger.Logger,
	service *orderService.Service,
	cfg *config.Config,
) *order_autocomplete.OrderAutocomplete {
	return order_autocomplete.NewOrderAutocomplete(log, service, cfg.Tasks.OrderAutocompleteInterval, cfg.Lifecycle.OrderAutocompleteAfter)
}

func provideCustomOrderExpiryTask(
	log logger.Logger,
	service *customOrderService.Service,
	cfg *config.Config,
) *custom_order_expiry.CustomOrderExpiry {
	return custom_order_expiry.NewCustomOrderExpiry(log, service, cfg.Tasks.CustomOrderExpiryInterval)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
	orderAutocompleteTask *order_autocomplete.OrderAutocomplete,
	customOrderExpiryTask *custom_order_expiry.CustomOrderExpiry,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
		orderAutocompleteTask,
		customOrderExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
