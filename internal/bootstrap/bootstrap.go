package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"push-server/internal/auth"
	campaignHandler "push-server/internal/campaign/handler"
	campaignProcessor "push-server/internal/campaign/processor"
	kafkaClient "push-server/internal/clients/kafka"
	redisClient "push-server/internal/clients/redis"
	webpushClient "push-server/internal/clients/webpush"
	"push-server/internal/config"
	"push-server/internal/dispatch"
	"push-server/internal/events"
	"push-server/internal/observability"
	"push-server/internal/ratelimit"
	"push-server/internal/scheduler"
	"push-server/internal/stats"
	"push-server/internal/store"
	subscriptionHandler "push-server/internal/subscription/handler"
	subscriptionProcessor "push-server/internal/subscription/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Services
	AuthService *auth.Service
	RateLimiter *ratelimit.Service

	// Handlers
	CampaignHandler     campaignHandler.Handler
	SubscriptionHandler subscriptionHandler.Handler

	// Background workers
	Scheduler *scheduler.Scheduler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize auth service
	deps.AuthService = auth.NewService(cfg.Auth, logger)

	// Initialize Kafka producer for campaign lifecycle events
	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)
	eventDispatcher := events.NewDispatcher(deps.KafkaProducer, logger)

	// Initialize Redis-backed rate limiting for public endpoints
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, cfg.Redis.PublicRPM, logger)

	// Initialize stats aggregation
	statsAggregator := stats.NewAggregator(&deps.Store, logger)

	// Initialize the push transport and dispatch executor
	pushClient := webpushClient.NewClient(cfg.Push.TTLSeconds, cfg.Push.SendTimeout, cfg.Push.Subscriber, logger)
	executor := dispatch.NewExecutor(
		&deps.Store,
		pushClient,
		statsAggregator,
		eventDispatcher,
		cfg.Scheduler.DispatchBatchSize,
		logger,
	)

	// Initialize the campaign scheduler
	deps.Scheduler = scheduler.New(
		&deps.Store,
		executor,
		logger,
		cfg.Scheduler.PollInterval,
		cfg.Scheduler.PollLimit,
	)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, deps.Scheduler, executor, statsAggregator, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize subscription processor and handler
	subscriptionProc := subscriptionProcessor.New(&deps.Store, statsAggregator, logger)
	deps.SubscriptionHandler = subscriptionHandler.New(subscriptionProc, deps.AuthService, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
}
