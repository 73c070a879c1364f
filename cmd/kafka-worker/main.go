package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"push-server/internal/clients/kafka"
	"push-server/internal/observability"

	"github.com/joho/godotenv"
)

// Consumes campaign lifecycle events (campaign.dispatched, campaign.completed,
// campaign.failed) and writes them to the structured log as an audit trail.
// Runs as a separate process so event processing never competes with the API
// server for resources.
func main() {
	// Load environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("Warning: env.local file not found: %v", err)
		}
	}

	// Initialize logger
	logger := observability.NewLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting campaign event worker...")

	// Get configuration from environment
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		kafkaBrokers = "localhost:9092"
	}
	brokers := strings.Split(kafkaBrokers, ",")

	kafkaTopic := os.Getenv("KAFKA_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = "campaign-events"
	}

	kafkaConsumerGroup := os.Getenv("KAFKA_CONSUMER_GROUP")
	if kafkaConsumerGroup == "" {
		kafkaConsumerGroup = "campaign-event-audit"
	}

	consumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: brokers,
		Topic:   kafkaTopic,
		GroupID: kafkaConsumerGroup,
	}, logger)
	defer consumer.Close()

	go func() {
		err := consumer.ConsumeEvents(ctx, func(msgCtx context.Context, event kafka.EventMessage) error {
			fields := []observability.Field{
				{Key: "site_id", Value: event.SiteID},
				{Key: "timestamp", Value: event.Timestamp},
			}
			for key, value := range event.Data {
				fields = append(fields, observability.Field{Key: key, Value: value})
			}
			logger.Info(observability.WithFields(msgCtx, fields...), fmt.Sprintf("campaign event: %s", event.Type))
			return nil
		})
		if err != nil && ctx.Err() == nil {
			logger.Error(ctx, "event consumer stopped with error", err)
		}
	}()

	// Set up a channel to listen for OS signals for shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down campaign event worker...")
	cancel()
}
