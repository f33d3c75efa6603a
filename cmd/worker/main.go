package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/savconnect/savconnect-api/adapters/event"
	"github.com/savconnect/savconnect-api/adapters/persistence"
	notificationUC "github.com/savconnect/savconnect-api/internal/application/usecase/notification"
	"github.com/savconnect/savconnect-api/internal/config"
	"github.com/savconnect/savconnect-api/pkg/logger"
)

func main() {

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting SavConnect notification worker...")

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Repositories
	notificationRepo := persistence.NewPostgresNotificationRepo(dbPool)

	// Worker Use Case
	processPostEventUC := notificationUC.NewProcessPostEventUseCase(notificationRepo, appLogger)

	// Kafka Consumer
	postConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPostEvents,
		GroupID:  "notification-worker-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer postConsumer.Close()

	appLogger.Info("Worker listening on topic " + event.TopicPostEvents)

	ctx := context.Background()
	for {
		// FetchMessage leaves the offset uncommitted until the event is
		// processed, so a crash replays it instead of dropping it.
		msg, err := postConsumer.FetchMessage(ctx)
		if err != nil {
			appLogger.Error("failed to fetch message from Kafka", err)
			continue
		}

		var payload event.PostEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("failed to unmarshal event, skipping", err, zap.String("key", string(msg.Key)))
			commitMessage(postConsumer, msg, appLogger)
			continue
		}

		if err := processPostEventUC.Execute(ctx, payload); err != nil {
			appLogger.Error("failed to process event", err,
				zap.String("event_type", string(payload.EventType)),
				zap.String("post_id", payload.PostID.String()),
			)
			continue
		}

		commitMessage(postConsumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("failed to commit message", err)
	}
}
