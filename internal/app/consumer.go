package app

import (
	"context"
	"fmt"

	"go-hrm/internal/bootstrap"
	"go-hrm/internal/config"
	"go-hrm/internal/employee"
	"go-hrm/internal/eventstore"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/consumer"
	"go-hrm/internal/rbac"
	"go-hrm/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer imports employees from the lifecycle topic until
// SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	broker, err := connection.BrokerAddr(cfg.Kafka.Broker)
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	store := eventstore.NewStore(sqlDB, eventstore.NewRepository(gormDB),
		eventstore.WithLogger(logger),
		eventstore.WithOutbox(kafka.NewOutboxRepository(sqlDB), cfg.Kafka.EmployeeEvents),
	)
	// Import never reads pending sensitive requests, so no lookup is wired.
	employeeService := employee.NewService(
		sqlDB,
		employee.NewRepository(gormDB),
		store,
		rbac.NewRepository(gormDB),
		nil,
		redisClient,
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          cfg.Kafka.EmployeeLifecycle,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, reader, employeeService, logger)

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()

	return nil
}
