package bootstrap

import (
	"context"
	"log/slog"

	"cafe-menu-service/internal/infra/messaging"
	"cafe-menu-service/internal/pkg/config"
	"cafe-menu-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to logging events when no broker is configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("KAFKA_BROKERS is empty, menu events are only logged")
		return messaging.NewLogPublisher(logger)
	}

	publisher := messaging.NewKafkaPublisher(messaging.NewKafkaWriter(cfg.Kafka), cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("publishing menu events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher
}
