package messaging

import (
	"context"
	"log/slog"

	"cafe-menu-service/internal/domain/menu"
)

// LogPublisher is used when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events []menu.DomainEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "menu event",
			"type", e.EventName(),
			"menu_id", e.AggregateID().String(),
			"occurred_at", e.OccurredAt())
	}
	return nil
}
