package commands

import (
	"context"

	"cafe-menu-service/internal/domain/menu"
)

// EventPublisher delivers domain events after the transaction that produced them commits.
type EventPublisher interface {
	Publish(ctx context.Context, events []menu.DomainEvent) error
}
