package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cafe-menu-service/internal/domain/menu"
	"cafe-menu-service/internal/pkg/config"
	"cafe-menu-service/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event-type"

// Envelope is the message body written for every domain event.
type Envelope struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by menu id, so one menu's events stay
// ordered within a partition.
type KafkaPublisher struct {
	writer  MessageWriter
	topic   string
	timeout time.Duration
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Compression:            kafka.Gzip,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            cfg.MaxAttempts,
		WriteTimeout:           cfg.WriteTimeout,
	}
}

func NewKafkaPublisher(writer MessageWriter, cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: cfg.Topic, timeout: cfg.WriteTimeout}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events []menu.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := p.toMessage(e)
		if err != nil {
			return errs.Mark(err, errs.ErrEventPublishFailed)
		}
		msgs = append(msgs, msg)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		slog.Error("Failed to send Kafka messages",
			"topic", p.topic,
			"count", len(msgs),
			"error", err)
		return errs.Mark(errs.Wrap(err, "write menu events"), errs.ErrEventPublishFailed)
	}

	slog.Debug("Kafka messages sent", "topic", p.topic, "count", len(msgs))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) toMessage(e menu.DomainEvent) (kafka.Message, error) {
	value, err := Encode(e)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Topic: p.topic,
		Key:   []byte(e.AggregateID().String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(e.EventName())},
		},
		Time: e.OccurredAt(),
	}, nil
}

// Encode renders an event as an Envelope.
func Encode(e menu.DomainEvent) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", e.EventName(), err)
	}
	return json.Marshal(Envelope{
		Type:       e.EventName(),
		OccurredAt: e.OccurredAt(),
		Payload:    payload,
	})
}
