// Package kafka publishes order domain events to a Kafka topic as JSON
// messages keyed by order id, so every event of one order lands on the same
// partition in the order it was recorded.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewWriter returns a writer that hashes keys onto partitions and waits for
// the leader to acknowledge.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher implements ports.OrderEventPublisher on a kafka writer.
type OrderEventPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

func NewOrderEventPublisher(writer messageWriter, logger *slog.Logger) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}
}

// Publish writes all events in one batch.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := toMessage(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write order events: %w", err)
	}

	p.logger.DebugContext(ctx, "order events published", "count", len(msgs))
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// EventMessage is the JSON value of an order event message.
type EventMessage struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(e order.Event) (kafka.Message, error) {
	payload := EventMessage{
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		ToStatus:   e.To.String(),
		TotalPrice: e.Total.Float64(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.From != order.Unknown {
		payload.FromStatus = e.From.String()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal order event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(payload.OrderID),
		Value: data,
		Time:  payload.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(payload.Type)},
		},
	}, nil
}

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger.With("component", "noop_publisher")}
}

func (p *NoopPublisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		p.logger.DebugContext(ctx, "order event dropped",
			"type", e.Type,
			"order_id", e.OrderID.String(),
		)
	}
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
