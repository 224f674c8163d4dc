package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// SearchEvent summarizes one completed itinerary search.
type SearchEvent struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	Results     int       `json:"results"`
	DurationMs  int64     `json:"duration_ms"`
	SearchedAt  time.Time `json:"searched_at"`
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

// PublishSearch writes event to topic keyed by its route, so searches for
// the same route land on the same partition in order.
func (p *Producer) PublishSearch(ctx context.Context, topic string, event SearchEvent) error {
	message, err := searchMessage(topic, event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write search event %s to Kafka: %w", event.ID, err)
	}

	slog.DebugContext(ctx, "published search event", "topic", topic, "id", event.ID, "key", string(message.Key))
	return nil
}

func searchMessage(topic string, event SearchEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal search event: %w", err)
	}

	return kafka.Message{
		Topic: topic,
		Key:   []byte(event.Origin + "-" + event.Destination),
		Value: data,
		Time:  event.SearchedAt,
	}, nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and lists its partitions.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}

	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	slog.InfoContext(ctx, "connected to kafka", "partitions", len(partitions))
	return nil
}
