// Package producers publishes dispatch events for downstream bookkeeping
// systems. Publishing is optional; the service runs without a broker.
package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ledger-statement-service/internal/config"
	"github.com/segmentio/kafka-go"
)

// StatementDispatchedProducer publishes statement-dispatched events.
type StatementDispatchedProducer struct {
	logger *slog.Logger
	writer KafkaWriter // Interface for testability
	topic  string
}

// NewStatementDispatchedProducer creates the producer and ensures the
// dispatch topic exists.
func NewStatementDispatchedProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*StatementDispatchedProducer, error) {
	if cfg.DispatchTopic == "" {
		return nil, fmt.Errorf("kafka dispatch topic is not configured")
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for dispatch producer: %w", err)
	}
	defer conn.Close()

	if err := createKafkaTopicIfNotExists(conn, cfg.DispatchTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger); err != nil {
		return nil, fmt.Errorf("failed to ensure dispatch topic %s exists: %w", cfg.DispatchTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.DispatchTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &StatementDispatchedProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.DispatchTopic,
	}, nil
}

// Publish writes one JSON-encoded event keyed by the party ID.
func (p *StatementDispatchedProducer) Publish(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: jsonValue,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish dispatch event",
			"topic", p.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish dispatch event to %s: %w", p.topic, err)
	}

	p.logger.Debug("Published dispatch event", "topic", p.topic, "key", key)
	return nil
}

func (p *StatementDispatchedProducer) Close() error {
	p.logger.Info("Closing dispatch event producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
