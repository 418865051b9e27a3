package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SergeyBogomolovv/order-ingest/internal/config"

	"github.com/segmentio/kafka-go"
)

type KafkaSource struct {
	logger *slog.Logger
	reader *kafka.Reader
	dlq    *kafka.Writer
}

func NewKafkaSource(logger *slog.Logger, cfg config.Kafka) *KafkaSource {
	return &KafkaSource{
		logger: logger.With(slog.String("broker", "kafka"), slog.String("topic", cfg.Topic)),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			GroupID:     cfg.GroupID,
			Topic:       cfg.Topic,
			MaxWait:     cfg.ReaderMaxWait,
			StartOffset: kafka.FirstOffset,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

// Fetch blocks until the next message, ctx cancellation or Close.
func (s *KafkaSource) Fetch(ctx context.Context) (Message, error) {
	m, err := s.reader.FetchMessage(ctx)
	if errors.Is(err, io.EOF) {
		return Message{}, ErrClosed
	}
	if err != nil {
		return Message{}, err
	}
	return fromKafka(m), nil
}

// Commit фиксирует offset в consumer group.
func (s *KafkaSource) Commit(ctx context.Context, m Message) error {
	km, ok := m.raw.(kafka.Message)
	if !ok {
		return fmt.Errorf("commit: message is not from kafka")
	}
	return s.reader.CommitMessages(ctx, km)
}

// DeadLetter writes the message to "<topic>-dlq". The writer retries on its own.
func (s *KafkaSource) DeadLetter(ctx context.Context, m Message) error {
	if err := s.dlq.WriteMessages(ctx, toDeadLetter(m)); err != nil {
		return fmt.Errorf("failed to write message to DLQ: %w", err)
	}
	return nil
}

func (s *KafkaSource) Close() error {
	if err := s.reader.Close(); err != nil {
		return err
	}
	return s.dlq.Close()
}

func fromKafka(m kafka.Message) Message {
	return Message{
		Topic:  m.Topic,
		Key:    m.Key,
		Value:  m.Value,
		Offset: m.Offset,
		raw:    m,
	}
}

func toDeadLetter(m Message) kafka.Message {
	out := kafka.Message{
		Topic: deadLetterTopic(m.Topic),
		Key:   m.Key,
		Value: m.Value,
	}
	if km, ok := m.raw.(kafka.Message); ok {
		out.Headers = km.Headers
	}
	return out
}
