package broker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/order-ingest/internal/config"

	stan "github.com/nats-io/stan.go"
)

// StanSource reads a durable NATS Streaming queue subscription. Messages are
// acknowledged manually, so anything not committed is redelivered after AckWait.
type StanSource struct {
	logger  *slog.Logger
	conn    stan.Conn
	sub     stan.Subscription
	subject string

	msgs      chan *stan.Msg
	done      chan struct{}
	closeOnce sync.Once
}

func NewStanSource(logger *slog.Logger, cfg config.Stan) (*StanSource, error) {
	s := newStanSource(logger, cfg.Subject)

	conn, err := stan.Connect(cfg.ClusterID, cfg.ClientID,
		stan.NatsURL(cfg.URL),
		stan.SetConnectionLostHandler(func(_ stan.Conn, err error) {
			s.logger.Error("stan connection lost", slog.Any("error", err))
			s.closeOnce.Do(func() { close(s.done) })
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to stan: %w", err)
	}
	s.conn = conn

	sub, err := conn.QueueSubscribe(cfg.Subject, cfg.QueueGroup, s.deliver,
		stan.DurableName(cfg.Durable),
		stan.SetManualAckMode(),
		stan.AckWait(cfg.AckWait),
		stan.MaxInflight(1),
		stan.DeliverAllAvailable(),
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", cfg.Subject, err)
	}
	s.sub = sub

	return s, nil
}

func newStanSource(logger *slog.Logger, subject string) *StanSource {
	return &StanSource{
		logger:  logger.With(slog.String("broker", "stan"), slog.String("subject", subject)),
		subject: subject,
		msgs:    make(chan *stan.Msg),
		done:    make(chan struct{}),
	}
}

// deliver передаёт сообщение из колбэка stan в Fetch.
func (s *StanSource) deliver(m *stan.Msg) {
	select {
	case s.msgs <- m:
	case <-s.done:
	}
}

func (s *StanSource) Fetch(ctx context.Context) (Message, error) {
	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case <-s.done:
		return Message{}, ErrClosed
	case m := <-s.msgs:
		return Message{
			Topic:  m.Subject,
			Value:  m.Data,
			Offset: int64(m.Sequence),
			raw:    m,
		}, nil
	}
}

func (s *StanSource) Commit(_ context.Context, m Message) error {
	sm, ok := m.raw.(*stan.Msg)
	if !ok {
		return fmt.Errorf("commit: message is not from stan")
	}
	return sm.Ack()
}

// DeadLetter publishes the payload to "<subject>-dlq".
func (s *StanSource) DeadLetter(_ context.Context, m Message) error {
	if err := s.conn.Publish(deadLetterTopic(s.subject), m.Value); err != nil {
		return fmt.Errorf("failed to publish message to DLQ: %w", err)
	}
	return nil
}

// Close keeps the durable subscription so the queue group resumes where it left.
func (s *StanSource) Close() error {
	s.closeOnce.Do(func() { close(s.done) })

	if s.sub != nil {
		if err := s.sub.Close(); err != nil {
			s.logger.Warn("failed to close subscription", slog.Any("error", err))
		}
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
