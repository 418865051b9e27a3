package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	stan "github.com/nats-io/stan.go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaMessages(t *testing.T) {
	km := kafka.Message{
		Topic:   "orders",
		Key:     []byte("u1"),
		Value:   []byte(`{"order_uid":"u1"}`),
		Offset:  42,
		Headers: []kafka.Header{{Key: "source", Value: []byte("test")}},
	}

	m := fromKafka(km)
	assert.Equal(t, "orders", m.Topic)
	assert.Equal(t, int64(42), m.Offset)
	assert.Equal(t, km.Value, m.Value)

	dlq := toDeadLetter(m)
	assert.Equal(t, "orders-dlq", dlq.Topic)
	assert.Equal(t, km.Key, dlq.Key)
	assert.Equal(t, km.Value, dlq.Value)
	assert.Equal(t, km.Headers, dlq.Headers)
	assert.Zero(t, dlq.Offset)
}

type publishRecorder struct {
	stan.Conn // остальные методы не вызываются

	subject string
	data    []byte
	err     error
}

func (p *publishRecorder) Publish(subject string, data []byte) error {
	p.subject = subject
	p.data = data
	return p.err
}

func (p *publishRecorder) Close() error { return nil }

func TestStanSource_Fetch(t *testing.T) {
	s := newStanSource(newLogger(), "orders")

	msg := &stan.Msg{}
	msg.Subject = "orders"
	msg.Data = []byte("payload")
	msg.Sequence = 7

	go s.deliver(msg)

	got, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "orders", got.Topic)
	assert.Equal(t, []byte("payload"), got.Value)
	assert.Equal(t, int64(7), got.Offset)
}

func TestStanSource_FetchCanceled(t *testing.T) {
	s := newStanSource(newLogger(), "orders")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Fetch(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStanSource_Close(t *testing.T) {
	s := newStanSource(newLogger(), "orders")
	s.conn = &publishRecorder{}

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrClosed)

	// колбэк не должен зависнуть после закрытия
	done := make(chan struct{})
	go func() {
		s.deliver(&stan.Msg{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deliver blocked after close")
	}
}

func TestStanSource_DeadLetter(t *testing.T) {
	s := newStanSource(newLogger(), "orders")
	rec := &publishRecorder{}
	s.conn = rec

	err := s.DeadLetter(context.Background(), Message{Topic: "orders", Value: []byte("bad")})
	require.NoError(t, err)
	assert.Equal(t, "orders-dlq", rec.subject)
	assert.Equal(t, []byte("bad"), rec.data)

	rec.err = errors.New("nats down")
	err = s.DeadLetter(context.Background(), Message{Value: []byte("bad")})
	assert.ErrorIs(t, err, rec.err)
}

func TestCommit_ForeignMessage(t *testing.T) {
	s := newStanSource(newLogger(), "orders")
	assert.Error(t, s.Commit(context.Background(), Message{raw: kafka.Message{}}))

	k := &KafkaSource{}
	assert.Error(t, k.Commit(context.Background(), Message{raw: &stan.Msg{}}))
}
