package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type blockingConsumer struct {
	started chan struct{}
	closed  atomic.Bool
}

func (c *blockingConsumer) Consume(ctx context.Context) {
	close(c.started)
	<-ctx.Done()
}

func (c *blockingConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

// returningConsumer завершается сам, как при потере соединения с брокером.
type returningConsumer struct {
	closed atomic.Bool
}

func (c *returningConsumer) Consume(context.Context) {}

func (c *returningConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Http:            config.Http{Host: "127.0.0.1", Port: "0"},
		Cors:            config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
		ShutdownTimeout: time.Second,
	}
}

func TestApplication_Run(t *testing.T) {
	a := New(slog.New(slog.DiscardHandler), testConfig())

	var started atomic.Bool
	a.SetStarters(starterFunc(func(context.Context) error {
		started.Store(true)
		return nil
	}))

	consumer := &blockingConsumer{started: make(chan struct{})}
	a.SetConsumers(consumer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case <-consumer.started:
	case <-time.After(time.Second):
		t.Fatal("consumer not started")
	}
	assert.True(t, started.Load())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("application did not stop")
	}
	assert.True(t, consumer.closed.Load())
}

func TestApplication_RunStarterFails(t *testing.T) {
	a := New(slog.New(slog.DiscardHandler), testConfig())

	errListing := errors.New("failed to list orders")
	a.SetStarters(starterFunc(func(context.Context) error { return errListing }))

	consumer := &blockingConsumer{started: make(chan struct{})}
	a.SetConsumers(consumer)

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, errListing)
	assert.False(t, consumer.closed.Load())
}

func TestApplication_RunConsumerStopsUnexpectedly(t *testing.T) {
	a := New(slog.New(slog.DiscardHandler), testConfig())

	consumer := &returningConsumer{}
	a.SetConsumers(consumer)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrConsumerStopped)
	case <-time.After(2 * time.Second):
		t.Fatal("application kept running without a consumer")
	}
	assert.True(t, consumer.closed.Load())
}
