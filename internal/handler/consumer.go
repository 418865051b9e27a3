package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/broker"
	"github.com/SergeyBogomolovv/order-ingest/internal/config"
	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, order entities.Order) error
}

type OrderCache interface {
	Get(orderUID string) (entities.Order, bool)
	GetAll() []entities.Order
	Set(order entities.Order)
	Len() int
}

type MessageSource interface {
	Fetch(ctx context.Context) (broker.Message, error)
	Commit(ctx context.Context, m broker.Message) error
	DeadLetter(ctx context.Context, m broker.Message) error
	Close() error
}

type ConsumerState int32

const (
	StateSubscribed ConsumerState = iota
	StateConsuming
	StateHandlingMessage
	StateDraining
	StateStopped
)

func (s ConsumerState) String() string {
	switch s {
	case StateSubscribed:
		return "subscribed"
	case StateConsuming:
		return "consuming"
	case StateHandlingMessage:
		return "handling_message"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("ConsumerState(%d)", int32(s))
}

// пауза после ошибки чтения, чтобы не крутить цикл вхолостую
const fetchErrorBackoff = 500 * time.Millisecond

type Consumer struct {
	logger   *slog.Logger
	source   MessageSource
	saver    OrderSaver
	cache    OrderCache
	validate *validator.Validate
	retry    utils.RetryConfig

	state atomic.Int32
}

func NewConsumer(logger *slog.Logger, source MessageSource, saver OrderSaver, cache OrderCache, cfg config.Ingest) *Consumer {
	return &Consumer{
		logger:   logger.With(slog.String("handler", "consumer")),
		source:   source,
		saver:    saver,
		cache:    cache,
		validate: validator.New(),
		retry: utils.RetryConfig{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.InitialDelay,
			MaxDelay:     cfg.MaxDelay,
			Multiplier:   2,
			Retryable:    entities.Retryable,
		},
	}
}

func (c *Consumer) State() ConsumerState {
	return ConsumerState(c.state.Load())
}

func (c *Consumer) setState(s ConsumerState) {
	c.state.Store(int32(s))
}

// Consume reads messages until ctx is canceled or the source is closed.
// A message that is already being handled is finished before Consume returns.
func (c *Consumer) Consume(ctx context.Context) {
	c.setState(StateConsuming)
	defer c.setState(StateStopped)

	// обработка не прерывается отменой ctx
	handleCtx := context.WithoutCancel(ctx)

	for {
		m, err := c.source.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, broker.ErrClosed) {
				c.setState(StateDraining)
				c.logger.Info("consumer stopping")
				return
			}

			c.logger.Error("failed to fetch message", slog.Any("error", err))
			select {
			case <-ctx.Done():
			case <-time.After(fetchErrorBackoff):
			}
			continue
		}

		c.setState(StateHandlingMessage)
		c.handleMessage(handleCtx, m)
		c.setState(StateConsuming)
	}
}

func (c *Consumer) Close() error {
	return c.source.Close()
}

func (c *Consumer) handleMessage(ctx context.Context, m broker.Message) {
	ordersInProgress.Inc()
	defer ordersInProgress.Dec()

	start := time.Now()
	defer func() {
		orderProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	logger := c.logger.With(slog.String("topic", m.Topic), slog.Int64("offset", m.Offset))

	order, err := c.decode(m.Value)
	if err != nil {
		ordersFailed.WithLabelValues(failureReason(err)).Inc()
		logger.Warn("failed to decode message", slog.Any("error", err))
		c.deadLetter(ctx, logger, m)
		return
	}

	logger = logger.With(slog.String("order_uid", order.OrderUID))

	err = utils.Retry(ctx, c.retry, func() error {
		return c.saver.SaveOrder(ctx, order)
	})
	if err != nil {
		ordersFailed.WithLabelValues(failureReason(err)).Inc()
		logger.Error("failed to save order", slog.Any("error", err))
		c.deadLetter(ctx, logger, m)
		return
	}

	c.cache.Set(order)
	ordersProcessed.Inc()
	c.commit(ctx, logger, m)
}

func (c *Consumer) decode(data []byte) (entities.Order, error) {
	order, err := DecodeOrder(data)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrDecode, err)
	}
	if err := c.validate.Struct(order); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrDecode, err)
	}
	return OrderJSONToEntity(order), nil
}

// deadLetter коммитит сообщение только если оно записано в DLQ,
// иначе оно будет доставлено повторно.
func (c *Consumer) deadLetter(ctx context.Context, logger *slog.Logger, m broker.Message) {
	if err := c.source.DeadLetter(ctx, m); err != nil {
		logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return
	}
	ordersDLQ.Inc()
	c.commit(ctx, logger, m)
}

func (c *Consumer) commit(ctx context.Context, logger *slog.Logger, m broker.Message) {
	if err := c.source.Commit(ctx, m); err != nil {
		commitErrors.Inc()
		logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrDecode):
		return "decode"
	case errors.Is(err, entities.ErrInvalidOrder):
		return "invalid"
	case errors.Is(err, entities.ErrPoolExhausted):
		return "pool_exhausted"
	case errors.Is(err, entities.ErrStoreFailure):
		return "store"
	default:
		return "unexpected"
	}
}
