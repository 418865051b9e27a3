package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/broker"
	"github.com/SergeyBogomolovv/order-ingest/internal/config"
	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/internal/handler"
	mocks "github.com/SergeyBogomolovv/order-ingest/internal/handler/mocks"
	"github.com/SergeyBogomolovv/order-ingest/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ingestConfig = config.Ingest{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     2 * time.Millisecond,
}

type consumerMocks struct {
	source *mocks.MockMessageSource
	saver  *mocks.MockOrderSaver
	cache  *mocks.MockOrderCache
}

func newConsumerMocks(t *testing.T) consumerMocks {
	return consumerMocks{
		source: mocks.NewMockMessageSource(t),
		saver:  mocks.NewMockOrderSaver(t),
		cache:  mocks.NewMockOrderCache(t),
	}
}

// deadLettered ожидает, что сообщение уйдёт в DLQ без попытки сохранения.
func deadLettered(m consumerMocks, msg broker.Message) {
	m.source.EXPECT().DeadLetter(mock.Anything, msg).Return(nil).Once()
	m.source.EXPECT().Commit(mock.Anything, msg).Return(nil).Once()
}

// withValue кодирует заказ и подменяет значение вложенного поля.
func withValue(t *testing.T, o entities.Order, object, key string, value any) string {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(orderJSON(t, o)), &doc))
	doc[object].(map[string]any)[key] = value

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

// serve отдаёт сообщения по одному, затем сообщает о закрытии источника.
func (m consumerMocks) serve(msgs ...broker.Message) {
	for _, msg := range msgs {
		m.source.EXPECT().Fetch(mock.Anything).Return(msg, nil).Once()
	}
	m.source.EXPECT().Fetch(mock.Anything).Return(broker.Message{}, broker.ErrClosed).Once()
}

func TestConsumer_Consume(t *testing.T) {
	order := storetest.Order("u1")
	valid := broker.Message{Topic: "orders", Offset: 1, Value: []byte(orderJSON(t, order))}
	storeErr := fmt.Errorf("%w: connection reset", entities.ErrStoreFailure)

	testCases := []struct {
		name         string
		msg          broker.Message
		mockBehavior func(m consumerMocks, msg broker.Message)
	}{
		{
			name: "saved, cached and committed",
			msg:  valid,
			mockBehavior: func(m consumerMocks, msg broker.Message) {
				mock.InOrder(
					m.saver.EXPECT().SaveOrder(mock.Anything, order).Return(nil).Once(),
					m.cache.EXPECT().Set(order).Return().Once(),
					m.source.EXPECT().Commit(mock.Anything, msg).Return(nil).Once(),
				)
			},
		},
		{
			name: "malformed json goes to DLQ",
			msg:  broker.Message{Topic: "orders", Value: []byte("not json")},
			mockBehavior: func(m consumerMocks, msg broker.Message) {
				m.source.EXPECT().DeadLetter(mock.Anything, msg).Return(nil).Once()
				m.source.EXPECT().Commit(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "bad date_created goes to DLQ",
			msg: broker.Message{Topic: "orders", Value: []byte(strings.Replace(
				orderJSON(t, order), `"2021-11-26T06:22:19Z"`, `"yesterday"`, 1))},
			mockBehavior: deadLettered,
		},
		{
			name:         "empty order_uid goes to DLQ",
			msg:          broker.Message{Topic: "orders", Value: []byte(orderJSON(t, storetest.Order("")))},
			mockBehavior: deadLettered,
		},
		{
			name:         "missing payment goes to DLQ",
			msg:          broker.Message{Topic: "orders", Value: []byte(withoutKey(t, order, "payment"))},
			mockBehavior: deadLettered,
		},
		{
			name:         "missing date_created goes to DLQ",
			msg:          broker.Message{Topic: "orders", Value: []byte(withoutKey(t, order, "date_created"))},
			mockBehavior: deadLettered,
		},
		{
			name:         "missing track_number goes to DLQ",
			msg:          broker.Message{Topic: "orders", Value: []byte(withoutKey(t, order, "track_number"))},
			mockBehavior: deadLettered,
		},
		{
			name:         "missing delivery field goes to DLQ",
			msg:          broker.Message{Topic: "orders", Value: []byte(withoutKey(t, order, "delivery", "email"))},
			mockBehavior: deadLettered,
		},
		{
			name:         "missing item field goes to DLQ",
			msg:          broker.Message{Topic: "orders", Value: []byte(withoutKey(t, order, "items", "price"))},
			mockBehavior: deadLettered,
		},
		{
			name: "sparse order goes to DLQ",
			msg: broker.Message{Topic: "orders", Value: []byte(
				`{"order_uid":"u9","delivery":{"name":"a","phone":"1"},"items":[{}]}`)},
			mockBehavior: deadLettered,
		},
		{
			name:         "custom_fee overflowing int32 goes to DLQ",
			msg:          broker.Message{Topic: "orders", Value: []byte(withValue(t, order, "payment", "custom_fee", 1<<31))},
			mockBehavior: deadLettered,
		},
		{
			name: "invalid order is not retried",
			msg:  valid,
			mockBehavior: func(m consumerMocks, msg broker.Message) {
				m.saver.EXPECT().SaveOrder(mock.Anything, order).
					Return(fmt.Errorf("%w: order has no items", entities.ErrInvalidOrder)).Once()
				m.source.EXPECT().DeadLetter(mock.Anything, msg).Return(nil).Once()
				m.source.EXPECT().Commit(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "store failure retried until success",
			msg:  valid,
			mockBehavior: func(m consumerMocks, msg broker.Message) {
				m.saver.EXPECT().SaveOrder(mock.Anything, order).Return(storeErr).Twice()
				m.saver.EXPECT().SaveOrder(mock.Anything, order).Return(nil).Once()
				m.cache.EXPECT().Set(order).Return().Once()
				m.source.EXPECT().Commit(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "persistent failure dead-lettered after all attempts",
			msg:  valid,
			mockBehavior: func(m consumerMocks, msg broker.Message) {
				m.saver.EXPECT().SaveOrder(mock.Anything, order).Return(storeErr).Times(ingestConfig.MaxAttempts)
				m.source.EXPECT().DeadLetter(mock.Anything, msg).Return(nil).Once()
				m.source.EXPECT().Commit(mock.Anything, msg).Return(nil).Once()
			},
		},
		{
			name: "not committed when DLQ fails",
			msg:  broker.Message{Topic: "orders", Value: []byte("not json")},
			mockBehavior: func(m consumerMocks, msg broker.Message) {
				m.source.EXPECT().DeadLetter(mock.Anything, msg).Return(errors.New("broker down")).Once()
			},
		},
		{
			name: "commit failure doesn't stop the loop",
			msg:  valid,
			mockBehavior: func(m consumerMocks, msg broker.Message) {
				m.saver.EXPECT().SaveOrder(mock.Anything, order).Return(nil).Once()
				m.cache.EXPECT().Set(order).Return().Once()
				m.source.EXPECT().Commit(mock.Anything, msg).Return(errors.New("rebalance")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newConsumerMocks(t)
			tc.mockBehavior(m, tc.msg)
			m.serve(tc.msg)

			c := handler.NewConsumer(newLogger(), m.source, m.saver, m.cache, ingestConfig)
			assert.Equal(t, handler.StateSubscribed, c.State())

			c.Consume(context.Background())
			assert.Equal(t, handler.StateStopped, c.State())
		})
	}
}

func TestConsumer_BadMessageDoesNotBlockNext(t *testing.T) {
	order := storetest.Order("u1")
	bad := broker.Message{Topic: "orders", Offset: 1, Value: []byte("{")}
	good := broker.Message{Topic: "orders", Offset: 2, Value: []byte(orderJSON(t, order))}

	m := newConsumerMocks(t)
	m.source.EXPECT().DeadLetter(mock.Anything, bad).Return(nil).Once()
	m.source.EXPECT().Commit(mock.Anything, bad).Return(nil).Once()
	m.saver.EXPECT().SaveOrder(mock.Anything, order).Return(nil).Once()
	m.cache.EXPECT().Set(order).Return().Once()
	m.source.EXPECT().Commit(mock.Anything, good).Return(nil).Once()
	m.serve(bad, good)

	c := handler.NewConsumer(newLogger(), m.source, m.saver, m.cache, ingestConfig)
	c.Consume(context.Background())
}

func TestConsumer_FinishesMessageOnShutdown(t *testing.T) {
	order := storetest.Order("u1")
	msg := broker.Message{Topic: "orders", Value: []byte(orderJSON(t, order))}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newConsumerMocks(t)
	c := handler.NewConsumer(newLogger(), m.source, m.saver, m.cache, ingestConfig)

	m.source.EXPECT().Fetch(mock.Anything).Return(msg, nil).Once()
	m.saver.EXPECT().SaveOrder(mock.Anything, order).
		RunAndReturn(func(saveCtx context.Context, _ entities.Order) error {
			assert.Equal(t, handler.StateHandlingMessage, c.State())
			cancel()
			// сохранение не должно видеть отмену
			assert.NoError(t, saveCtx.Err())
			return nil
		}).Once()
	m.cache.EXPECT().Set(order).Return().Once()
	m.source.EXPECT().Commit(mock.Anything, msg).
		RunAndReturn(func(commitCtx context.Context, _ broker.Message) error {
			assert.NoError(t, commitCtx.Err())
			return nil
		}).Once()
	m.source.EXPECT().Fetch(mock.Anything).
		RunAndReturn(func(fetchCtx context.Context) (broker.Message, error) {
			<-fetchCtx.Done()
			return broker.Message{}, fetchCtx.Err()
		}).Once()

	c.Consume(ctx)
	assert.Equal(t, handler.StateStopped, c.State())
}

func TestConsumer_StopsOnCancelWhileIdle(t *testing.T) {
	m := newConsumerMocks(t)
	m.source.EXPECT().Fetch(mock.Anything).
		RunAndReturn(func(ctx context.Context) (broker.Message, error) {
			<-ctx.Done()
			return broker.Message{}, ctx.Err()
		})

	c := handler.NewConsumer(newLogger(), m.source, m.saver, m.cache, ingestConfig)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Consume(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return c.State() == handler.StateConsuming }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.Equal(t, handler.StateStopped, c.State())
}

func TestConsumerState_String(t *testing.T) {
	assert.Equal(t, "subscribed", handler.StateSubscribed.String())
	assert.Equal(t, "handling_message", handler.StateHandlingMessage.String())
	assert.Equal(t, "stopped", handler.StateStopped.String())
}
