package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/internal/repo"
	repoMocks "github.com/SergeyBogomolovv/order-ingest/internal/repo/mocks"
	"github.com/SergeyBogomolovv/order-ingest/internal/service"
	"github.com/SergeyBogomolovv/order-ingest/internal/storetest"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"
	txMocks "github.com/SergeyBogomolovv/order-ingest/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type repoMockSet struct {
	orders     *repoMocks.MockOrdersRepository
	deliveries *repoMocks.MockDeliveriesRepository
	payments   *repoMocks.MockPaymentsRepository
	items      *repoMocks.MockItemsRepository
}

func newRepoMocks(t *testing.T) (repoMockSet, repo.Repositories) {
	m := repoMockSet{
		orders:     repoMocks.NewMockOrdersRepository(t),
		deliveries: repoMocks.NewMockDeliveriesRepository(t),
		payments:   repoMocks.NewMockPaymentsRepository(t),
		items:      repoMocks.NewMockItemsRepository(t),
	}
	return m, repo.Repositories{
		Orders:     m.orders,
		Deliveries: m.deliveries,
		Payments:   m.payments,
		Items:      m.items,
	}
}

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(m repoMockSet)

	storeErr := fmt.Errorf("%w: insert failed", entities.ErrStoreFailure)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK, tables written in order",
			mockBehavior: func(m repoMockSet) {
				mock.InOrder(
					m.orders.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything).Return(nil).Call,
					m.deliveries.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything, "u1").Return(nil).Call,
					m.payments.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything, "u1").Return(nil).Call,
					m.items.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything, "u1").Return(nil).Call,
				)
			},
		},
		{
			name: "header fails, nothing else written",
			mockBehavior: func(m repoMockSet) {
				m.orders.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything).Return(storeErr)
			},
			wantErr: entities.ErrStoreFailure,
		},
		{
			name: "payment fails, items skipped",
			mockBehavior: func(m repoMockSet) {
				m.orders.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				m.deliveries.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything, "u1").Return(nil)
				m.payments.EXPECT().InsertTx(mock.Anything, mock.Anything, mock.Anything, "u1").Return(storeErr)
			},
			wantErr: entities.ErrStoreFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, repos := newRepoMocks(t)
			tx := txMocks.NewMockManager(t)

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(context.Context, trm.Tx) error) error {
					return cb(ctx, nil)
				})

			tc.mockBehavior(m)

			svc := service.NewOrderService(newLogger(), tx, repos)
			err := svc.SaveOrder(context.Background(), storetest.Order("u1"))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_SaveOrder_TxErrors(t *testing.T) {
	testCases := []struct {
		name    string
		txErr   error
		wantErr error
	}{
		{name: "acquire timeout", txErr: trm.ErrAcquireTimeout, wantErr: entities.ErrPoolExhausted},
		{name: "begin", txErr: trm.ErrBegin, wantErr: entities.ErrUnexpected},
		{name: "commit", txErr: trm.ErrCommit, wantErr: entities.ErrUnexpected},
		{name: "canceled", txErr: context.Canceled, wantErr: entities.ErrUnexpected},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, repos := newRepoMocks(t)
			tx := txMocks.NewMockManager(t)
			tx.EXPECT().Do(mock.Anything, mock.Anything).Return(tc.txErr)

			svc := service.NewOrderService(newLogger(), tx, repos)
			err := svc.SaveOrder(context.Background(), storetest.Order("u1"))

			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, tc.txErr)
		})
	}
}

func TestOrderService_SaveOrder_Invalid(t *testing.T) {
	db := storetest.New(t, 1)
	svc := service.NewOrderService(newLogger(), trm.NewManager(db, 0), repo.NewPostgresRepositories(db))

	o := storetest.Order("u1")
	o.Items = nil

	err := svc.SaveOrder(context.Background(), o)
	require.ErrorIs(t, err, entities.ErrInvalidOrder)

	for _, table := range []string{"orders", "deliveries", "payments", "items"} {
		assert.Equal(t, 0, storetest.Count(t, db, table, "u1"), table)
	}
}

func TestOrderService_SaveAndGet(t *testing.T) {
	db := storetest.New(t, 2)
	svc := service.NewOrderService(newLogger(), trm.NewManager(db, time.Second), repo.NewPostgresRepositories(db))
	ctx := context.Background()

	want := storetest.Order("u1")
	require.NoError(t, svc.SaveOrder(ctx, want))

	got, err := svc.GetOrderByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.GetOrderByID(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestOrderService_SaveOrder_Replay(t *testing.T) {
	db := storetest.New(t, 2)
	svc := service.NewOrderService(newLogger(), trm.NewManager(db, time.Second), repo.NewPostgresRepositories(db))
	ctx := context.Background()

	require.NoError(t, svc.SaveOrder(ctx, storetest.Order("u1")))
	require.NoError(t, svc.SaveOrder(ctx, storetest.Order("u1")))

	assert.Equal(t, 1, storetest.Count(t, db, "orders", "u1"))
	assert.Equal(t, 2, storetest.Count(t, db, "items", "u1"))
}

func TestOrderService_SaveOrder_Atomic(t *testing.T) {
	tables := []string{"orders", "deliveries", "payments", "items"}

	for _, failing := range tables {
		t.Run(failing+" insert fails", func(t *testing.T) {
			db := storetest.New(t, 1)
			svc := service.NewOrderService(newLogger(), trm.NewManager(db, time.Second), repo.NewPostgresRepositories(db))

			// вставка в failing упадёт, предыдущие должны откатиться
			_, err := db.Exec(fmt.Sprintf(
				"CREATE TRIGGER fail_%[1]s BEFORE INSERT ON %[1]s BEGIN SELECT RAISE(ABORT, 'insert rejected'); END",
				failing))
			require.NoError(t, err)

			err = svc.SaveOrder(context.Background(), storetest.Order("u1"))
			require.ErrorIs(t, err, entities.ErrStoreFailure)

			for _, table := range tables {
				assert.Equal(t, 0, storetest.Count(t, db, table, "u1"), table)
			}
		})
	}
}

func TestOrderService_SaveOrder_PoolExhausted(t *testing.T) {
	db := storetest.New(t, 1)
	svc := service.NewOrderService(newLogger(), trm.NewManager(db, 50*time.Millisecond), repo.NewPostgresRepositories(db))
	ctx := context.Background()

	conn, err := db.Connx(ctx)
	require.NoError(t, err)

	err = svc.SaveOrder(ctx, storetest.Order("u1"))
	assert.ErrorIs(t, err, entities.ErrPoolExhausted)
	assert.True(t, entities.Retryable(err))

	require.NoError(t, conn.Close())
	assert.Equal(t, 0, storetest.Count(t, db, "orders", "u1"))
}
