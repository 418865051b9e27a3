package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/order-ingest/internal/cache"
	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/internal/repo"
	repoMocks "github.com/SergeyBogomolovv/order-ingest/internal/repo/mocks"
	"github.com/SergeyBogomolovv/order-ingest/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderCache(t *testing.T) {
	tests := []struct {
		name    string
		actions func(c *cache.OrderCache, t *testing.T)
	}{
		{
			name: "miss on empty cache",
			actions: func(c *cache.OrderCache, t *testing.T) {
				_, ok := c.Get("u1")
				assert.False(t, ok)
				assert.Empty(t, c.GetAll())
				assert.NotNil(t, c.GetAll())
			},
		},
		{
			name: "set and get",
			actions: func(c *cache.OrderCache, t *testing.T) {
				c.Set(storetest.Order("u1"))
				got, ok := c.Get("u1")
				require.True(t, ok)
				assert.Equal(t, storetest.Order("u1"), got)
			},
		},
		{
			name: "set is idempotent",
			actions: func(c *cache.OrderCache, t *testing.T) {
				c.Set(storetest.Order("u1"))
				c.Set(storetest.Order("u1"))
				assert.Equal(t, 1, c.Len())
				assert.Len(t, c.GetAll(), 1)
			},
		},
		{
			name: "set replaces whole order",
			actions: func(c *cache.OrderCache, t *testing.T) {
				c.Set(storetest.Order("u1"))

				updated := storetest.Order("u1")
				updated.TrackNumber = "NEW"
				updated.Items = updated.Items[:1]
				c.Set(updated)

				got, ok := c.Get("u1")
				require.True(t, ok)
				assert.Equal(t, "NEW", got.TrackNumber)
				assert.Len(t, got.Items, 1)
			},
		},
		{
			name: "caller mutations don't leak in",
			actions: func(c *cache.OrderCache, t *testing.T) {
				o := storetest.Order("u1")
				c.Set(o)
				o.Items[0].Name = "mutated"

				got, _ := c.Get("u1")
				assert.Equal(t, "Mascaras", got.Items[0].Name)
			},
		},
		{
			name: "returned copies don't leak back",
			actions: func(c *cache.OrderCache, t *testing.T) {
				c.Set(storetest.Order("u1"))

				got, _ := c.Get("u1")
				got.Items[0].Name = "mutated"
				all := c.GetAll()
				all[0].Items[0].Name = "mutated"

				again, _ := c.Get("u1")
				assert.Equal(t, "Mascaras", again.Items[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.NewOrderCache(newLogger())
			tt.actions(c, t)
		})
	}
}

func TestOrderCache_Concurrent(t *testing.T) {
	c := cache.NewOrderCache(newLogger())

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := storetest.Order("u1")
			o.SmID = i
			for range 100 {
				c.Set(o)
				c.Get("u1")
				c.GetAll()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
}

func TestOrderCache_LoadFromDB(t *testing.T) {
	db := storetest.New(t, 2)
	repos := repo.NewPostgresRepositories(db)
	ctx := context.Background()

	for _, uid := range []string{"a", "b"} {
		o := storetest.Order(uid)
		require.NoError(t, repos.Orders.Insert(ctx, o))
		require.NoError(t, repos.Deliveries.Insert(ctx, o.Delivery, uid))
		require.NoError(t, repos.Payments.Insert(ctx, o.Payment, uid))
		require.NoError(t, repos.Items.Insert(ctx, o.Items, uid))
	}

	// заголовок без остальных частей
	require.NoError(t, repos.Orders.Insert(ctx, storetest.Order("partial")))

	c := cache.NewOrderCache(newLogger())
	require.NoError(t, c.LoadFromDB(ctx, repos))

	assert.Equal(t, 2, c.Len())
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, storetest.Order("a"), got)

	_, ok = c.Get("partial")
	assert.False(t, ok)
}

func TestOrderCache_LoadFromDB_ListFails(t *testing.T) {
	orders := repoMocks.NewMockOrdersRepository(t)
	orders.EXPECT().ListUIDs(mock.Anything).Return(nil, entities.ErrStoreFailure)

	c := cache.NewOrderCache(newLogger())
	err := c.LoadFromDB(context.Background(), repo.Repositories{Orders: orders})

	assert.True(t, errors.Is(err, entities.ErrStoreFailure))
	assert.Equal(t, 0, c.Len())
}
