package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/internal/repo"
)

// OrderCache is an unbounded in-memory index of saved orders. Values are
// copied on the way in and on the way out.
type OrderCache struct {
	logger *slog.Logger

	mu     sync.RWMutex
	orders map[string]entities.Order
}

func NewOrderCache(logger *slog.Logger) *OrderCache {
	return &OrderCache{
		logger: logger.With(slog.String("service", "cache")),
		orders: make(map[string]entities.Order),
	}
}

func (c *OrderCache) Get(orderUID string) (entities.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	order, ok := c.orders[orderUID]
	if !ok {
		return entities.Order{}, false
	}
	return order.Clone(), true
}

func (c *OrderCache) GetAll() []entities.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	orders := make([]entities.Order, 0, len(c.orders))
	for _, o := range c.orders {
		orders = append(orders, o.Clone())
	}
	return orders
}

// Set полностью заменяет закешированный заказ.
func (c *OrderCache) Set(order entities.Order) {
	order = order.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[order.OrderUID] = order
}

func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}

// LoadFromDB fills the cache with every order in the store. Orders that fail
// to load are logged and skipped; only a failure to list orders is returned.
func (c *OrderCache) LoadFromDB(ctx context.Context, repos repo.Repositories) error {
	uids, err := repos.Orders.ListUIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	loaded := 0
	for _, uid := range uids {
		order, err := repo.LoadOrder(ctx, repos, uid)
		if err != nil {
			c.logger.Warn("failed to load order", slog.String("order_uid", uid), slog.Any("error", err))
			continue
		}
		c.Set(order)
		loaded++
	}

	c.logger.Info("cache restored", slog.Int("loaded", loaded), slog.Int("skipped", len(uids)-loaded))
	return nil
}
