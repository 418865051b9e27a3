package repo

import (
	"context"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"
)

// Репозитории не валидируют данные: это делает вызывающий сервис.
// Insert пишет вне транзакции, InsertTx участвует в транзакции вызывающего.

type OrdersRepository interface {
	Insert(ctx context.Context, o entities.Order) error
	InsertTx(ctx context.Context, tx trm.Tx, o entities.Order) error
	GetByID(ctx context.Context, orderUID string) (entities.Order, error)
	ListUIDs(ctx context.Context) ([]string, error)
}

type DeliveriesRepository interface {
	Insert(ctx context.Context, d entities.Delivery, orderUID string) error
	InsertTx(ctx context.Context, tx trm.Tx, d entities.Delivery, orderUID string) error
	GetByOrderID(ctx context.Context, orderUID string) (entities.Delivery, error)
}

type PaymentsRepository interface {
	Insert(ctx context.Context, p entities.Payment, orderUID string) error
	InsertTx(ctx context.Context, tx trm.Tx, p entities.Payment, orderUID string) error
	GetByOrderID(ctx context.Context, orderUID string) (entities.Payment, error)
}

type ItemsRepository interface {
	Insert(ctx context.Context, items []entities.Item, orderUID string) error
	InsertTx(ctx context.Context, tx trm.Tx, items []entities.Item, orderUID string) error
	GetByOrderID(ctx context.Context, orderUID string) ([]entities.Item, error)
}

type Repositories struct {
	Orders     OrdersRepository
	Deliveries DeliveriesRepository
	Payments   PaymentsRepository
	Items      ItemsRepository
}

// LoadOrder composes a full order from four independent reads. The reads
// don't share a snapshot; the first error is returned.
func LoadOrder(ctx context.Context, repos Repositories, orderUID string) (entities.Order, error) {
	order, err := repos.Orders.GetByID(ctx, orderUID)
	if err != nil {
		return entities.Order{}, err
	}

	order.Delivery, err = repos.Deliveries.GetByOrderID(ctx, orderUID)
	if err != nil {
		return entities.Order{}, err
	}

	order.Payment, err = repos.Payments.GetByOrderID(ctx, orderUID)
	if err != nil {
		return entities.Order{}, err
	}

	order.Items, err = repos.Items.GetByOrderID(ctx, orderUID)
	if err != nil {
		return entities.Order{}, err
	}

	return order, nil
}
