package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var deliveryColumns = []string{"order_uid", "name", "phone", "zip", "city", "address", "region", "email"}

type deliveriesRepo struct {
	base
}

func NewDeliveriesRepo(db *sqlx.DB) *deliveriesRepo {
	return &deliveriesRepo{base: newBase(db)}
}

func (r *deliveriesRepo) Insert(ctx context.Context, d entities.Delivery, orderUID string) error {
	return r.insert(ctx, r.db, d, orderUID)
}

func (r *deliveriesRepo) InsertTx(ctx context.Context, tx trm.Tx, d entities.Delivery, orderUID string) error {
	return r.insert(ctx, tx, d, orderUID)
}

func (r *deliveriesRepo) insert(ctx context.Context, execer sqlx.ExecerContext, d entities.Delivery, orderUID string) error {
	q := r.qb.Insert("deliveries").
		Columns(deliveryColumns...).
		Values(orderUID,
			d.Name,
			d.Phone,
			nullString(d.ZIP),
			nullString(d.City),
			nullString(d.Address),
			nullString(d.Region),
			nullString(d.Email),
		).
		Suffix(upsertSuffix(deliveryColumns...))

	if err := r.exec(ctx, execer, q); err != nil {
		return fmt.Errorf("failed to save delivery: %w", err)
	}
	return nil
}

func (r *deliveriesRepo) GetByOrderID(ctx context.Context, orderUID string) (entities.Delivery, error) {
	q := r.qb.Select(deliveryColumns[1:]...).
		From("deliveries").
		Where(sq.Eq{"order_uid": orderUID})

	var delivery Delivery
	if err := r.get(ctx, "delivery", &delivery, q); err != nil {
		return entities.Delivery{}, err
	}
	return DeliveryToEntity(delivery), nil
}
