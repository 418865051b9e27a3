package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_uid", "track_number", "entry", "locale",
	"internal_signature", "customer_id", "delivery_service",
	"shardkey", "sm_id", "date_created", "oof_shard",
}

type ordersRepo struct {
	base
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{base: newBase(db)}
}

func (r *ordersRepo) Insert(ctx context.Context, o entities.Order) error {
	return r.insert(ctx, r.db, o)
}

func (r *ordersRepo) InsertTx(ctx context.Context, tx trm.Tx, o entities.Order) error {
	return r.insert(ctx, tx, o)
}

func (r *ordersRepo) insert(ctx context.Context, execer sqlx.ExecerContext, o entities.Order) error {
	q := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderUID, o.TrackNumber, nullString(o.Entry), nullString(o.Locale),
			nullString(o.InternalSignature), o.CustomerID, o.DeliveryService,
			nullString(o.ShardKey), o.SmID, o.DateCreated.UTC(), nullString(o.OofShard),
		).
		Suffix(upsertSuffix(orderColumns...))

	if err := r.exec(ctx, execer, q); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetByID(ctx context.Context, orderUID string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_uid": orderUID})

	var order Order
	if err := r.get(ctx, "order", &order, q); err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order), nil
}

func (r *ordersRepo) ListUIDs(ctx context.Context) ([]string, error) {
	q := r.qb.Select("order_uid").
		From("orders").
		OrderBy("date_created", "order_uid")

	var uids []string
	if err := r.selectAll(ctx, "order uids", &uids, q); err != nil {
		return nil, err
	}
	return uids, nil
}

// upsertSuffix перезаписывает строку при повторной доставке того же заказа.
// Первая колонка считается ключом.
func upsertSuffix(columns ...string) string {
	set := make([]string, 0, len(columns)-1)
	for _, c := range columns[1:] {
		set = append(set, c+" = EXCLUDED."+c)
	}
	return "ON CONFLICT (" + columns[0] + ") DO UPDATE SET " + strings.Join(set, ", ")
}
