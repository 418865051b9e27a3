package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var itemColumns = []string{
	"order_uid", "position", "chrt_id", "track_number", "price", "rid", "name",
	"sale", "size", "total_price", "nm_id", "brand", "status",
}

type itemsRepo struct {
	base
}

func NewItemsRepo(db *sqlx.DB) *itemsRepo {
	return &itemsRepo{base: newBase(db)}
}

// Insert replaces the order's items. Outside a transaction the delete and the
// insert are two separate statements.
func (r *itemsRepo) Insert(ctx context.Context, items []entities.Item, orderUID string) error {
	return r.insert(ctx, r.db, items, orderUID)
}

func (r *itemsRepo) InsertTx(ctx context.Context, tx trm.Tx, items []entities.Item, orderUID string) error {
	return r.insert(ctx, tx, items, orderUID)
}

func (r *itemsRepo) insert(ctx context.Context, execer sqlx.ExecerContext, items []entities.Item, orderUID string) error {
	del := r.qb.Delete("items").Where(sq.Eq{"order_uid": orderUID})
	if err := r.exec(ctx, execer, del); err != nil {
		return fmt.Errorf("failed to replace items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("items").Columns(itemColumns...)
	for i, it := range items {
		q = q.Values(
			orderUID,
			i,
			it.ChrtID,
			it.TrackNumber,
			it.Price,
			it.RID,
			it.Name,
			nullInt32(it.Sale),
			nullString(it.Size),
			it.TotalPrice,
			it.NmID,
			nullString(it.Brand),
			it.Status,
		)
	}

	if err := r.exec(ctx, execer, q); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *itemsRepo) GetByOrderID(ctx context.Context, orderUID string) ([]entities.Item, error) {
	q := r.qb.Select(itemColumns[1:]...).
		From("items").
		Where(sq.Eq{"order_uid": orderUID}).
		OrderBy("position")

	var rows []Item
	if err := r.selectAll(ctx, "items", &rows, q); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("items %w", entities.ErrNotFound)
	}

	items := make([]entities.Item, 0, len(rows))
	for _, it := range rows {
		items = append(items, ItemToEntity(it))
	}
	return items, nil
}
