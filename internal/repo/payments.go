package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// transaction это ключевое слово в sqlite, поэтому колонка в кавычках
var paymentColumns = []string{
	"order_uid", `"transaction"`, "request_id", "currency", "provider", "amount",
	"payment_dt", "bank", "delivery_cost", "goods_total", "custom_fee",
}

type paymentsRepo struct {
	base
}

func NewPaymentsRepo(db *sqlx.DB) *paymentsRepo {
	return &paymentsRepo{base: newBase(db)}
}

func (r *paymentsRepo) Insert(ctx context.Context, p entities.Payment, orderUID string) error {
	return r.insert(ctx, r.db, p, orderUID)
}

func (r *paymentsRepo) InsertTx(ctx context.Context, tx trm.Tx, p entities.Payment, orderUID string) error {
	return r.insert(ctx, tx, p, orderUID)
}

func (r *paymentsRepo) insert(ctx context.Context, execer sqlx.ExecerContext, p entities.Payment, orderUID string) error {
	q := r.qb.Insert("payments").
		Columns(paymentColumns...).
		Values(
			orderUID, p.Transaction, nullString(p.RequestID), p.Currency, p.Provider, p.Amount,
			p.PaymentDT, nullString(p.Bank), p.DeliveryCost, p.GoodsTotal, nullInt32(p.CustomFee),
		).
		Suffix(upsertSuffix(paymentColumns...))

	if err := r.exec(ctx, execer, q); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *paymentsRepo) GetByOrderID(ctx context.Context, orderUID string) (entities.Payment, error) {
	q := r.qb.Select(paymentColumns[1:]...).
		From("payments").
		Where(sq.Eq{"order_uid": orderUID})

	var payment Payment
	if err := r.get(ctx, "payment", &payment, q); err != nil {
		return entities.Payment{}, err
	}
	return PaymentToEntity(payment), nil
}
