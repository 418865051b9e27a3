package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// NewPostgresRepositories builds all four repositories on one pool.
func NewPostgresRepositories(db *sqlx.DB) Repositories {
	return Repositories{
		Orders:     NewOrdersRepo(db),
		Deliveries: NewDeliveriesRepo(db),
		Payments:   NewPaymentsRepo(db),
		Items:      NewItemsRepo(db),
	}
}

type base struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newBase(db *sqlx.DB) base {
	return base{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(placeholderFor(db.DriverName())),
	}
}

func placeholderFor(driver string) sq.PlaceholderFormat {
	switch driver {
	case "postgres", "pgx":
		return sq.Dollar
	default:
		return sq.Question
	}
}

func (b base) exec(ctx context.Context, execer sqlx.ExecerContext, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: build query: %w", entities.ErrStoreFailure, err)
	}
	if _, err := execer.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrStoreFailure, err)
	}
	return nil
}

func (b base) get(ctx context.Context, what string, dest any, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: build query: %w", entities.ErrStoreFailure, err)
	}

	err = b.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", what, entities.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: get %s: %w", entities.ErrStoreFailure, what, err)
	}
	return nil
}

func (b base) selectAll(ctx context.Context, what string, dest any, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: build query: %w", entities.ErrStoreFailure, err)
	}

	if err := b.db.SelectContext(ctx, dest, query, args...); err != nil {
		return fmt.Errorf("%w: select %s: %w", entities.ErrStoreFailure, what, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt32(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}
