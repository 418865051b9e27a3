package trm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrAcquireTimeout = errors.New("timed out waiting for a connection")
	ErrBegin          = errors.New("failed to begin transaction")
	ErrCommit         = errors.New("failed to commit transaction")
)

// Tx is the part of a transaction visible to repositories.
type Tx interface {
	sqlx.ExecerContext
	Commit() error
	Rollback() error
}

type Manager interface {
	// Do runs callback inside one transaction on one pooled connection.
	// The transaction is committed only if callback returns nil.
	Do(ctx context.Context, callback func(ctx context.Context, tx Tx) error) error
}

type txManager struct {
	db             *sqlx.DB
	acquireTimeout time.Duration
}

// NewManager creates a manager. acquireTimeout <= 0 waits for a connection
// until ctx is done.
func NewManager(db *sqlx.DB, acquireTimeout time.Duration) Manager {
	return &txManager{
		db:             db,
		acquireTimeout: acquireTimeout,
	}
}

func (t *txManager) acquire(ctx context.Context) (*sqlx.Conn, error) {
	if t.acquireTimeout <= 0 {
		return t.db.Connx(ctx)
	}

	actx, cancel := context.WithTimeout(ctx, t.acquireTimeout)
	defer cancel()

	conn, err := t.db.Connx(actx)
	if err != nil && errors.Is(actx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, fmt.Errorf("%w after %s", ErrAcquireTimeout, t.acquireTimeout)
	}
	return conn, err
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context, tx Tx) error) error {
	conn, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBegin, err)
	}
	defer tx.Rollback()

	if err := callback(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}
	return nil
}
