package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/internal/repo"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"
)

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repos     repo.Repositories
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repos repo.Repositories) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repos:     repos,
	}
}

// SaveOrder validates the order and writes it to all four tables in one
// transaction: header, delivery, payment, items.
func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context, tx trm.Tx) error {
		if err := s.repos.Orders.InsertTx(ctx, tx, order); err != nil {
			return err
		}
		if err := s.repos.Deliveries.InsertTx(ctx, tx, order.Delivery, order.OrderUID); err != nil {
			return err
		}
		if err := s.repos.Payments.InsertTx(ctx, tx, order.Payment, order.OrderUID); err != nil {
			return err
		}
		return s.repos.Items.InsertTx(ctx, tx, order.Items, order.OrderUID)
	})
	if err != nil {
		return mapTxError(err)
	}

	s.logger.Debug("order saved", slog.String("order_uid", order.OrderUID))
	return nil
}

// GetOrderByID reads the order straight from the store, bypassing any cache.
func (s *orderService) GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error) {
	return repo.LoadOrder(ctx, s.repos, orderUID)
}

func mapTxError(err error) error {
	switch {
	case errors.Is(err, entities.ErrStoreFailure):
		return err
	case errors.Is(err, trm.ErrAcquireTimeout):
		return fmt.Errorf("%w: %w", entities.ErrPoolExhausted, err)
	default:
		// begin, commit, отмена контекста при ожидании соединения
		return fmt.Errorf("%w: %w", entities.ErrUnexpected, err)
	}
}
