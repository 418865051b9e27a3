// Package storetest provides an in-memory SQLite database with the service
// schema applied, so repositories and transactions run against a real engine
// in tests.
package storetest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
	"github.com/SergeyBogomolovv/order-ingest/internal/postgres"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var dbSeq atomic.Int64

// New returns a fresh database limited to maxConns open connections.
func New(t testing.TB, maxConns int) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err)

	db.SetMaxOpenConns(maxConns)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, postgres.Migrate(context.Background(), logger, db))
	return db
}

// Count returns the number of rows in table for orderUID.
func Count(t testing.TB, db *sqlx.DB, table, orderUID string) int {
	t.Helper()

	var n int
	err := db.Get(&n, "SELECT COUNT(*) FROM "+table+" WHERE order_uid = ?", orderUID)
	require.NoError(t, err)
	return n
}

// Order returns a complete order with two items. Times are whole seconds in UTC
// so they survive a round trip through any driver.
func Order(orderUID string) entities.Order {
	return entities.Order{
		OrderUID:          orderUID,
		TrackNumber:       "WBILMTESTTRACK",
		Entry:             "WBIL",
		Locale:            "en",
		InternalSignature: "",
		CustomerID:        "test",
		DeliveryService:   "meest",
		ShardKey:          "9",
		SmID:              99,
		DateCreated:       time.Date(2021, 11, 26, 6, 22, 19, 0, time.UTC),
		OofShard:          "1",
		Delivery: entities.Delivery{
			Name:    "Test Testov",
			Phone:   "+9720000000",
			ZIP:     "2639809",
			City:    "Kiryat Mozkin",
			Address: "Ploshad Mira 15",
			Region:  "Kraiot",
			Email:   "test@gmail.com",
		},
		Payment: entities.Payment{
			Transaction:  orderUID,
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       1817,
			PaymentDT:    1637907727,
			Bank:         "alpha",
			DeliveryCost: 1500,
			GoodsTotal:   317,
		},
		Items: []entities.Item{
			{
				ChrtID:      9934930,
				TrackNumber: "WBILMTESTTRACK",
				Price:       453,
				RID:         "ab4219087a764ae0btest",
				Name:        "Mascaras",
				Sale:        30,
				Size:        "0",
				TotalPrice:  317,
				NmID:        2389212,
				Brand:       "Vivienne Sabo",
				Status:      202,
			},
			{
				ChrtID:      9934931,
				TrackNumber: "WBILMTESTTRACK",
				Price:       100,
				RID:         "cd4219087a764ae0btest",
				Name:        "Lipstick",
				TotalPrice:  100,
				NmID:        2389213,
				Brand:       "Vivienne Sabo",
				Status:      202,
			},
		},
	}
}
