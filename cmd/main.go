package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/order-ingest/docs"
	"github.com/SergeyBogomolovv/order-ingest/internal/app"
	"github.com/SergeyBogomolovv/order-ingest/internal/broker"
	"github.com/SergeyBogomolovv/order-ingest/internal/cache"
	"github.com/SergeyBogomolovv/order-ingest/internal/config"
	"github.com/SergeyBogomolovv/order-ingest/internal/generator"
	"github.com/SergeyBogomolovv/order-ingest/internal/handler"
	"github.com/SergeyBogomolovv/order-ingest/internal/postgres"
	"github.com/SergeyBogomolovv/order-ingest/internal/repo"
	"github.com/SergeyBogomolovv/order-ingest/internal/service"
	"github.com/SergeyBogomolovv/order-ingest/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Order Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(logger, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected", slog.String("driver", conf.Postgres.Driver))

	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), logger, db))

	repos := repo.NewPostgresRepositories(db)
	txManager := trm.NewManager(db, conf.Postgres.AcquireTimeout)
	orderCache := cache.NewOrderCache(logger)
	orderService := service.NewOrderService(logger, txManager, repos)

	source, err := newSource(logger, conf)
	panicIfErr("failed to connect to broker", err)

	consumer := handler.NewConsumer(logger, source, orderService, orderCache, conf.Ingest)
	httpHandler := handler.NewHTTPHandler(logger, orderService, orderCache, generator.New(uint64(time.Now().UnixNano())))

	handler.RegisterMetrics(orderCache)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, handler.NewSystemHandler())
	app.SetConsumers(consumer)
	app.SetStarters(cacheLoadAdapter{cache: orderCache, repos: repos})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("application failed", app.Run(ctx))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func newSource(logger *slog.Logger, conf config.Config) (handler.MessageSource, error) {
	switch conf.Broker {
	case config.BrokerStan:
		return broker.NewStanSource(logger, conf.Stan)
	default:
		return broker.NewKafkaSource(logger, conf.Kafka), nil
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type cacheLoader interface {
	LoadFromDB(ctx context.Context, repos repo.Repositories) error
}

type cacheLoadAdapter struct {
	cache cacheLoader
	repos repo.Repositories
}

func (a cacheLoadAdapter) Start(ctx context.Context) error {
	return a.cache.LoadFromDB(ctx, a.repos)
}
