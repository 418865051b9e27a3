package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/config"
	"github.com/SergeyBogomolovv/order-ingest/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"
)

// ErrConsumerStopped is returned by Run when a consumer exits before shutdown,
// e.g. after the broker connection is lost.
var ErrConsumerStopped = errors.New("consumer stopped unexpectedly")

type application struct {
	logger *slog.Logger

	router          chi.Router
	httpSrv         *http.Server
	shutdownTimeout time.Duration

	starters  []Starter
	consumers []Consumer
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger.With(slog.String("handler", "http"))))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:          logger,
		httpSrv:         httpSrv,
		router:          router,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Starter выполняется до запуска консьюмеров и HTTP сервера.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Run blocks until ctx is canceled and every task has returned: the consumers
// drain their current message and the HTTP server shuts down gracefully.
func (a *application) Run(ctx context.Context) error {
	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to run starter: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, c := range a.consumers {
		g.Go(func() error {
			c.Consume(gctx)
			if err := c.Close(); err != nil {
				a.logger.Error("failed to close consumer", slog.Any("error", err))
			}
			// без консьюмера сервис не принимает заказы, останавливаем остальное
			if gctx.Err() == nil {
				return ErrConsumerStopped
			}
			return nil
		})
	}

	g.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown http server: %w", err)
		}
		return nil
	})

	a.logger.Info("application started")
	err := g.Wait()
	a.logger.Info("application stopped")
	return err
}
