package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// Нагрузочный клиент: читает заказы из кеша сервиса и запрашивает их по UID,
// иногда подмешивая несуществующие.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	workers := flag.Int("workers", 10, "max concurrent requests per round")
	missRate := flag.Float64("miss-rate", 0.2, "share of requests for unknown order_uid")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := &http.Client{Timeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	uids, err := knownUIDs(ctx, client, *baseURL)
	if err != nil {
		logger.Error("failed to list orders", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("orders loaded", slog.Int("count", len(uids)))

	for ctx.Err() == nil {
		var wg sync.WaitGroup
		for range rand.IntN(*workers) + 1 {
			id := uuid.NewString()
			if len(uids) > 0 && rand.Float64() >= *missRate {
				id = uids[rand.IntN(len(uids))]
			}
			wg.Go(func() { doRequest(ctx, logger, client, *baseURL+"/order/"+id) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func knownUIDs(ctx context.Context, client *http.Client, baseURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/orders", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var orders []struct {
		OrderUID string `json:"order_uid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}

	uids := make([]string, 0, len(orders))
	for _, o := range orders {
		uids = append(uids, o.OrderUID)
	}
	return uids, nil
}

func doRequest(ctx context.Context, logger *slog.Logger, client *http.Client, url string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("request failed", slog.Any("error", err))
		return
	}
	resp.Body.Close()
	logger.Debug("GET", slog.String("url", url), slog.String("status", resp.Status))
}
