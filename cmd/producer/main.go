package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/config"
	"github.com/SergeyBogomolovv/order-ingest/internal/generator"
	"github.com/SergeyBogomolovv/order-ingest/internal/handler"

	"github.com/joho/godotenv"
	stan "github.com/nats-io/stan.go"
	"github.com/segmentio/kafka-go"
)

// publisher отправляет сырой payload в выбранный брокер
type publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Close() error
}

type kafkaPublisher struct {
	w *kafka.Writer
}

func (p kafkaPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: payload})
}

func (p kafkaPublisher) Close() error { return p.w.Close() }

type stanPublisher struct {
	conn    stan.Conn
	subject string
}

func (p stanPublisher) Publish(_ context.Context, _ string, payload []byte) error {
	return p.conn.Publish(p.subject, payload)
}

func (p stanPublisher) Close() error { return p.conn.Close() }

func main() {
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	count := flag.Int("count", 0, "number of orders to send, 0 means until interrupted")
	invalidRate := flag.Float64("invalid-rate", 0, "share of malformed messages, for DLQ testing")
	flag.Parse()

	godotenv.Load()
	conf := config.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	pub, err := newPublisher(conf)
	if err != nil {
		logger.Error("failed to connect to broker", slog.Any("error", err))
		os.Exit(1)
	}
	defer pub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	gen := generator.New(uint64(time.Now().UnixNano()))
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for sent := 0; *count == 0 || sent < *count; sent++ {
		order := gen.Order()
		payload, _ := json.Marshal(handler.OrderEntityToJSON(order))
		if rand.Float64() < *invalidRate {
			payload = payload[:len(payload)/2]
		}

		if err := pub.Publish(ctx, order.OrderUID, payload); err != nil {
			logger.Error("failed to publish order", slog.Any("error", err))
		} else {
			logger.Info("order sent", slog.String("order_uid", order.OrderUID))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func newPublisher(conf config.Config) (publisher, error) {
	if conf.Broker == config.BrokerStan {
		conn, err := stan.Connect(conf.Stan.ClusterID, conf.Stan.ClientID+"-producer", stan.NatsURL(conf.Stan.URL))
		if err != nil {
			return nil, err
		}
		return stanPublisher{conn: conn, subject: conf.Stan.Subject}, nil
	}

	return kafkaPublisher{w: &kafka.Writer{
		Addr:                   kafka.TCP(conf.Kafka.Brokers...),
		Topic:                  conf.Kafka.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           conf.Kafka.BatchTimeout,
		AllowAutoTopicCreation: true,
	}}, nil
}
