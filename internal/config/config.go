package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BrokerKafka = "kafka"
	BrokerStan  = "stan"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	ShutdownTimeout time.Duration `validate:"gt=0"`

	Broker string `validate:"required,oneof=kafka stan"`
	Kafka  Kafka  `validate:"required"`
	Stan   Stan   `validate:"required"`

	Postgres Postgres `validate:"required"`

	Ingest Ingest `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Stan struct {
	ClusterID  string        `validate:"required"`
	ClientID   string        `validate:"required"`
	URL        string        `validate:"required,url"`
	Subject    string        `validate:"required"`
	Durable    string        `validate:"required"`
	QueueGroup string        `validate:"required"`
	AckWait    time.Duration `validate:"gt=0"`
}

type Postgres struct {
	Driver   string `validate:"required,oneof=postgres pgx"`
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
	AcquireTimeout  time.Duration `validate:"gte=0"`
	ConnectAttempts int           `validate:"gte=1"`
}

// Ingest настраивает повторные попытки сохранения заказа из очереди.
type Ingest struct {
	MaxAttempts  int           `validate:"gte=1"`
	InitialDelay time.Duration `validate:"gt=0"`
	MaxDelay     time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		Broker: env("BROKER", BrokerKafka),

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "order-service"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Stan: Stan{
			ClusterID:  env("STAN_CLUSTER_ID", "test-cluster"),
			ClientID:   env("STAN_CLIENT_ID", "order-service"),
			URL:        env("STAN_URL", "nats://localhost:4222"),
			Subject:    env("STAN_SUBJECT", "orders"),
			Durable:    env("STAN_DURABLE", "order-service-durable"),
			QueueGroup: env("STAN_QUEUE_GROUP", "order-service"),
			AckWait:    envDuration("STAN_ACK_WAIT", 30*time.Second),
		},

		Postgres: Postgres{
			Driver:   env("POSTGRES_DRIVER", "postgres"),
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 16),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 16),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
			AcquireTimeout:  envDuration("POSTGRES_ACQUIRE_TIMEOUT", 5*time.Second),
			ConnectAttempts: envInt("POSTGRES_CONNECT_ATTEMPTS", 5),
		},

		Ingest: Ingest{
			MaxAttempts:  envInt("INGEST_MAX_ATTEMPTS", 5),
			InitialDelay: envDuration("INGEST_INITIAL_DELAY", 100*time.Millisecond),
			MaxDelay:     envDuration("INGEST_MAX_DELAY", 2*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
