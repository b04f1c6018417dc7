package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Authorization
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers                 string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	AuthorizerConsumerGroup string `env:"KAFKA_AUTHORIZER_GROUP_ID" envDefault:"authorizer-service"`
	SubscriberTopics        string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"transactions.authorize"`
	PublishTopics           string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"transactions.authorized,transactions.denied,transactions.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Authorization struct {
	AnalysisTimeout    time.Duration `env:"FRAUD_ANALYSIS_TIMEOUT" envDefault:"800ms"`
	SlaLimit           time.Duration `env:"AUTHORIZATION_SLA_LIMIT" envDefault:"1500ms"`
	EventStoreDriver   string        `env:"EVENT_STORE_DRIVER" envDefault:"postgres"`
	AppendMaxAttempts  int           `env:"EVENT_STORE_APPEND_MAX_ATTEMPTS" envDefault:"3"`
	AppendRetryBackoff time.Duration `env:"EVENT_STORE_APPEND_RETRY_BACKOFF" envDefault:"20ms"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
