package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-authorizer-service/config"
	"github.com/jeffleon2/draftea-authorizer-service/internal/eventstore"
	"github.com/jeffleon2/draftea-authorizer-service/internal/fraud"
	"github.com/jeffleon2/draftea-authorizer-service/internal/handlers"
	"github.com/jeffleon2/draftea-authorizer-service/internal/metrics"
	"github.com/jeffleon2/draftea-authorizer-service/internal/publisher"
	"github.com/jeffleon2/draftea-authorizer-service/internal/service"
	"github.com/jeffleon2/draftea-authorizer-service/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	store := a.initEventStore()

	metrics.RegisterMetrics()
	collector := metrics.NewCollector()
	analyzer := fraud.NewAnalyzer(fraud.WithTimeout(cfg.Authorization.AnalysisTimeout))

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.GetRetryConfig())

	authService := service.NewAuthorizationService(
		store,
		analyzer,
		kafkaPublisher,
		collector,
		service.WithSlaLimit(cfg.Authorization.SlaLimit),
		service.WithAppendRetry(cfg.Authorization.AppendMaxAttempts, cfg.Authorization.AppendRetryBackoff),
	)
	authHandler := handlers.NewAuthorizationHandler(authService, cfg.Authorization.SlaLimit)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(authHandler)

	a.initSubscribers(authHandler, kafkaPublisher, cfg.GetRetryConfig())
}

func (a *App) initEventStore() service.EventStore {
	if a.config.Authorization.EventStoreDriver == "memory" {
		logrus.Warn("Using in-memory event store; events will not survive restarts")
		return eventstore.NewMemoryStore()
	}

	db, err := a.config.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&eventstore.EventRecord{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}
	return eventstore.NewPostgresStore(db)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(authHandler *handlers.AuthorizationHandler, kafkaPublisher *publisher.KafkaPublisher, retryConfig config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.AuthorizerConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, kafkaPublisher, retryConfig)

	ctx := context.Background()
	consumer.Listen(ctx, func(topic string, value []byte) error {
		log.Printf("Received message → topic=%s value=%s\n", topic, string(value))
		err := authHandler.HandleEvents(ctx, topic, value)
		if err != nil {
			logrus.Error(err.Error())
		}
		return err
	})
}
