package main

import (
	"fmt"
	"log/slog"
	"os"

	"ordersvc/cmd"
	httpin "ordersvc/internal/adapters/in/http"
	"ordersvc/internal/adapters/out/kafka"
	"ordersvc/internal/adapters/out/noop"
	"ordersvc/internal/adapters/out/postgres/orderrepo"
	redisout "ordersvc/internal/adapters/out/redis"
	"ordersvc/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	publisher, eventLog, stats := createSideEffectAdapters(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, eventLog, stats, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine; variables may come from the environment directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		RedisURL:             os.Getenv("REDIS_URL"),
		EventsChannel:        os.Getenv("EVENTS_CHANNEL"),
		NotificationsChannel: os.Getenv("NOTIFICATIONS_CHANNEL"),
		AnalyticsChannel:     os.Getenv("ANALYTICS_CHANNEL"),
		KafkaBroker:          os.Getenv("KAFKA_BROKER"),
	}
	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createSideEffectAdapters selects the post-commit side effect backends.
// Kafka wins for publishing when a broker is configured, then Redis pub/sub,
// then no-op. The event log and counters always live in Redis when it is
// configured.
func createSideEffectAdapters(configs cmd.Config, logger *slog.Logger) (
	ports.EventPublisher, ports.EventLog, ports.StatsSink,
) {
	var (
		publisher ports.EventPublisher = noop.Publisher{}
		eventLog  ports.EventLog       = noop.EventLog{}
		stats     ports.StatsSink      = noop.StatsSink{}
	)

	channels := redisout.DefaultChannels()
	if configs.EventsChannel != "" {
		channels.Events = configs.EventsChannel
	}
	if configs.NotificationsChannel != "" {
		channels.Notifications = configs.NotificationsChannel
	}
	if configs.AnalyticsChannel != "" {
		channels.Analytics = configs.AnalyticsChannel
	}

	if configs.RedisURL != "" {
		client, err := redisout.NewClient(configs.RedisURL)
		if err != nil {
			log.Fatalf("Failed to create Redis client: %v", err)
		}
		publisher = redisout.NewPublisher(client, channels)
		eventLog = redisout.NewEventLog(client)
		stats = redisout.NewStatsSink(client)
	} else {
		logger.Warn("Redis is not configured; event log and counters are disabled")
	}

	if configs.KafkaBroker != "" {
		publisher = kafka.NewPublisher(configs.KafkaBroker, kafka.Topics{
			Events:        channels.Events,
			Notifications: channels.Notifications,
			Analytics:     channels.Analytics,
		})
	}

	return publisher, eventLog, stats
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderByTrackingNumberQueryHandler(),
		app.CreateGetStatusStatisticsQueryHandler(),
		app.CreateGetRevenueQueryHandler(),
		app.CreateGetOrderEventsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
