package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/storeorderrepo"
	"marketplace/internal/adapters/out/postgres/walletrepo"
	"marketplace/internal/adapters/out/redis"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	platformFeePercent, err := decimal.NewFromString(configs.PlatformFeePercent)
	if err != nil {
		log.Fatalf("Invalid PLATFORM_FEE_PERCENT %q: %v", configs.PlatformFeePercent, err)
	}
	reminderAfter, err := time.ParseDuration(configs.PendingReminderAfter)
	if err != nil {
		log.Fatalf("Invalid PENDING_REMINDER_AFTER %q: %v", configs.PendingReminderAfter, err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	notifier := kafka.NewNotifier(configs.KafkaHost, configs.KafkaNotificationsTopic, logger)
	defer func() { _ = notifier.Close() }()

	// One reminder per pending order per window.
	tracker := redis.NewReminderTracker(configs.RedisAddr, reminderAfter)
	defer func() { _ = tracker.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, tracker, platformFeePercent)

	jobManager := jobs.NewJobManager(
		app.CreateNotifyPendingStoreOrdersCommandHandler(),
		reminderAfter,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR"),
		PlatformFeePercent:      goDotEnvVariable("PLATFORM_FEE_PERCENT"),
		PendingReminderAfter:    goDotEnvVariable("PENDING_REMINDER_AFTER"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&storeorderrepo.StoreOrderDTO{},
		&storeorderrepo.OrderItemDTO{},
		&walletrepo.WalletDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	serverMetrics := httpin.NewServerMetrics()
	e.Use(serverMetrics.Middleware())
	e.GET("/metrics", echo.WrapHandler(httpin.MetricsHandler()))

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAcceptStoreOrderCommandHandler(),
		app.CreateRejectStoreOrderCommandHandler(),
		app.CreateCancelStoreOrderCommandHandler(),
		app.CreatePayStoreOrderCommandHandler(),
		app.CreateMarkOutForDeliveryCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateTopUpWalletCommandHandler(),
		app.CreateGetStoreOrdersQueryHandler(),
		app.CreateGetBuyerOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
