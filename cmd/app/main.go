package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cardmarket/cmd"
	"cardmarket/internal/adapters/out/postgres/intermediaryrepo"
	"cardmarket/internal/adapters/out/postgres/purchaserepo"
	"cardmarket/internal/adapters/out/postgres/shipmentrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer app.Close()

	if jobManager := app.CreateJobManager(); jobManager != nil {
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	mailWorker, err := app.CreateMailWorker(configs)
	if err != nil {
		log.Fatalf("Failed to create mail worker: %v", err)
	}
	if mailWorker != nil {
		defer mailWorker.Close()
		go func() {
			if err := mailWorker.Run(context.Background()); err != nil {
				logger.Error("mail worker stopped", "error", err)
			}
		}()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaShipmentEventsTopic: goDotEnvVariable("KAFKA_SHIPMENT_EVENTS_TOPIC"),

		RabbitMQURL:           goDotEnvVariable("RABBITMQ_URL"),
		NotificationQueueName: goDotEnvVariable("NOTIFICATION_QUEUE"),

		SendGridAPIKey:    goDotEnvVariable("SENDGRID_API_KEY"),
		SendGridFromEmail: goDotEnvVariable("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  goDotEnvVariable("SENDGRID_FROM_NAME"),

		JWTSecret:   goDotEnvVariable("JWT_SECRET"),
		JWTTokenTTL: goDotEnvVariable("JWT_TOKEN_TTL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&purchaserepo.PurchaseDTO{},
		&purchaserepo.LineItemDTO{},
		&intermediaryrepo.IntermediaryDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
