package main

import (
	"fmt"
	"log/slog"
	"os"

	"rapidxcel/cmd"
	httpadapter "rapidxcel/internal/adapters/in/http"
	"rapidxcel/internal/adapters/out/postgres/orderrepo"
	"rapidxcel/internal/adapters/out/postgres/reservationrepo"
	"rapidxcel/internal/adapters/out/postgres/stockrepo"
	"rapidxcel/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	migrateDatabase(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateReleaseExpiredReservationsCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		DBHost:                envOrDefault("DB_HOST", "localhost"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                envOrDefault("DB_USER", "postgres"),
		DBPassword:            envOrDefault("DB_PASSWORD", "postgres"),
		DBName:                envOrDefault("DB_NAME", "rapidxcel"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		ServiceablePinCodes:   envOrDefault("SERVICEABLE_PIN_CODES", "62701,90001,10001,110001,500001,SW1A 1AA"),
		ShippingRatePerUnit:   envOrDefault("SHIPPING_RATE_PER_UNIT", "10"),
		ReservationTTLMinutes: envOrDefault("RESERVATION_TTL_MINUTES", "30"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&stockrepo.StockDTO{},
		&orderrepo.OrderDTO{},
		&reservationrepo.ReservationDTO{},
		&reservationrepo.ReservationItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetStocksQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
