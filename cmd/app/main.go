package main

import (
	"fmt"
	"log/slog"
	"os"

	"watertanker/cmd"
	"watertanker/internal/adapters/out/postgres/customerrepo"
	"watertanker/internal/adapters/out/postgres/driverrepo"
	"watertanker/internal/adapters/out/postgres/feedbackrepo"
	"watertanker/internal/adapters/out/postgres/orderrepo"
	"watertanker/internal/adapters/out/postgres/paymentrepo"
	"watertanker/internal/adapters/out/postgres/recyclingrepo"
	"watertanker/internal/adapters/out/postgres/staffrepo"
	"watertanker/internal/adapters/out/postgres/tokenrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := root.NewJobManager(configs.DenylistEvictionSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:                goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:                goDotEnvVariable("JWT_ISSUER"),
		AccessTokenTTL:           goDotEnvVariable("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:          goDotEnvVariable("REFRESH_TOKEN_TTL"),
		DenylistEvictionSchedule: goDotEnvVariable("DENYLIST_EVICTION_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&staffrepo.StaffDTO{},
		&staffrepo.SuperAdminDTO{},
		&paymentrepo.PaymentDTO{},
		&feedbackrepo.FeedbackDTO{},
		&recyclingrepo.SubmissionDTO{},
		&tokenrepo.DeniedTokenDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	root.NewHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
