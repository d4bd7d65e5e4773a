package main

import (
	"context"
	"log"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/config"
	"github.com/clinicnet/clinicnet/internal/pkg/database"
	"github.com/clinicnet/clinicnet/internal/pkg/health"
	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/metrics"
	"github.com/clinicnet/clinicnet/internal/pkg/middleware"
	nrpkg "github.com/clinicnet/clinicnet/internal/pkg/newrelic"
	nsqpkg "github.com/clinicnet/clinicnet/internal/pkg/nsq"
	"github.com/clinicnet/clinicnet/internal/pkg/retry"
	"github.com/clinicnet/clinicnet/internal/pkg/server"
	"github.com/clinicnet/clinicnet/services/auth/gateway"
	"github.com/clinicnet/clinicnet/services/auth/handler"
	"github.com/clinicnet/clinicnet/services/auth/repository"
	"github.com/clinicnet/clinicnet/services/auth/usecase"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
)

func main() {
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/auth.env"))
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	shutdown := server.NewShutdownManager(zapLogger)
	retrier := retry.New(retry.DefaultConfig(), zapLogger)
	ctx := context.Background()

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	if err := retrier.Execute(ctx, "postgres", func(ctx context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	// Initialize Redis client
	var redisClient *database.RedisClient
	if err := retrier.Execute(ctx, "redis", func(ctx context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// Initialize NSQ producer for audit events
	var publisher gateway.Publisher
	if configs.NSQ.Enabled {
		var producer *nsqpkg.Producer
		if err := retrier.Execute(ctx, "nsq", func(ctx context.Context) error {
			producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
			return err
		}); err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		publisher = producer
		shutdown.Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepo(postgresClient.GetDB())
	staffRepo := repository.NewStaffRepo(postgresClient.GetDB())

	// Initialize gateways
	smsDispatcher := gateway.NewDispatcher(gateway.NewSMSGateway(configs, zapLogger), configs)
	events := gateway.NewEventPublisher(publisher)

	// Initialize usecases
	patientUC := usecase.NewPatientAuthUC(patientRepo, redisClient, smsDispatcher, events, configs)
	staffUC := usecase.NewStaffAuthUC(staffRepo, events, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.EchoMiddleware())

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)
	e.GET("/metrics", metrics.Handler())

	// Register service routes
	handler.NewHandler(patientUC, staffUC, redisClient, configs).RegisterRoutes(e)

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	shutdown.Register("logger", func(context.Context) error { return zapLogger.Close() })

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
