package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/appstate"
	"github.com/piresc/pullup/internal/pkg/config"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/health"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/metrics"
	"github.com/piresc/pullup/internal/pkg/middleware"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
	nrpkg "github.com/piresc/pullup/internal/pkg/newrelic"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/piresc/pullup/internal/pkg/server"
	wspkg "github.com/piresc/pullup/internal/pkg/websocket"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/users/gateway"
	"github.com/piresc/pullup/services/users/handler"
	httpHandler "github.com/piresc/pullup/services/users/handler/http"
	wsHandler "github.com/piresc/pullup/services/users/handler/websocket"
	"github.com/piresc/pullup/services/users/repository"
	"github.com/piresc/pullup/services/users/usecase"
)

func main() {
	appName := "users-service"
	configPath := "config/users.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Row changes are broadcast over NATS so every instance can serve subscribers
	hub := realtime.NewHub(natsClient)

	userRepo := repository.NewUserRepository(configs, postgresClient.GetDB(), redisClient)
	userGW := gateway.NewUserGW(hub)
	appState := appstate.NewStore(appstate.NewRedisPersister(redisClient))

	userUC := usecase.NewUserUC(configs, userRepo, userGW, appState)
	realtimeUC := usecase.NewRealtimeUC(userGW)

	manager := wspkg.NewManager(configs.JWT, "realtime")
	usersHandler := handler.NewHandler(
		httpHandler.NewUserHandler(userUC, configs),
		wsHandler.NewRealtimeHandler(manager, realtimeUC),
		configs,
	)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.MetricsMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	healthService.AddChecker("nats", health.ConnectionChecker("nats", natsClient.IsConnected))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", metrics.Handler())

	usersHandler.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("nats", func(context.Context) error { natsClient.Close(); return nil })
	shutdown.Register("realtime-hub", func(context.Context) error { hub.Close(); return nil })

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(context.Background()); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = shutdown.Shutdown(ctx)

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}
	zapLogger.Info("Server exiting gracefully")
}
