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
	"github.com/piresc/pullup/internal/pkg/models"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
	nrpkg "github.com/piresc/pullup/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/pullup/internal/pkg/nsq"
	"github.com/piresc/pullup/internal/pkg/server"
	wspkg "github.com/piresc/pullup/internal/pkg/websocket"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/rides/callsession"
	"github.com/piresc/pullup/services/rides/dispatch"
	"github.com/piresc/pullup/services/rides/fare"
	"github.com/piresc/pullup/services/rides/gateway"
	"github.com/piresc/pullup/services/rides/handler"
	httpHandler "github.com/piresc/pullup/services/rides/handler/http"
	natsHandler "github.com/piresc/pullup/services/rides/handler/nats"
	wsHandler "github.com/piresc/pullup/services/rides/handler/websocket"
	"github.com/piresc/pullup/services/rides/repository"
	"github.com/piresc/pullup/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
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

	catalog, err := fare.LoadCatalog(configs.Rides.CatalogPath)
	if err != nil {
		zapLogger.Fatal("Failed to load vehicle class catalog", logger.Err(err))
	}

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

	// Notification events go to nsqd when enabled, otherwise to the log
	var notifier nsqpkg.Publisher = nsqpkg.LogPublisher{}
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		notifier = nsqProducer
	}

	// Initialize repositories
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB(), redisClient)
	trackingRepo := repository.NewTrackingRepository(configs, redisClient)

	// Initialize gateway
	rideGW := gateway.NewRideGW(natsClient, notifier)

	// Background workers
	simulator := dispatch.NewSimulator(
		time.Duration(configs.Rides.AssignmentDelayMs)*time.Millisecond,
		time.Duration(configs.Rides.AssignmentTimeoutMs)*time.Millisecond,
	)
	calls := callsession.NewManager(time.Duration(configs.Rides.CallMaxDurationSeconds) * time.Second)
	calls.OnEnd(func(session models.CallSession) {
		logger.Info("Call ended",
			logger.String("ride_id", session.RideID.String()),
			logger.Int("seconds", session.Seconds))
	})

	var responder *usecase.AutoResponder
	if configs.Rides.AutoResponderEnabled {
		responder = usecase.NewAutoResponder(
			time.Duration(configs.Rides.AutoResponderDelayMs)*time.Millisecond,
			catalog.AutoResponses, trackingRepo, rideGW)
	}

	appState := appstate.NewStore(appstate.NewRedisPersister(redisClient))

	// Initialize usecases
	rideUC := usecase.NewRideUC(configs, catalog, rideRepo, rideGW, simulator, appState)
	trackingUC := usecase.NewTrackingUC(configs, catalog, rideRepo, trackingRepo, rideGW, calls, responder)

	// Initialize handlers
	manager := wspkg.NewManager(configs.JWT, "rides")
	ridesHandler := handler.NewHandler(
		httpHandler.NewRideHandler(rideUC),
		httpHandler.NewTrackingHandler(trackingUC),
		wsHandler.NewRideFeedHandler(manager, trackingUC),
		natsHandler.NewRidesHandler(trackingUC, manager, natsClient, configs, nrApp),
		configs,
	)

	if err := ridesHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	// Panic recovery first
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

	ridesHandler.RegisterRoutes(e)

	// Cleanup runs in reverse order of registration
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("nats", func(context.Context) error { natsClient.Close(); return nil })
	if nsqProducer != nil {
		shutdown.Register("nsq", func(context.Context) error { nsqProducer.Stop(); return nil })
	}
	shutdown.Register("nats-consumers", func(context.Context) error { ridesHandler.Close(); return nil })
	shutdown.Register("workers", func(context.Context) error {
		simulator.Stop()
		calls.Stop()
		responder.Stop()
		return nil
	})

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
