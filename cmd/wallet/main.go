package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/config"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/health"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/metrics"
	"github.com/piresc/pullup/internal/pkg/middleware"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
	nrpkg "github.com/piresc/pullup/internal/pkg/newrelic"
	"github.com/piresc/pullup/internal/pkg/server"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/wallet"
	"github.com/piresc/pullup/services/wallet/gateway"
	"github.com/piresc/pullup/services/wallet/handler"
	httpHandler "github.com/piresc/pullup/services/wallet/handler/http"
	natsHandler "github.com/piresc/pullup/services/wallet/handler/nats"
	"github.com/piresc/pullup/services/wallet/repository"
	"github.com/piresc/pullup/services/wallet/usecase"
)

func main() {
	appName := "wallet-service"
	configPath := "config/wallet.env"
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
		logger.String("funding_provider", configs.Wallet.FundingProvider),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	walletRepo := repository.NewWalletRepository(configs, postgresClient.GetDB())
	walletUC := usecase.NewWalletUC(configs, walletRepo, fundingGateway(configs.Wallet.FundingProvider, configs.Stripe.SecretKey, configs.Wallet.FundingDelayMs))

	walletHandler := handler.NewHandler(
		httpHandler.NewWalletHandler(walletUC),
		natsHandler.NewSettlementHandler(walletUC, natsClient, nrApp),
		configs,
	)
	if err := walletHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

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
	healthService.AddChecker("nats", health.ConnectionChecker("nats", natsClient.IsConnected))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", metrics.Handler())

	walletHandler.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("nats", func(context.Context) error { natsClient.Close(); return nil })
	shutdown.Register("nats-consumers", func(context.Context) error { walletHandler.Close(); return nil })

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

// fundingGateway picks the card processor used for wallet top-ups
func fundingGateway(provider, stripeKey string, delayMs int) wallet.FundingGateway {
	if provider == "stripe" {
		if stripeKey == "" {
			logger.Fatal("WALLET_FUNDING_PROVIDER=stripe requires STRIPE_SECRET_KEY")
		}
		return gateway.NewStripeGateway(stripeKey, nil)
	}
	return gateway.NewSimulatedGateway(time.Duration(delayMs) * time.Millisecond)
}
