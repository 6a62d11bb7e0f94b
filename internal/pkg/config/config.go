package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the .env file at configPath in local mode and reads
// the environment into models.Config.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 15)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_ENABLED", false)

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "pullup")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("NEW_RELIC_ENABLED", false)

	v.SetDefault("RIDES_CATALOG_PATH", "")
	v.SetDefault("RIDES_ASSIGNMENT_DELAY_MS", 3000)
	v.SetDefault("RIDES_ASSIGNMENT_TIMEOUT_MS", 5000)
	v.SetDefault("RIDES_SEARCH_RADIUS_KM", 5.0)
	v.SetDefault("RIDES_COMMISSION_RATE", 0.20)
	v.SetDefault("RIDES_LOCATION_TTL_SECONDS", 300)
	v.SetDefault("RIDES_MESSAGE_TTL_SECONDS", 86400)
	v.SetDefault("RIDES_CALL_MAX_DURATION_SECONDS", 30)
	v.SetDefault("RIDES_SHARE_LINK_TTL_MINUTES", 120)
	v.SetDefault("RIDES_SHARE_BASE_URL", "http://localhost:3000/shared")
	v.SetDefault("RIDES_AUTO_RESPONDER_ENABLED", false)
	v.SetDefault("RIDES_AUTO_RESPONDER_DELAY_MS", 2000)

	v.SetDefault("WALLET_CURRENCY", "USD")
	v.SetDefault("WALLET_FUNDING_PROVIDER", "simulated")
	v.SetDefault("WALLET_FUNDING_DELAY_MS", 1500)
	v.SetDefault("WALLET_FUNDING_TIMEOUT_MS", 10000)

	v.SetDefault("USERS_NEARBY_RADIUS_KM", 5.0)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	configs.Rides.CatalogPath = v.GetString("RIDES_CATALOG_PATH")
	configs.Rides.AssignmentDelayMs = v.GetInt("RIDES_ASSIGNMENT_DELAY_MS")
	configs.Rides.AssignmentTimeoutMs = v.GetInt("RIDES_ASSIGNMENT_TIMEOUT_MS")
	configs.Rides.SearchRadiusKm = v.GetFloat64("RIDES_SEARCH_RADIUS_KM")
	configs.Rides.CommissionRate = v.GetFloat64("RIDES_COMMISSION_RATE")
	configs.Rides.LocationTTLSeconds = v.GetInt("RIDES_LOCATION_TTL_SECONDS")
	configs.Rides.MessageTTLSeconds = v.GetInt("RIDES_MESSAGE_TTL_SECONDS")
	configs.Rides.CallMaxDurationSeconds = v.GetInt("RIDES_CALL_MAX_DURATION_SECONDS")
	configs.Rides.ShareLinkTTLMinutes = v.GetInt("RIDES_SHARE_LINK_TTL_MINUTES")
	configs.Rides.ShareBaseURL = v.GetString("RIDES_SHARE_BASE_URL")
	configs.Rides.AutoResponderEnabled = v.GetBool("RIDES_AUTO_RESPONDER_ENABLED")
	configs.Rides.AutoResponderDelayMs = v.GetInt("RIDES_AUTO_RESPONDER_DELAY_MS")

	configs.Wallet.Currency = v.GetString("WALLET_CURRENCY")
	configs.Wallet.FundingProvider = v.GetString("WALLET_FUNDING_PROVIDER")
	configs.Wallet.FundingDelayMs = v.GetInt("WALLET_FUNDING_DELAY_MS")
	configs.Wallet.FundingTimeoutMs = v.GetInt("WALLET_FUNDING_TIMEOUT_MS")

	configs.Users.NearbyRadiusKm = v.GetFloat64("USERS_NEARBY_RADIUS_KM")
	configs.Users.PageBaseURL = v.GetString("USERS_PAGE_BASE_URL")

	configs.Stripe.SecretKey = v.GetString("STRIPE_SECRET_KEY")

	return configs
}
