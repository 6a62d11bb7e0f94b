package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Rides    RidesConfig
	Wallet   WalletConfig
	Users    UsersConfig
	Stripe   StripeConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration, timeouts in seconds
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address notification events are published to
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig contains bearer token verification settings
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains APM agent settings
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// RidesConfig holds ride lifecycle, dispatch and tracking settings.
// Durations are in milliseconds unless the name says otherwise.
type RidesConfig struct {
	CatalogPath            string
	AssignmentDelayMs      int
	AssignmentTimeoutMs    int
	SearchRadiusKm         float64
	CommissionRate         float64
	LocationTTLSeconds     int
	MessageTTLSeconds      int
	CallMaxDurationSeconds int
	ShareLinkTTLMinutes    int
	ShareBaseURL           string
	AutoResponderEnabled   bool
	AutoResponderDelayMs   int
}

// WalletConfig holds wallet and funding settings
type WalletConfig struct {
	Currency         string
	FundingProvider  string // simulated or stripe
	FundingDelayMs   int
	FundingTimeoutMs int
}

// UsersConfig holds profile and location settings
type UsersConfig struct {
	NearbyRadiusKm float64
	PageBaseURL    string
}

// StripeConfig holds the secret key used by the Stripe funding gateway
type StripeConfig struct {
	SecretKey string
}
