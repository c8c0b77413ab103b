package models

import "time"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	Rider       RiderConfig
	RideService RideServiceConfig
	Reconciler  ReconcilerConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// RiderConfig identifies the authenticated rider session this instance serves
type RiderConfig struct {
	ID        string
	AuthToken string // bearer token for the ride service API
}

// RideServiceConfig contains the GraphQL ride service endpoint configuration
type RideServiceConfig struct {
	URL     string
	Timeout int // in seconds
}

// ReconcilerConfig holds the ride-state reconciliation policy knobs.
// The thresholds are deliberately small to bound user-visible staleness.
type ReconcilerConfig struct {
	PollInterval         time.Duration
	ListInterval         time.Duration
	MissingPollThreshold int
	PermissionGrace      time.Duration
	CompletionGrace      time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
