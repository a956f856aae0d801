package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
	Rating   RatingConfig
	NewRelic NewRelicConfig
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

	// RateLimit requests per RateLimitPeriod per client, 0 disables limiting
	RateLimit              int
	RateLimitPeriodSeconds int
}

// DatabaseConfig contains relational store connection configuration
type DatabaseConfig struct {
	Driver        string
	Host          string
	Port          int
	Username      string
	Password      string
	Database      string
	SSLMode       string
	MaxConns      int
	IdleConns     int
	RunMigrations bool
}

// MongoConfig contains rating store connection configuration
type MongoConfig struct {
	URI              string
	Database         string
	RatingCollection string
	TimeoutSeconds   int
}

// RedisConfig contains Redis connection configuration.
// An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration.
// An empty Address disables event publishing.
type NSQConfig struct {
	Address           string
	RatingEventsTopic string
	RecomputeTopic    string
	Channel           string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// RatingConfig tunes captain rating aggregation
type RatingConfig struct {
	LockTTLSeconds     int
	LockWaitSeconds    int
	RecomputeTimeoutMS int

	// RecomputeRetries extra in-request attempts before queueing a recompute
	RecomputeRetries int
}

// NewRelicConfig controls the optional APM agent
type NewRelicConfig struct {
	Enabled     bool
	AppName     string
	LicenseKey  string
	ForwardLogs bool
}
