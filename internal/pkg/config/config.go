package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the dotenv file in local mode, then reads the process
// environment through viper
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" {
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

	v.SetDefault("APP_NAME", "ridehail-admin")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("SERVER_RATE_LIMIT", 0)
	v.SetDefault("SERVER_RATE_LIMIT_PERIOD_SECONDS", 60)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "ridehail")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)
	v.SetDefault("DB_RUN_MIGRATIONS", false)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "ridehail")
	v.SetDefault("MONGO_RATING_COLLECTION", "ratings")
	v.SetDefault("MONGO_TIMEOUT_SECONDS", 10)

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "")
	v.SetDefault("NSQ_RATING_EVENTS_TOPIC", "captain.rating.updated")
	v.SetDefault("NSQ_RECOMPUTE_TOPIC", "captain.rating.recompute")
	v.SetDefault("NSQ_CHANNEL", "ridehail-admin")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("RATING_LOCK_TTL_SECONDS", 10)
	v.SetDefault("RATING_LOCK_WAIT_SECONDS", 5)
	v.SetDefault("RATING_RECOMPUTE_TIMEOUT_MS", 5000)
	v.SetDefault("RATING_RECOMPUTE_RETRIES", 2)

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "")
	v.SetDefault("NEW_RELIC_LICENSE_KEY", "")
	v.SetDefault("NEW_RELIC_FORWARD_LOGS", false)
	return v
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
	configs.Server.RateLimit = v.GetInt("SERVER_RATE_LIMIT")
	configs.Server.RateLimitPeriodSeconds = v.GetInt("SERVER_RATE_LIMIT_PERIOD_SECONDS")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.RunMigrations = v.GetBool("DB_RUN_MIGRATIONS")

	configs.Mongo.URI = v.GetString("MONGO_URI")
	configs.Mongo.Database = v.GetString("MONGO_DATABASE")
	configs.Mongo.RatingCollection = v.GetString("MONGO_RATING_COLLECTION")
	configs.Mongo.TimeoutSeconds = v.GetInt("MONGO_TIMEOUT_SECONDS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.RatingEventsTopic = v.GetString("NSQ_RATING_EVENTS_TOPIC")
	configs.NSQ.RecomputeTopic = v.GetString("NSQ_RECOMPUTE_TOPIC")
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.Rating.LockTTLSeconds = v.GetInt("RATING_LOCK_TTL_SECONDS")
	configs.Rating.LockWaitSeconds = v.GetInt("RATING_LOCK_WAIT_SECONDS")
	configs.Rating.RecomputeTimeoutMS = v.GetInt("RATING_RECOMPUTE_TIMEOUT_MS")
	configs.Rating.RecomputeRetries = v.GetInt("RATING_RECOMPUTE_RETRIES")

	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	return configs
}
