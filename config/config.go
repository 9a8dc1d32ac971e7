// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	AppName        string      `mapstructure:"APP_NAME" yaml:"app_name"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// APIKey, when set, is required as X-API-Key on event create/delete.
	// Empty disables the access-control boundary entirely.
	APIKey string `mapstructure:"API_KEY" yaml:"api_key"`
}

// MongoConfig holds MongoDB connection details for the primary feedback store.
type MongoConfig struct {
	URI                   string `mapstructure:"URI" yaml:"uri"`
	Database              string `mapstructure:"DATABASE" yaml:"database"`
	Collection            string `mapstructure:"COLLECTION" yaml:"collection"`
	ConnectTimeoutSeconds int    `mapstructure:"CONNECT_TIMEOUT_SECONDS" yaml:"connect_timeout_seconds"`
	// AllowDegraded controls the StorageUnavailable policy at startup:
	// true  -> fall back to the in-memory store when Mongo is unreachable
	// false -> fail startup when Mongo is unreachable
	AllowDegraded bool `mapstructure:"ALLOW_DEGRADED" yaml:"allow_degraded"`
}

// RedisConfig holds Redis connection details for the rate limiter.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
}

// SentimentConfig holds tuning knobs for the sentiment classifier.
type SentimentConfig struct {
	// CacheSize bounds the classifier memoization cache (entries).
	// Zero disables memoization.
	CacheSize int `mapstructure:"CACHE_SIZE" yaml:"cache_size"`
}

// RateLimitConfig holds configuration for rate limiting the submission endpoint.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"ENABLED" yaml:"enabled"`
	RequestsPerMinute int  `mapstructure:"REQUESTS_PER_MINUTE" yaml:"requests_per_minute"`
	WindowSeconds     int  `mapstructure:"WINDOW_SECONDS" yaml:"window_seconds"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server    ServerConfig    `mapstructure:"SERVER" yaml:"server"`
	Mongo     MongoConfig     `mapstructure:"MONGO" yaml:"mongo"`
	Redis     RedisConfig     `mapstructure:"REDIS" yaml:"redis"`
	Sentiment SentimentConfig `mapstructure:"SENTIMENT" yaml:"sentiment"`
	RateLimit RateLimitConfig `mapstructure:"RATE_LIMIT" yaml:"rate_limit"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.APP_NAME", "Sentiment Analysis WebApp")
	v.SetDefault("SERVER.VERSION", "v1")
	v.SetDefault("SERVER.API_KEY", "")
	v.SetDefault("MONGO.URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO.DATABASE", "feedbackDB")
	v.SetDefault("MONGO.COLLECTION", "feedback")
	v.SetDefault("MONGO.CONNECT_TIMEOUT_SECONDS", 5)
	v.SetDefault("MONGO.ALLOW_DEGRADED", true)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("SENTIMENT.CACHE_SIZE", 1024)
	v.SetDefault("RATE_LIMIT.ENABLED", false)
	v.SetDefault("RATE_LIMIT.REQUESTS_PER_MINUTE", 60)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 60)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.APP_NAME", "APP_NAME"},
		{"SERVER.VERSION", "API_VERSION"},
		{"SERVER.API_KEY", "API_KEY"},
		// Mongo config
		{"MONGO.URI", "MONGO_URI"},
		{"MONGO.DATABASE", "MONGO_DATABASE"},
		{"MONGO.COLLECTION", "MONGO_COLLECTION"},
		{"MONGO.CONNECT_TIMEOUT_SECONDS", "MONGO_CONNECT_TIMEOUT_SECONDS"},
		{"MONGO.ALLOW_DEGRADED", "MONGO_ALLOW_DEGRADED"},
		// Redis config
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		// Sentiment config
		{"SENTIMENT.CACHE_SIZE", "SENTIMENT_CACHE_SIZE"},
		// Rate limit config
		{"RATE_LIMIT.ENABLED", "RATE_LIMIT_ENABLED"},
		{"RATE_LIMIT.REQUESTS_PER_MINUTE", "RATE_LIMIT_REQUESTS_PER_MINUTE"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"mongo_uri", logger.MaskConnectionString(cfg.Mongo.URI),
		"mongo_database", cfg.Mongo.Database,
		"allow_degraded", cfg.Mongo.AllowDegraded,
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"api_key", logger.MaskSensitiveString(cfg.Server.APIKey, 2, 2),
	)

	return &cfg, nil
}

// Validate checks the configuration for inconsistent or missing values.
func (c *Config) Validate() error {
	if c.Server.Environment != EnvDevelopment && c.Server.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s", c.Server.Environment)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo URI must not be empty")
	}
	if c.Mongo.Database == "" || c.Mongo.Collection == "" {
		return fmt.Errorf("mongo database and collection must not be empty")
	}
	if c.Sentiment.CacheSize < 0 {
		return fmt.Errorf("sentiment cache size must not be negative")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate limit requests per minute must be positive")
		}
		if c.Redis.Address == "" {
			return fmt.Errorf("rate limiting requires a redis address")
		}
	}
	return nil
}
