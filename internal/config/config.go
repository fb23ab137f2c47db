package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// PaymentConfig holds the simulated gateway settings
type PaymentConfig struct {
	Delay time.Duration
}

// CacheConfig holds search cache settings. An empty RedisURL selects the
// in-process cache.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// SchedulerConfig holds background task settings
type SchedulerConfig struct {
	Tick        time.Duration
	DigestRRule string
}

// NotificationConfig holds the provider alert channels
type NotificationConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string
	WahaBaseURL  string
	WahaAPIKey   string
}

// Config holds all configuration
type Config struct {
	ServiceName   string
	DefaultLang   string
	MetricsPrefix string
	Server        ServerConfig
	JWT           JWTConfig
	Log           LogConfig
	Payment       PaymentConfig
	Cache         CacheConfig
	Scheduler     SchedulerConfig
	Notification  NotificationConfig
}

// Load loads configuration from an optional .env file and the environment
func Load(serviceName string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional
		fmt.Println("No .env file found, using system environment")
	}

	cfg := &Config{
		ServiceName:   serviceName,
		DefaultLang:   getEnv("DEFAULT_LANG", "ar"),
		MetricsPrefix: getEnv("METRICS_PREFIX", "marhaba"),
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", "defaultsecretkey"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Payment: PaymentConfig{
			Delay: getEnvAsDuration("PAYMENT_DELAY", 2500*time.Millisecond),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			TTL:      getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		},
		Scheduler: SchedulerConfig{
			Tick:        getEnvAsDuration("SCHEDULER_TICK", time.Minute),
			DigestRRule: getEnv("DIGEST_RRULE", "FREQ=DAILY;BYHOUR=8;BYMINUTE=0;BYSECOND=0"),
		},
		Notification: NotificationConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", ""),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASS", ""),
			EmailFrom:    getEnv("EMAIL_FROM", ""),
			WahaBaseURL:  getEnv("WAHA_BASE_URL", ""),
			WahaAPIKey:   getEnv("WAHA_API_KEY", ""),
		},
	}

	if cfg.JWT.ExpirationHours <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be positive, got %d", cfg.JWT.ExpirationHours)
	}
	if cfg.Scheduler.Tick <= 0 {
		return nil, fmt.Errorf("SCHEDULER_TICK must be positive")
	}

	return cfg, nil
}

// LogFields returns the non-secret configuration as zap fields
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("port", c.Server.Port),
		zap.String("default_lang", c.DefaultLang),
		zap.Duration("payment_delay", c.Payment.Delay),
		zap.Bool("redis_cache", c.Cache.RedisURL != ""),
		zap.Duration("scheduler_tick", c.Scheduler.Tick),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
