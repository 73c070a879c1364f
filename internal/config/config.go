package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Push      PushConfig
	Scheduler SchedulerConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// PushConfig holds web-push transport settings
type PushConfig struct {
	// Subscriber is the contact address sent to push services in the
	// VAPID JWT (mailto: is added by the transport library).
	Subscriber string
	// TTLSeconds is how long push services hold an undelivered message.
	TTLSeconds int
	// SendTimeout bounds a single push attempt.
	SendTimeout time.Duration
}

// SchedulerConfig holds campaign scheduler settings
type SchedulerConfig struct {
	// PollInterval is the period of the due-campaign poll loop.
	PollInterval time.Duration
	// PollLimit caps how many due campaigns one poll tick will consider.
	PollLimit int
	// DispatchBatchSize bounds concurrent push sends within one campaign.
	DispatchBatchSize int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// RedisConfig holds Redis settings for rate limiting
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	// PublicRPM is the per-client request budget for public endpoints.
	PublicRPM int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Push transport configuration
	if cfg.Push.Subscriber, err = requireEnv("PUSH_SUBSCRIBER_EMAIL"); err != nil {
		return nil, err
	}
	if cfg.Push.TTLSeconds, err = intEnvWithDefault("PUSH_TTL_SECONDS", 86400); err != nil {
		return nil, err
	}
	pushTimeoutSecs, err := intEnvWithDefault("PUSH_SEND_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.Push.SendTimeout = time.Duration(pushTimeoutSecs) * time.Second

	// Scheduler configuration
	pollSecs, err := intEnvWithDefault("SCHEDULER_POLL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.Scheduler.PollInterval = time.Duration(pollSecs) * time.Second
	if cfg.Scheduler.PollLimit, err = intEnvWithDefault("SCHEDULER_POLL_LIMIT", 50); err != nil {
		return nil, err
	}
	if cfg.Scheduler.DispatchBatchSize, err = intEnvWithDefault("DISPATCH_BATCH_SIZE", 50); err != nil {
		return nil, err
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "campaign-events")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		if cfg.Redis.Port, err = intEnvWithDefault("REDIS_PORT", 6379); err != nil {
			return nil, err
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		if cfg.Redis.DB, err = intEnvWithDefault("REDIS_DB", 0); err != nil {
			return nil, err
		}
	}
	if cfg.Redis.PublicRPM, err = intEnvWithDefault("PUBLIC_RATE_LIMIT_RPM", 120); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// intEnvWithDefault retrieves an integer environment variable or returns a default
func intEnvWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
