package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
	Email EmailConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=business_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type EmailConfig struct {
	// Mock short-circuits delivery to a logging sender that writes the
	// attachment to disk. Default on so local runs never hit SES.
	Mock      bool   `env:"EMAIL_MOCK,       default=true"`
	Region    string `env:"EMAIL_AWS_REGION, default=us-east-1"`
	Sender    string `env:"EMAIL_SENDER,     default=no-reply@localhost"`
	MockDir   string `env:"EMAIL_MOCK_DIR,   default=/tmp"`
	QueueSize int    `env:"EMAIL_QUEUE_SIZE, default=64"`
	Workers   int    `env:"EMAIL_WORKERS,    default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the process must not start with. An
// absent signing secret would make every issued token forgeable with
// an empty key, so it is fatal here rather than a runtime surprise.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	return nil
}
