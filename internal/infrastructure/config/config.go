package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	S3        S3Config
	Presign   PresignConfig
	CORS      CORSConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"../frontend"`
	AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// S3Config keeps the B2_* variable names used by existing deployments.
type S3Config struct {
	Endpoint        string `envconfig:"B2_ENDPOINT"`
	Region          string `envconfig:"B2_REGION" default:"us-west-002"`
	Bucket          string `envconfig:"B2_BUCKET" required:"true"`
	AccessKeyID     string `envconfig:"B2_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"B2_APP_KEY" required:"true"`
	ForcePathStyle  bool   `envconfig:"B2_FORCE_PATH_STYLE" default:"true"`
}

type PresignConfig struct {
	Expiry             time.Duration `envconfig:"PRESIGN_EXPIRY" default:"1h"`
	RequireKnownFileID bool          `envconfig:"REQUIRE_KNOWN_FILE_ID" default:"false"`
	FileRegistryTTL    time.Duration `envconfig:"FILE_REGISTRY_TTL" default:"24h"`
}

type CORSConfig struct {
	AutoSetup    bool          `envconfig:"AUTO_SETUP_CORS" default:"true"`
	SetupTimeout time.Duration `envconfig:"CORS_SETUP_TIMEOUT" default:"15s"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"60"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.S3.Bucket == "" || c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "" {
		return fmt.Errorf("B2_BUCKET, B2_KEY_ID and B2_APP_KEY must not be empty")
	}
	if c.Presign.Expiry <= 0 {
		return fmt.Errorf("PRESIGN_EXPIRY must be positive, got %s", c.Presign.Expiry)
	}
	// SigV4 query signatures are capped at seven days.
	if c.Presign.Expiry > 7*24*time.Hour {
		return fmt.Errorf("PRESIGN_EXPIRY must not exceed 168h, got %s", c.Presign.Expiry)
	}
	if c.Presign.RequireKnownFileID && !c.Redis.Enabled {
		return fmt.Errorf("REQUIRE_KNOWN_FILE_ID needs REDIS_ENABLED")
	}
	if c.RateLimit.Enabled && !c.Redis.Enabled {
		return fmt.Errorf("RATE_LIMIT_ENABLED needs REDIS_ENABLED")
	}
	return nil
}
