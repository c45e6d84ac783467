package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	AppEnv            string        `env:"APP_ENV" env-default:"dev"`
	HTTPAddr          string        `env:"HTTP_ADDR" env-default:":8080"`
	DatabaseURL       string        `env:"DATABASE_URL" env-default:"trainees.db"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" env-default:"5s"`
	CORSOrigins       []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:","`
	// TrustedProxies are the IPs/CIDRs whose X-Forwarded-For is believed.
	// Empty means the peer address is the client.
	TrustedProxies    []string      `env:"TRUSTED_PROXIES" env-separator:","`

	Upload    UploadConfig
	S3        S3Config
	RateLimit RateLimitConfig
}

type UploadConfig struct {
	Backend   string `env:"STORAGE_BACKEND" env-default:"local"`
	Dir       string `env:"UPLOAD_DIR" env-default:"./uploads"`
	URLPrefix string `env:"UPLOAD_URL_PREFIX" env-default:"/uploads"`
	MaxBytes  int64  `env:"MAX_UPLOAD_BYTES" env-default:"10485760"`
}

type S3Config struct {
	Bucket          string        `env:"S3_BUCKET"`
	Region          string        `env:"S3_REGION" env-default:"us-east-1"`
	Endpoint        string        `env:"S3_ENDPOINT"`
	AccessKeyID     string        `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"S3_SECRET_ACCESS_KEY"`
	KeyPrefix       string        `env:"S3_KEY_PREFIX" env-default:"uploads/"`
	PresignTTL      time.Duration `env:"S3_PRESIGN_TTL" env-default:"15m"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"0"`
	Burst int     `env:"RATE_LIMIT_BURST" env-default:"20"`
}

// Load reads an optional .env file (path from ENV_FILE, default ".env") and
// then the process environment.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	switch cfg.Upload.Backend {
	case StorageLocal:
		if strings.TrimSpace(cfg.Upload.Dir) == "" {
			return fmt.Errorf("UPLOAD_DIR must not be empty")
		}
	case StorageS3:
		if strings.TrimSpace(cfg.S3.Bucket) == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND=s3")
		}
		if cfg.S3.PresignTTL <= 0 {
			return fmt.Errorf("S3_PRESIGN_TTL must be > 0")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: local, s3")
	}

	if !strings.HasPrefix(cfg.Upload.URLPrefix, "/") {
		return fmt.Errorf("UPLOAD_URL_PREFIX must start with /")
	}
	cfg.Upload.URLPrefix = strings.TrimSuffix(cfg.Upload.URLPrefix, "/")
	if cfg.Upload.URLPrefix == "" {
		return fmt.Errorf("UPLOAD_URL_PREFIX must not be /")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be > 0")
	}
	if cfg.RateLimit.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be > 0 when rate limiting is on")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("READ_HEADER_TIMEOUT must be > 0")
	}
	for _, p := range cfg.TrustedProxies {
		if !validProxy(p) {
			return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
		}
	}

	if isProdLike(cfg.AppEnv) && !strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		return fmt.Errorf("in prod/release DATABASE_URL must point at PostgreSQL")
	}
	return nil
}

func validProxy(p string) bool {
	p = strings.TrimSpace(p)
	if strings.Contains(p, "/") {
		_, _, err := net.ParseCIDR(p)
		return err == nil
	}
	return net.ParseIP(p) != nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}
