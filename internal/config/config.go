package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	EndpointURL      string        `mapstructure:"sentiment_endpoint_url"`
	ConnectTimeoutMs int64         `mapstructure:"sentiment_connect_timeout_ms"`
	RequestTimeoutMs int64         `mapstructure:"sentiment_request_timeout_ms"`
	EscapeMode       string        `mapstructure:"sentiment_escape_mode"`
	ConnectTimeout   time.Duration `mapstructure:"-"`
	RequestTimeout   time.Duration `mapstructure:"-"`

	SamplesFile    string `mapstructure:"samples_file"`
	PublishersFile string `mapstructure:"publishers_file"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and the optional configs/.env file.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "sentiment-demo")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("sentiment_endpoint_url", "http://localhost:5000/api/spring-sentiment")
	v.SetDefault("sentiment_connect_timeout_ms", 10000)
	v.SetDefault("sentiment_request_timeout_ms", 0) // falls back to the connect timeout
	v.SetDefault("sentiment_escape_mode", "json")
	v.SetDefault("samples_file", "")
	v.SetDefault("publishers_file", "")
	v.SetDefault("storage_type", "none")
	v.SetDefault("bbolt_path", "./data/published.db")
	v.SetDefault("storage_ttl_seconds", int64((24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((6*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.EndpointURL = strings.TrimSpace(cfg.EndpointURL)
	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("sentiment_endpoint_url must not be empty")
	}

	if cfg.ConnectTimeoutMs <= 0 {
		return nil, fmt.Errorf("invalid sentiment_connect_timeout_ms (must be positive milliseconds)")
	}
	if cfg.RequestTimeoutMs < 0 {
		return nil, fmt.Errorf("invalid sentiment_request_timeout_ms (must not be negative)")
	}
	cfg.ConnectTimeout = time.Duration(cfg.ConnectTimeoutMs) * time.Millisecond
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutMs) * time.Millisecond

	cfg.EscapeMode = strings.ToLower(strings.TrimSpace(cfg.EscapeMode))
	switch cfg.EscapeMode {
	case "json", "quotes":
	default:
		return nil, fmt.Errorf("invalid sentiment_escape_mode %q (expected json or quotes)", cfg.EscapeMode)
	}

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}
