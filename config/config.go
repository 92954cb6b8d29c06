package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Dashboard specifics
	Backoffice BackofficeConfig
	Cache      CacheConfig
	Notice     NoticeConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig limits form submissions per client IP.
type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// BackofficeConfig points at the REST service that owns barang, pelanggan and penjualan.
type BackofficeConfig struct {
	BaseURL string
	Timeout time.Duration // 0 keeps the transport default
}

type CacheConfig struct {
	Enabled bool
	Size    int
	TTL     time.Duration
}

type NoticeConfig struct {
	DismissAfter time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Backoffice REST service
	cfg.Backoffice.BaseURL = strings.TrimRight(viper.GetString("backoffice.base_url"), "/")
	if baseURL := viper.GetString("backoffice_url"); baseURL != "" {
		cfg.Backoffice.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.Backoffice.Timeout = viper.GetDuration("backoffice.timeout")

	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.Notice.DismissAfter = viper.GetDuration("notice.dismiss_after")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("backoffice.base_url", "http://127.0.0.1:8000/api")
	viper.SetDefault("backoffice.timeout", "0s")

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.size", 16)
	viper.SetDefault("cache.ttl", "30s")

	viper.SetDefault("notice.dismiss_after", "3s")
}

func validate(cfg *Config) error {
	if cfg.Backoffice.BaseURL == "" {
		return fmt.Errorf("backoffice.base_url is required")
	}
	if cfg.Backoffice.Timeout < 0 {
		return fmt.Errorf("backoffice.timeout must not be negative")
	}
	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive when the cache is enabled")
	}
	if cfg.Notice.DismissAfter <= 0 {
		return fmt.Errorf("notice.dismiss_after must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}

// splitList splits comma separated values since viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
