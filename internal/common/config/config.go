// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	Search   SearchConfig   `mapstructure:"search"`
	Browse   BrowseConfig   `mapstructure:"browse"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// EndpointConfig describes the remote player listing API.
type EndpointConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

func (e EndpointConfig) Timeout() time.Duration {
	return time.Duration(e.RequestTimeout) * time.Millisecond
}

// SearchConfig tunes the keystroke debounce window.
type SearchConfig struct {
	DebounceMillis int `mapstructure:"debounce_ms"`
}

func (s SearchConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMillis) * time.Millisecond
}

// BrowseConfig carries the initial pagination window.
type BrowseConfig struct {
	ItemsPerPage int `mapstructure:"items_per_page"`
}

type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Address    string `mapstructure:"address"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type MetricsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ListenAddress string `mapstructure:"listen_address"`
}

type TracingConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Endpoint.BaseURL == "" {
		return fmt.Errorf("endpoint.base_url is required")
	}
	if cfg.Endpoint.RequestTimeout <= 0 {
		return fmt.Errorf("endpoint.request_timeout must be positive")
	}
	if cfg.Search.DebounceMillis < 0 {
		return fmt.Errorf("search.debounce_ms must not be negative")
	}
	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache is enabled")
	}
	return nil
}
