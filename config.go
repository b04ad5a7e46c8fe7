package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven client settings. The backend origin is
// the single required piece of configuration; everything else has defaults.
type Config struct {
	// BaseURL is the backend origin (IDEAHUB_BASE_URL). Absence is logged
	// as a configuration error but does not block startup: requests then
	// resolve against a relative path.
	BaseURL string `envconfig:"BASE_URL"`
	// HTTPTimeout bounds each request (IDEAHUB_HTTP_TIMEOUT).
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	// BearerToken is the optional secondary credential
	// (IDEAHUB_BEARER_TOKEN).
	BearerToken string `envconfig:"BEARER_TOKEN"`
}

// LoadConfig reads IDEAHUB_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ideahub", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from environment configuration. Additional
// options override what the environment provided.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	base := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.BearerToken != "" {
		base = append(base, WithBearerToken(cfg.BearerToken))
	}
	return New(cfg.BaseURL, append(base, opts...)...), nil
}
