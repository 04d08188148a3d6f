package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting. Defaults mirror the
// values the service has historically run with, so an empty environment
// still yields a working client against the public Meyers endpoint.
type Config struct {
	SchoolID      string `env:"SCHOOL_ID" envDefault:"CxnRNYOtBo6VrqiCb4AA"`
	Language      string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	TargetOfferID string `env:"TARGET_OFFER_ID" envDefault:"ob6V4HfZK9Gs95sii4Cf"`

	APIBaseURL     string `env:"API_BASE_URL" envDefault:"https://meyers.kanpla.dk/api/internal/load/frontend"`
	UserAgent      string `env:"USER_AGENT" envDefault:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"30"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	APIHost string `env:"API_HOST" envDefault:"0.0.0.0"`
	APIPort int    `env:"API_PORT" envDefault:"5015"`

	MCPHost string `env:"MCP_HOST" envDefault:"0.0.0.0"`
	MCPPort int    `env:"MCP_PORT" envDefault:"8001"`
	MCPHTTP bool   `env:"MCP_HTTP" envDefault:"false"`

	OutputFile string `env:"OUTPUT_FILE" envDefault:"date_menus.json"`

	ExportBucket    string `env:"EXPORT_BUCKET"`
	ExportEndpoint  string `env:"EXPORT_ENDPOINT"`
	ExportAccessKey string `env:"EXPORT_ACCESS_KEY"`
	ExportSecretKey string `env:"EXPORT_SECRET_KEY"`
}

// Load reads a .env file when present (skipped in production) and parses
// the environment into a Config.
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// APIAddr returns the listen address for the HTTP API.
func (c Config) APIAddr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// MCPAddr returns the listen address for the MCP streamable HTTP transport.
func (c Config) MCPAddr() string {
	return fmt.Sprintf("%s:%d", c.MCPHost, c.MCPPort)
}

// ExportConfigured reports whether object-storage export is enabled.
func (c Config) ExportConfigured() bool {
	return c.ExportBucket != ""
}
