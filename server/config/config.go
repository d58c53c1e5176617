package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	ServiceName     string          // Build-time metadata, not configurable via environment
	ServiceVersion  string          // Build-time metadata, not configurable via environment
	Environment     string          `env:"ENVIRONMENT,default=development" description:"Runtime environment (development, production)"`
	Debug           bool            `env:"DEBUG,default=false"`
	URLSourceConfig URLSourceConfig `env:",prefix=URL_SOURCE_"`
	FrontendConfig  FrontendConfig  `env:",prefix=FRONTEND_"`
	AuthConfig      AuthConfig      `env:",prefix=AUTH_"`
	ServerConfig    ServerConfig    `env:",prefix=SERVER_"`
	TelemetryConfig TelemetryConfig `env:",prefix=TELEMETRY_"`
}

// URLSourceConfig selects where the backend URL reported by /api/config/url is read from
type URLSourceConfig struct {
	Provider    string            `env:"PROVIDER,default=env" description:"Backend url source provider (env, file, redis)"`
	Key         string            `env:"KEY,default=URL_APP" description:"Variable name (env, file) or key (redis) holding the backend url"`
	FilePath    string            `env:"FILE_PATH,default=properties.env" description:"Path of the properties file for the file provider"`
	URL         string            `env:"URL" description:"Connection URL for the redis provider"`
	Credentials map[string]string `env:"CREDENTIALS" description:"Provider-specific credentials"`
	Options     map[string]string `env:"OPTIONS" description:"Provider-specific configuration options"`
}

// FrontendConfig holds static frontend serving configuration
type FrontendConfig struct {
	Enable bool   `env:"ENABLE,default=false" description:"Serve the static frontend"`
	Dir    string `env:"DIR,default=./frontend" description:"Directory holding the frontend files"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	Enable    bool   `env:"ENABLE,default=false"`
	IssuerURL string `env:"ISSUER_URL,default=http://keycloak:8080/realms/phishintel-realm"`
	ClientID  string `env:"CLIENT_ID,default=phishintel-client" description:"Expected audience of verified tokens"`
}

// TLSConfig holds TLS configuration
type TLSConfig struct {
	Enable   bool   `env:"ENABLE,default=false"`
	CertPath string `env:"CERT_PATH" description:"TLS certificate path"`
	KeyPath  string `env:"KEY_PATH" description:"TLS key path"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port                  string        `env:"PORT,default=8080" description:"HTTP server port"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=120s" description:"HTTP server read timeout"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=120s" description:"HTTP server write timeout"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=120s" description:"HTTP server idle timeout"`
	DisableHealthcheckLog bool          `env:"DISABLE_HEALTHCHECK_LOG,default=true" description:"Disable logging for health check requests"`
	TLSConfig             TLSConfig     `env:",prefix=TLS_"`
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Port         string        `env:"PORT,default=9090" description:"Metrics server port"`
	Host         string        `env:"HOST,default=" description:"Metrics server host (empty for all interfaces)"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s" description:"Metrics server read timeout"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s" description:"Metrics server write timeout"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=60s" description:"Metrics server idle timeout"`
}

// TelemetryConfig holds telemetry configuration
type TelemetryConfig struct {
	Enable        bool          `env:"ENABLE,default=false" description:"Enable telemetry collection"`
	MetricsConfig MetricsConfig `env:",prefix=METRICS_"`
}

// Load loads configuration from environment variables, merging with the provided base config.
func Load(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, envconfig.OsLookuper())
}

// LoadWithLookuper creates and loads configuration using a custom lookuper and merges with user config
func LoadWithLookuper(ctx context.Context, baseConfig *Config, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if baseConfig != nil {
		cfg = *baseConfig
	}

	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewWithDefaults creates a new config with defaults applied from struct tags.
func NewWithDefaults(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, &emptyLookuper{})
}

// emptyLookuper ensures that only default values from struct tags are used
type emptyLookuper struct{}

func (e *emptyLookuper) Lookup(key string) (string, bool) {
	return "", false
}

// Validate validates the configuration and applies corrections for invalid values
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		c.ServiceName = "phishintel"
	}

	c.URLSourceConfig.Provider = strings.ToLower(strings.TrimSpace(c.URLSourceConfig.Provider))
	if c.URLSourceConfig.Provider == "" {
		c.URLSourceConfig.Provider = "env"
	}

	if c.ServerConfig.TLSConfig.Enable && (c.ServerConfig.TLSConfig.CertPath == "" || c.ServerConfig.TLSConfig.KeyPath == "") {
		return fmt.Errorf("tls is enabled but cert path or key path is missing")
	}

	return nil
}
