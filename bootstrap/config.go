package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/ipiloni/phishintel/types"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config holds the startup configuration of a process consuming the backend URL
type Config struct {
	Debug      bool              `env:"DEBUG,default=false"`
	PageURL    string            `env:"BOOTSTRAP_PAGE_URL,default=http://localhost:8080" description:"URL the process was loaded from; its origin hosts the config endpoint"`
	DefaultURL string            `env:"BOOTSTRAP_DEFAULT_URL,default=http://localhost:8080" description:"Backend URL kept when the config endpoint cannot provide one"`
	Timeout    time.Duration     `env:"BOOTSTRAP_TIMEOUT,default=30s" description:"Timeout for the config endpoint request"`
	UserAgent  string            `env:"BOOTSTRAP_USER_AGENT,default=PhishIntel-Go-Client/1.0" description:"User agent string"`
	Headers    map[string]string `env:"BOOTSTRAP_HEADERS" description:"Extra headers sent to the config endpoint"`

	AuthConfig      AuthConfig      `env:",prefix=BOOTSTRAP_AUTH_"`
	TelemetryConfig TelemetryConfig `env:",prefix=TELEMETRY_"`
}

// AuthConfig holds the client credentials used when the config endpoint
// requires a bearer token
type AuthConfig struct {
	Enable       bool     `env:"ENABLE,default=false"`
	TokenURL     string   `env:"TOKEN_URL" description:"OAuth2 token endpoint"`
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES" description:"Comma separated scopes requested with the token"`
}

// TokenSource returns a caching client credentials token source
func (a AuthConfig) TokenSource(ctx context.Context) oauth2.TokenSource {
	cc := &clientcredentials.Config{
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		TokenURL:     a.TokenURL,
		Scopes:       a.Scopes,
	}
	return cc.TokenSource(ctx)
}

// TelemetryConfig holds the metrics endpoint of the bootstrap outcome metric
type TelemetryConfig struct {
	Enable      bool   `env:"ENABLE,default=false" description:"Record bootstrap outcomes and expose them on /metrics"`
	MetricsHost string `env:"METRICS_HOST,default=" description:"Metrics server host (empty for all interfaces)"`
	MetricsPort string `env:"METRICS_PORT,default=9464" description:"Metrics server port"`
}

// LoadConfig loads the bootstrap configuration from environment variables
func LoadConfig(ctx context.Context) (*Config, error) {
	return LoadConfigWithLookuper(ctx, envconfig.OsLookuper())
}

// LoadConfigWithLookuper loads the bootstrap configuration using a custom lookuper
func LoadConfigWithLookuper(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

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

// Validate validates the configuration and applies corrections for invalid values
func (c *Config) Validate() error {
	if c.DefaultURL == "" {
		c.DefaultURL = types.DefaultBackendURL
	}

	if c.Timeout < 0 {
		return fmt.Errorf("invalid bootstrap timeout '%s': must not be negative", c.Timeout)
	}

	if c.AuthConfig.Enable && (c.AuthConfig.TokenURL == "" || c.AuthConfig.ClientID == "") {
		return fmt.Errorf("bootstrap auth is enabled but token url or client id is missing")
	}

	if _, err := Origin(c.PageURL); err != nil {
		return fmt.Errorf("invalid bootstrap page url: %w", err)
	}

	return nil
}
