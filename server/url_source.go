package server

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ipiloni/phishintel/server/config"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
)

//go:generate go tool counterfeiter -o mocks/fake_url_source.go . URLSource

// URLSource provides the raw backend URL served by the config endpoint.
// An empty value means the source has nothing configured.
type URLSource interface {
	// Lookup returns the raw configured value
	Lookup(ctx context.Context) (string, error)

	// Provider returns the provider name of this source
	Provider() string

	// Close releases resources held by the source
	Close() error
}

// URLSourceFactory defines the interface for creating url source instances
type URLSourceFactory interface {
	// CreateSource creates a url source with the given configuration
	CreateSource(ctx context.Context, config config.URLSourceConfig, logger *zap.Logger) (URLSource, error)

	// SupportedProvider returns the provider name this factory supports
	SupportedProvider() string

	// ValidateConfig validates the configuration for this provider
	ValidateConfig(config config.URLSourceConfig) error
}

// URLSourceRegistry manages registered url source providers
type URLSourceRegistry struct {
	mu        sync.RWMutex
	factories map[string]URLSourceFactory
}

// globalSourceRegistry is the global url source registry
var globalSourceRegistry = NewURLSourceRegistry()

// NewURLSourceRegistry creates an empty registry
func NewURLSourceRegistry() *URLSourceRegistry {
	return &URLSourceRegistry{
		factories: make(map[string]URLSourceFactory),
	}
}

// RegisterURLSourceProvider registers a url source provider factory
func RegisterURLSourceProvider(provider string, factory URLSourceFactory) {
	globalSourceRegistry.Register(provider, factory)
}

// GetSupportedURLSourceProviders returns a list of all registered providers
func GetSupportedURLSourceProviders() []string {
	return globalSourceRegistry.GetProviders()
}

// CreateURLSource creates a url source using the registered factories
func CreateURLSource(ctx context.Context, config config.URLSourceConfig, logger *zap.Logger) (URLSource, error) {
	return globalSourceRegistry.CreateSource(ctx, config, logger)
}

// Register registers a factory for a provider
func (r *URLSourceRegistry) Register(provider string, factory URLSourceFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if factory.SupportedProvider() != provider {
		panic(fmt.Sprintf("factory provider mismatch: expected %s, got %s", provider, factory.SupportedProvider()))
	}

	r.factories[provider] = factory
}

// GetFactory retrieves a factory for a provider
func (r *URLSourceRegistry) GetFactory(provider string) (URLSourceFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[provider]
	if !exists {
		return nil, fmt.Errorf("unsupported url source provider: %s (supported: %v)", provider, r.getProviderNames())
	}

	return factory, nil
}

// GetProviders returns a sorted list of all registered provider names
func (r *URLSourceRegistry) GetProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getProviderNames()
}

// getProviderNames returns provider names (must be called with read lock held)
func (r *URLSourceRegistry) getProviderNames() []string {
	providers := make([]string, 0, len(r.factories))
	for provider := range r.factories {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	return providers
}

// CreateSource creates a url source using the appropriate factory
func (r *URLSourceRegistry) CreateSource(ctx context.Context, config config.URLSourceConfig, logger *zap.Logger) (URLSource, error) {
	factory, err := r.GetFactory(config.Provider)
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration for provider %s: %w", config.Provider, err)
	}

	return factory.CreateSource(ctx, config, logger)
}

// EnvURLSourceFactory implements URLSourceFactory for process environment lookups
type EnvURLSourceFactory struct{}

// SupportedProvider returns the provider name
func (f *EnvURLSourceFactory) SupportedProvider() string {
	return "env"
}

// ValidateConfig validates the configuration for environment lookups
func (f *EnvURLSourceFactory) ValidateConfig(config config.URLSourceConfig) error {
	if strings.TrimSpace(config.Key) == "" {
		return fmt.Errorf("key is required for env url source provider")
	}
	return nil
}

// CreateSource creates an environment url source
func (f *EnvURLSourceFactory) CreateSource(ctx context.Context, config config.URLSourceConfig, logger *zap.Logger) (URLSource, error) {
	return NewEnvURLSource(config.Key, envconfig.OsLookuper()), nil
}

// EnvURLSource reads the backend url from an environment variable
type EnvURLSource struct {
	key      string
	lookuper envconfig.Lookuper
}

var _ URLSource = (*EnvURLSource)(nil)

// NewEnvURLSource creates a source reading key through lookuper
func NewEnvURLSource(key string, lookuper envconfig.Lookuper) *EnvURLSource {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	return &EnvURLSource{key: key, lookuper: lookuper}
}

// Lookup returns the variable value, or empty when unset
func (s *EnvURLSource) Lookup(ctx context.Context) (string, error) {
	value, _ := s.lookuper.Lookup(s.key)
	return strings.TrimSpace(value), nil
}

// Provider returns the provider name
func (s *EnvURLSource) Provider() string {
	return "env"
}

// Close is a no-op for environment lookups
func (s *EnvURLSource) Close() error {
	return nil
}

// init registers the built-in url source providers
func init() {
	RegisterURLSourceProvider("env", &EnvURLSourceFactory{})
	RegisterURLSourceProvider("file", &FileURLSourceFactory{})
	RegisterURLSourceProvider("redis", &RedisURLSourceFactory{})
}
