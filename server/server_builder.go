package server

import (
	"context"
	"fmt"

	config "github.com/ipiloni/phishintel/server/config"
	otel "github.com/ipiloni/phishintel/server/otel"
	zap "go.uber.org/zap"
)

// ConfigServerBuilder provides a fluent interface for building config servers.
// Use NewConfigServerBuilder to create an instance, then chain method calls
// to configure the server.
//
// Example:
//
//	server, err := NewConfigServerBuilder(cfg, logger).
//	  WithURLSource(source).
//	  Build()
type ConfigServerBuilder interface {
	// WithURLSource sets the source the backend URL is read from.
	// When unset, Build creates one from the URL source configuration.
	WithURLSource(source URLSource) ConfigServerBuilder

	// WithTelemetry sets the telemetry instance used for request and lookup metrics.
	WithTelemetry(telemetry otel.OpenTelemetry) ConfigServerBuilder

	// WithLogger sets a custom logger for the builder and resulting server.
	WithLogger(logger *zap.Logger) ConfigServerBuilder

	// Build creates and returns the configured server.
	Build() (ConfigServer, error)
}

var _ ConfigServerBuilder = (*ConfigServerBuilderImpl)(nil)

// ConfigServerBuilderImpl is the concrete implementation of ConfigServerBuilder.
type ConfigServerBuilderImpl struct {
	cfg       config.Config      // Base configuration for the server
	logger    *zap.Logger        // Logger instance for the server
	source    URLSource          // Optional url source
	telemetry otel.OpenTelemetry // Optional telemetry
}

// NewConfigServerBuilder creates a new server builder. Zero valued settings
// in cfg are filled from the struct tag defaults when Build is called.
func NewConfigServerBuilder(cfg config.Config, logger *zap.Logger) ConfigServerBuilder {
	return &ConfigServerBuilderImpl{
		cfg:    cfg,
		logger: logger,
	}
}

// WithURLSource sets the source the backend URL is read from
func (b *ConfigServerBuilderImpl) WithURLSource(source URLSource) ConfigServerBuilder {
	b.source = source
	return b
}

// WithTelemetry sets the telemetry instance
func (b *ConfigServerBuilderImpl) WithTelemetry(telemetry otel.OpenTelemetry) ConfigServerBuilder {
	b.telemetry = telemetry
	return b
}

// WithLogger sets a custom logger
func (b *ConfigServerBuilderImpl) WithLogger(logger *zap.Logger) ConfigServerBuilder {
	b.logger = logger
	return b
}

// Build creates and returns the configured server
func (b *ConfigServerBuilderImpl) Build() (ConfigServer, error) {
	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.NewWithDefaults(context.Background(), &b.cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	source := b.source
	if source == nil {
		source, err = CreateURLSource(context.Background(), cfg.URLSourceConfig, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create url source: %w", err)
		}
	}

	if cfg.TelemetryConfig.Enable && b.telemetry == nil {
		logger.Warn("telemetry is enabled but no telemetry instance was provided, metrics will not be recorded")
	}

	return NewConfigServer(cfg, logger, b.telemetry, source), nil
}

// SimpleConfigServer creates a config server reading the backend URL from the given source
func SimpleConfigServer(cfg config.Config, logger *zap.Logger, source URLSource) (ConfigServer, error) {
	return NewConfigServerBuilder(cfg, logger).
		WithURLSource(source).
		Build()
}
