package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	gin "github.com/gin-gonic/gin"
	config "github.com/ipiloni/phishintel/server/config"
	middlewares "github.com/ipiloni/phishintel/server/middlewares"
	otel "github.com/ipiloni/phishintel/server/otel"
	types "github.com/ipiloni/phishintel/types"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
	envconfig "github.com/sethvargo/go-envconfig"
	zap "go.uber.org/zap"
)

// ConfigServer serves the backend URL that browser clients bootstrap from
type ConfigServer interface {
	// Start starts the server on the configured port
	Start(ctx context.Context) error

	// Stop gracefully stops the server and releases the url source
	Stop(ctx context.Context) error

	// Handler returns the HTTP handler with all routes registered
	Handler() http.Handler

	// ResolveAppURL looks up and normalizes the backend URL
	ResolveAppURL(ctx context.Context) string

	// GetURLSource returns the configured url source
	GetURLSource() URLSource
}

// frontendPages maps clean routes to the pages of the static frontend
var frontendPages = map[string]string{
	"/":          "index.html",
	"/login":     "login.html",
	"/registro":  "register.html",
	"/reportes":  "reportes.html",
	"/principal": "principal.html",
	"/usuarios":  "usuarios.html",
}

type ConfigServerImpl struct {
	cfg    *config.Config
	logger *zap.Logger
	source URLSource
	otel   otel.OpenTelemetry

	// Server state
	httpServer    *http.Server
	metricsServer *http.Server
}

var _ ConfigServer = (*ConfigServerImpl)(nil)

// NewConfigServer creates a new config server. A nil source falls back to
// the environment provider using the configured key.
func NewConfigServer(cfg *config.Config, logger *zap.Logger, otel otel.OpenTelemetry, source URLSource) *ConfigServerImpl {
	if cfg == nil {
		defaultCfg, err := config.NewWithDefaults(context.Background(), nil)
		if err != nil {
			log.Fatalf("failed to load default configuration: %v", err)
		}
		cfg = defaultCfg
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if source == nil {
		source = NewEnvURLSource(cfg.URLSourceConfig.Key, envconfig.OsLookuper())
	}

	return &ConfigServerImpl{
		cfg:    cfg,
		logger: logger,
		source: source,
		otel:   otel,
	}
}

// NewDefaultConfigServer creates a config server with configuration, logger,
// telemetry and url source all derived from the environment
func NewDefaultConfigServer(cfg *config.Config) *ConfigServerImpl {
	finalCfg, err := config.LoadWithLookuper(context.Background(), cfg, envconfig.OsLookuper())
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if finalCfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	var telemetryInstance otel.OpenTelemetry
	if finalCfg.TelemetryConfig.Enable {
		telemetryInstance, err = otel.NewOpenTelemetry(finalCfg.ServiceName, finalCfg.ServiceVersion, logger)
		if err != nil {
			logger.Fatal("failed to initialize telemetry", zap.Error(err))
		}
		metricsAddr := finalCfg.TelemetryConfig.MetricsConfig.Host + ":" + finalCfg.TelemetryConfig.MetricsConfig.Port
		logger.Info("telemetry enabled - metrics will be available", zap.String("metrics_url", metricsAddr+"/metrics"))
	}

	source, err := CreateURLSource(context.Background(), finalCfg.URLSourceConfig, logger)
	if err != nil {
		logger.Fatal("failed to create url source", zap.Error(err), zap.String("provider", finalCfg.URLSourceConfig.Provider))
	}

	return NewConfigServer(finalCfg, logger, telemetryInstance, source)
}

// GetURLSource returns the configured url source
func (s *ConfigServerImpl) GetURLSource() URLSource {
	return s.source
}

// Handler returns the HTTP handler with all routes registered
func (s *ConfigServerImpl) Handler() http.Handler {
	return s.setupRouter(s.cfg)
}

func (s *ConfigServerImpl) setupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggingMiddleware(s.logger, cfg.ServerConfig.DisableHealthcheckLog))

	r.GET("/health", s.handleHealth)

	if cfg.FrontendConfig.Enable {
		s.registerFrontend(r, cfg.FrontendConfig.Dir)
	}

	handlers := []gin.HandlerFunc{}
	if cfg.TelemetryConfig.Enable && s.otel != nil {
		telemetryMw, err := middlewares.NewTelemetryMiddleware(*cfg, s.otel, s.logger)
		if err != nil {
			s.logger.Error("failed to create telemetry middleware", zap.Error(err))
		} else {
			handlers = append(handlers, telemetryMw.Middleware())
		}
	}

	if cfg.AuthConfig.Enable {
		oidcAuthenticator, err := middlewares.NewOIDCAuthenticatorMiddleware(s.logger, *cfg)
		if err != nil {
			s.logger.Error("failed to create OIDC authenticator, config endpoint will not be registered", zap.Error(err))
			return r
		}
		s.logger.Info("oidcAuthenticator is valid, setting up authentication")
		handlers = append(handlers, oidcAuthenticator.Middleware())
	}

	handlers = append(handlers, s.handleConfigURL)
	r.GET(types.ConfigURLPath, handlers...)

	return r
}

func (s *ConfigServerImpl) registerFrontend(r *gin.Engine, dir string) {
	s.logger.Info("serving static frontend", zap.String("dir", dir))

	for route, page := range frontendPages {
		file := filepath.Join(dir, page)
		r.GET(route, func(c *gin.Context) {
			serveFile(c, file)
		})
	}

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		serveFile(c, filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path)))
	})
}

// serveFile writes a regular file without the directory redirects of http.ServeFile
func serveFile(c *gin.Context, file string) {
	f, err := os.Open(file)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// ResolveAppURL looks up the backend URL and normalizes it. Lookup errors
// are logged and answered with the default URL.
func (s *ConfigServerImpl) ResolveAppURL(ctx context.Context) string {
	raw, err := s.source.Lookup(ctx)

	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		s.otel.RecordSourceLookup(ctx, otel.TelemetryAttributes{
			Provider: s.source.Provider(),
			Route:    types.ConfigURLPath,
		}, err == nil)
	}

	if err != nil {
		s.logger.Error("failed to look up backend url, serving default",
			zap.Error(err),
			zap.String("provider", s.source.Provider()),
			zap.String("default_url", types.DefaultBackendURL))
		return types.DefaultBackendURL
	}

	return NormalizeAppURL(raw)
}

func (s *ConfigServerImpl) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{Status: types.HealthStatusHealthy})
}

// handleConfigURL answers the bootstrap request of browser clients
func (s *ConfigServerImpl) handleConfigURL(c *gin.Context) {
	appURL := s.ResolveAppURL(c.Request.Context())

	s.logger.Debug("backend url requested",
		zap.String("url", appURL),
		zap.String("request_id", c.GetString(middlewares.RequestIDContextKey)))

	c.JSON(http.StatusOK, types.ConfigURLResponse{URL: appURL})
}

// Start starts the config server and blocks until it stops
func (s *ConfigServerImpl) Start(ctx context.Context) error {
	router := s.setupRouter(s.cfg)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.cfg.ServerConfig.Port),
		Handler:      router,
		ReadTimeout:  s.cfg.ServerConfig.ReadTimeout,
		WriteTimeout: s.cfg.ServerConfig.WriteTimeout,
		IdleTimeout:  s.cfg.ServerConfig.IdleTimeout,
	}

	s.logger.Info("starting config server",
		zap.String("port", s.cfg.ServerConfig.Port),
		zap.String("service_name", s.cfg.ServiceName),
		zap.String("version", s.cfg.ServiceVersion),
		zap.String("environment", s.cfg.Environment),
		zap.String("url_source", s.source.Provider()))

	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		metricsRouter := gin.New()
		metricsRouter.Use(gin.Recovery())
		metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

		metricsAddr := s.cfg.TelemetryConfig.MetricsConfig.Host + ":" + s.cfg.TelemetryConfig.MetricsConfig.Port
		s.metricsServer = &http.Server{
			Addr:         metricsAddr,
			Handler:      metricsRouter,
			ReadTimeout:  s.cfg.TelemetryConfig.MetricsConfig.ReadTimeout,
			WriteTimeout: s.cfg.TelemetryConfig.MetricsConfig.WriteTimeout,
			IdleTimeout:  s.cfg.TelemetryConfig.MetricsConfig.IdleTimeout,
		}

		go func(metricsServer *http.Server) {
			s.logger.Info("starting metrics server", zap.String("port", s.cfg.TelemetryConfig.MetricsConfig.Port))
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.logger.Error("metrics server failed", zap.Error(err))
			}
		}(s.metricsServer)
	}

	if s.cfg.ServerConfig.TLSConfig.Enable {
		return s.httpServer.ListenAndServeTLS(s.cfg.ServerConfig.TLSConfig.CertPath, s.cfg.ServerConfig.TLSConfig.KeyPath)
	}

	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the config server
func (s *ConfigServerImpl) Stop(ctx context.Context) error {
	s.logger.Info("stopping config server")

	var err error

	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			s.logger.Error("error stopping HTTP server", zap.Error(shutdownErr))
			err = shutdownErr
		}
	}

	if s.metricsServer != nil {
		if shutdownErr := s.metricsServer.Shutdown(ctx); shutdownErr != nil {
			s.logger.Error("error stopping metrics server", zap.Error(shutdownErr))
			if err == nil {
				err = shutdownErr
			}
		}
	}

	if closeErr := s.source.Close(); closeErr != nil {
		s.logger.Error("error closing url source", zap.Error(closeErr))
		if err == nil {
			err = closeErr
		}
	}

	if s.otel != nil {
		if shutdownErr := s.otel.ShutDown(ctx); shutdownErr != nil {
			s.logger.Error("error shutting down telemetry", zap.Error(shutdownErr))
			if err == nil {
				err = shutdownErr
			}
		}
	}

	defer func() {
		_ = s.logger.Sync()
	}()

	return err
}
