package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	client "github.com/ipiloni/phishintel/client"
	types "github.com/ipiloni/phishintel/types"
	zap "go.uber.org/zap"
)

// Outcome is the terminal state of a bootstrap run.
type Outcome string

const (
	OutcomeUpdated     Outcome = "updated"
	OutcomeKeptDefault Outcome = "kept_default"
)

// Reason explains why the default backend URL was kept.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonUnexpectedStatus Reason = "unexpected_status"
	ReasonMalformedBody    Reason = "malformed_body"
	ReasonMissingURL       Reason = "missing_url"
	ReasonRequestFailed    Reason = "request_failed"
	ReasonSettingsSealed   Reason = "settings_sealed"
)

// Result describes what a bootstrap run did to the settings.
type Result struct {
	Outcome    Outcome
	Reason     Reason
	BackendURL string
	StatusCode int
	Err        error
	Duration   time.Duration
}

// OutcomeRecorder receives one observation per bootstrap run
type OutcomeRecorder interface {
	RecordBootstrapOutcome(ctx context.Context, outcome, reason string, durationMs float64)
}

// Bootstrapper resolves the backend base URL from the config endpoint and
// writes it into Settings. It runs at most once and never returns an error:
// every failure keeps the current default and is reported as a warning.
type Bootstrapper struct {
	settings *Settings
	client   client.ConfigClient
	logger   *zap.Logger
	recorder OutcomeRecorder
	events   chan<- cloudevents.Event

	once   sync.Once
	result Result
}

var _ Step = (*Bootstrapper)(nil)

// Option configures optional Bootstrapper collaborators
type Option func(*Bootstrapper)

// WithRecorder records the outcome of the run, e.g. as a metric
func WithRecorder(recorder OutcomeRecorder) Option {
	return func(b *Bootstrapper) {
		b.recorder = recorder
	}
}

// WithEvents publishes a resolved event on the channel without blocking
func WithEvents(events chan<- cloudevents.Event) Option {
	return func(b *Bootstrapper) {
		b.events = events
	}
}

// NewBootstrapper creates a bootstrapper writing into settings through the given client
func NewBootstrapper(settings *Settings, configClient client.ConfigClient, logger *zap.Logger, opts ...Option) *Bootstrapper {
	if settings == nil {
		settings = NewSettings("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Bootstrapper{
		settings: settings,
		client:   configClient,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBootstrapperFromConfig derives the config endpoint from cfg.PageURL and
// returns a bootstrapper together with the settings it will populate.
func NewBootstrapperFromConfig(cfg *Config, logger *zap.Logger, opts ...Option) (*Bootstrapper, *Settings, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("bootstrap config cannot be nil")
	}

	origin, err := Origin(cfg.PageURL)
	if err != nil {
		return nil, nil, err
	}

	clientCfg := client.DefaultConfig(origin)
	clientCfg.Timeout = cfg.Timeout
	clientCfg.UserAgent = cfg.UserAgent
	clientCfg.Logger = logger
	for key, value := range cfg.Headers {
		clientCfg.Headers[key] = value
	}
	if cfg.AuthConfig.Enable {
		clientCfg.TokenSource = cfg.AuthConfig.TokenSource(context.Background())
	}

	settings := NewSettings(cfg.DefaultURL)
	return NewBootstrapper(settings, client.NewClientWithConfig(clientCfg), logger, opts...), settings, nil
}

// Settings returns the holder this bootstrapper writes into
func (b *Bootstrapper) Settings() *Settings {
	return b.settings
}

// Name identifies the bootstrapper as a startup step
func (b *Bootstrapper) Name() string {
	return "backend-url"
}

// Run implements Step. It always returns nil.
func (b *Bootstrapper) Run(ctx context.Context) error {
	b.Init(ctx)
	return nil
}

// Init resolves the backend URL. Only the first call talks to the endpoint;
// later calls return the first result.
func (b *Bootstrapper) Init(ctx context.Context) Result {
	b.once.Do(func() {
		start := time.Now()
		result := b.resolve(ctx)
		b.settings.seal()

		result.BackendURL = b.settings.BackendURL()
		result.Duration = time.Since(start)
		b.result = result

		b.report(ctx, result)
	})

	return b.result
}

// resolve performs the request and applies the override
func (b *Bootstrapper) resolve(ctx context.Context) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = b.keepDefault(ReasonRequestFailed, 0, fmt.Errorf("config request panicked: %v", r))
		}
	}()

	if b.client == nil {
		return b.keepDefault(ReasonRequestFailed, 0, errors.New("no config client configured"))
	}

	resp, err := b.client.GetConfigURL(ctx)
	if err != nil {
		var statusErr *client.StatusError
		var decodeErr *client.DecodeError
		switch {
		case errors.As(err, &statusErr):
			return b.keepDefault(ReasonUnexpectedStatus, statusErr.StatusCode, err)
		case errors.As(err, &decodeErr):
			return b.keepDefault(ReasonMalformedBody, http.StatusOK, err)
		default:
			return b.keepDefault(ReasonRequestFailed, 0, err)
		}
	}

	if resp == nil || strings.TrimSpace(resp.URL) == "" {
		b.logger.Debug("config endpoint returned no url, keeping default backend url",
			zap.String("backend_url", b.settings.BackendURL()))
		return Result{Outcome: OutcomeKeptDefault, Reason: ReasonMissingURL, StatusCode: http.StatusOK}
	}

	if !b.settings.override(resp.URL) {
		return b.keepDefault(ReasonSettingsSealed, http.StatusOK, errors.New("settings already sealed"))
	}
	b.logger.Info("backend url configured from config endpoint",
		zap.String("backend_url", b.settings.BackendURL()))
	return Result{Outcome: OutcomeUpdated, Reason: ReasonNone, StatusCode: http.StatusOK}
}

// keepDefault logs the failure and returns a kept-default result
func (b *Bootstrapper) keepDefault(reason Reason, statusCode int, err error) Result {
	backendURL := b.settings.BackendURL()

	switch reason {
	case ReasonUnexpectedStatus:
		b.logger.Warn("could not get backend url, using default",
			zap.Int("status_code", statusCode),
			zap.String("backend_url", backendURL))
	case ReasonMalformedBody:
		b.logger.Warn("failed to parse config endpoint response, using default",
			zap.Error(err),
			zap.String("backend_url", backendURL))
	case ReasonSettingsSealed:
		b.logger.Warn("settings already initialised, ignoring backend url from config endpoint",
			zap.String("backend_url", backendURL))
	default:
		b.logger.Warn("error getting backend url, using default",
			zap.Error(err),
			zap.String("backend_url", backendURL))
	}

	return Result{
		Outcome:    OutcomeKeptDefault,
		Reason:     reason,
		StatusCode: statusCode,
		Err:        err,
	}
}

// report forwards the result to the recorder and the event channel
func (b *Bootstrapper) report(ctx context.Context, result Result) {
	if b.recorder != nil {
		durationMs := float64(result.Duration.Nanoseconds()) / float64(time.Millisecond)
		b.recorder.RecordBootstrapOutcome(ctx, string(result.Outcome), string(result.Reason), durationMs)
	}

	if b.events == nil {
		return
	}

	data := map[string]any{
		"backend_url": result.BackendURL,
		"outcome":     string(result.Outcome),
		"reason":      string(result.Reason),
		"status_code": result.StatusCode,
	}
	if result.Err != nil {
		data["error"] = result.Err.Error()
	}

	select {
	case b.events <- types.NewStepEvent(types.EventBackendURLResolved, b.Name(), data):
	default:
		b.logger.Debug("event channel full, dropping backend url event")
	}
}
