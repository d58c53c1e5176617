package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	client "github.com/ipiloni/phishintel/client"
	otel "github.com/ipiloni/phishintel/server/otel"
	types "github.com/ipiloni/phishintel/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
	observer "go.uber.org/zap/zaptest/observer"
)

var _ OutcomeRecorder = (otel.OpenTelemetry)(nil)

type recordedOutcome struct {
	outcome string
	reason  string
}

type fakeRecorder struct {
	mu       sync.Mutex
	outcomes []recordedOutcome
}

func (r *fakeRecorder) RecordBootstrapOutcome(ctx context.Context, outcome, reason string, durationMs float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, recordedOutcome{outcome: outcome, reason: reason})
}

type panickingClient struct {
	client.ConfigClient
}

func (c *panickingClient) GetConfigURL(ctx context.Context) (*types.ConfigURLResponse, error) {
	panic("transport exploded")
}

func newConfigEndpoint(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, types.ConfigURLPath, r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBootstrapper_Init(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedURL     string
		expectedOutcome Outcome
		expectedReason  Reason
		expectedStatus  int
		expectedWarns   int
	}{
		{
			name:            "endpoint reports url",
			status:          http.StatusOK,
			body:            `{"url":"http://api.example.com"}`,
			expectedURL:     "http://api.example.com",
			expectedOutcome: OutcomeUpdated,
			expectedReason:  ReasonNone,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "other fields are ignored",
			status:          http.StatusOK,
			body:            `{"url":"https://app.phishintel.com","env":"prod"}`,
			expectedURL:     "https://app.phishintel.com",
			expectedOutcome: OutcomeUpdated,
			expectedReason:  ReasonNone,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "not found keeps default",
			status:          http.StatusNotFound,
			body:            `{"error":"not found"}`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonUnexpectedStatus,
			expectedStatus:  http.StatusNotFound,
			expectedWarns:   1,
		},
		{
			name:            "server error keeps default",
			status:          http.StatusInternalServerError,
			body:            ``,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonUnexpectedStatus,
			expectedStatus:  http.StatusInternalServerError,
			expectedWarns:   1,
		},
		{
			name:            "malformed body keeps default",
			status:          http.StatusOK,
			body:            `not-json`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMalformedBody,
			expectedStatus:  http.StatusOK,
			expectedWarns:   1,
		},
		{
			name:            "null body keeps default with warning",
			status:          http.StatusOK,
			body:            `null`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMalformedBody,
			expectedStatus:  http.StatusOK,
			expectedWarns:   1,
		},
		{
			name:            "non string url keeps default silently",
			status:          http.StatusOK,
			body:            `{"url":123}`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMissingURL,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "array body keeps default silently",
			status:          http.StatusOK,
			body:            `[]`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMissingURL,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "string body keeps default silently",
			status:          http.StatusOK,
			body:            `"x"`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMissingURL,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "missing url keeps default silently",
			status:          http.StatusOK,
			body:            `{}`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMissingURL,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "empty url keeps default silently",
			status:          http.StatusOK,
			body:            `{"url":""}`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMissingURL,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "blank url keeps default silently",
			status:          http.StatusOK,
			body:            `{"url":"   "}`,
			expectedURL:     types.DefaultBackendURL,
			expectedOutcome: OutcomeKeptDefault,
			expectedReason:  ReasonMissingURL,
			expectedStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newConfigEndpoint(t, tt.status, tt.body)
			core, logs := observer.New(zapcore.DebugLevel)
			logger := zap.New(core)

			settings := NewSettings("")
			b := NewBootstrapper(settings, client.NewClient(srv.URL), logger)

			var result Result
			assert.NotPanics(t, func() {
				result = b.Init(context.Background())
			})

			assert.Equal(t, tt.expectedURL, settings.BackendURL())
			assert.NotEmpty(t, settings.BackendURL())
			assert.True(t, settings.Sealed())
			assert.Equal(t, tt.expectedOutcome, result.Outcome)
			assert.Equal(t, tt.expectedReason, result.Reason)
			assert.Equal(t, tt.expectedStatus, result.StatusCode)
			assert.Equal(t, tt.expectedURL, result.BackendURL)
			assert.Equal(t, tt.expectedWarns, logs.FilterLevelExact(zapcore.WarnLevel).Len())

			if tt.expectedOutcome == OutcomeUpdated {
				assert.Equal(t, SourceEndpoint, settings.Source())
				assert.Equal(t, 1, logs.FilterMessage("backend url configured from config endpoint").Len())
				assert.NoError(t, result.Err)
			} else {
				assert.Equal(t, SourceDefault, settings.Source())
			}
		})
	}
}

func TestBootstrapper_WarningCarriesStatusAndDefault(t *testing.T) {
	srv := newConfigEndpoint(t, http.StatusNotFound, ``)
	core, logs := observer.New(zapcore.WarnLevel)

	b := NewBootstrapper(NewSettings(""), client.NewClient(srv.URL), zap.New(core))
	b.Init(context.Background())

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), fields["status_code"])
	assert.Equal(t, types.DefaultBackendURL, fields["backend_url"])
}

func TestBootstrapper_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	settings := NewSettings("")
	b := NewBootstrapper(settings, client.NewClient(baseURL), zap.New(core))

	var result Result
	assert.NotPanics(t, func() {
		result = b.Init(context.Background())
	})

	assert.Equal(t, types.DefaultBackendURL, settings.BackendURL())
	assert.Equal(t, OutcomeKeptDefault, result.Outcome)
	assert.Equal(t, ReasonRequestFailed, result.Reason)
	assert.Error(t, result.Err)
	assert.Equal(t, 1, logs.Len())
}

func TestBootstrapper_CancelledContext(t *testing.T) {
	srv := newConfigEndpoint(t, http.StatusOK, `{"url":"http://api.example.com"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	settings := NewSettings("")
	result := NewBootstrapper(settings, client.NewClient(srv.URL), zap.NewNop()).Init(ctx)

	assert.Equal(t, types.DefaultBackendURL, settings.BackendURL())
	assert.Equal(t, ReasonRequestFailed, result.Reason)
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestBootstrapper_PanickingClient(t *testing.T) {
	settings := NewSettings("")
	b := NewBootstrapper(settings, &panickingClient{}, zap.NewNop())

	var result Result
	assert.NotPanics(t, func() {
		result = b.Init(context.Background())
	})

	assert.Equal(t, types.DefaultBackendURL, settings.BackendURL())
	assert.Equal(t, ReasonRequestFailed, result.Reason)
	assert.ErrorContains(t, result.Err, "transport exploded")
}

func TestBootstrapper_NilClient(t *testing.T) {
	b := NewBootstrapper(nil, nil, nil)

	result := b.Init(context.Background())

	assert.Equal(t, types.DefaultBackendURL, b.Settings().BackendURL())
	assert.Equal(t, ReasonRequestFailed, result.Reason)
}

func TestBootstrapper_SharedSealedSettings(t *testing.T) {
	first := newConfigEndpoint(t, http.StatusNotFound, ``)
	second := newConfigEndpoint(t, http.StatusOK, `{"url":"http://api.example.com"}`)

	settings := NewSettings("")
	NewBootstrapper(settings, client.NewClient(first.URL), zap.NewNop()).Init(context.Background())
	require.True(t, settings.Sealed())

	core, logs := observer.New(zapcore.WarnLevel)
	result := NewBootstrapper(settings, client.NewClient(second.URL), zap.New(core)).Init(context.Background())

	assert.Equal(t, types.DefaultBackendURL, settings.BackendURL())
	assert.Equal(t, SourceDefault, settings.Source())
	assert.Equal(t, OutcomeKeptDefault, result.Outcome)
	assert.Equal(t, ReasonSettingsSealed, result.Reason)
	assert.Equal(t, types.DefaultBackendURL, result.BackendURL)
	assert.Equal(t, 1, logs.Len())
}

func TestBootstrapper_CustomDefault(t *testing.T) {
	srv := newConfigEndpoint(t, http.StatusServiceUnavailable, ``)

	settings := NewSettings("https://fallback.phishintel.com")
	NewBootstrapper(settings, client.NewClient(srv.URL), zap.NewNop()).Init(context.Background())

	assert.Equal(t, "https://fallback.phishintel.com", settings.BackendURL())
}

func TestBootstrapper_InitRunsOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"url":"http://api.example.com"}`))
	}))
	defer srv.Close()

	b := NewBootstrapper(NewSettings(""), client.NewClient(srv.URL), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Init(context.Background())
		}()
	}
	wg.Wait()

	first := b.Init(context.Background())
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, OutcomeUpdated, first.Outcome)
	assert.NoError(t, b.Run(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
}

func TestBootstrapper_RecorderAndEvents(t *testing.T) {
	srv := newConfigEndpoint(t, http.StatusNotFound, ``)
	recorder := &fakeRecorder{}
	events := make(chan cloudevents.Event, 1)

	b := NewBootstrapper(NewSettings(""), client.NewClient(srv.URL), zap.NewNop(),
		WithRecorder(recorder),
		WithEvents(events))
	b.Init(context.Background())

	require.Len(t, recorder.outcomes, 1)
	assert.Equal(t, recordedOutcome{outcome: "kept_default", reason: "unexpected_status"}, recorder.outcomes[0])

	require.Len(t, events, 1)
	event := <-events
	assert.Equal(t, types.EventBackendURLResolved, event.Type())
	assert.Equal(t, "backend-url", event.Extensions()["step"])

	var data map[string]any
	require.NoError(t, event.DataAs(&data))
	assert.Equal(t, types.DefaultBackendURL, data["backend_url"])
	assert.Equal(t, "kept_default", data["outcome"])
	assert.Equal(t, float64(http.StatusNotFound), data["status_code"])
}

func TestBootstrapper_FullEventChannelDoesNotBlock(t *testing.T) {
	srv := newConfigEndpoint(t, http.StatusOK, `{"url":"http://api.example.com"}`)
	events := make(chan cloudevents.Event)

	b := NewBootstrapper(NewSettings(""), client.NewClient(srv.URL), zap.NewNop(), WithEvents(events))
	result := b.Init(context.Background())

	assert.Equal(t, OutcomeUpdated, result.Outcome)
}

func TestNewBootstrapperFromConfig(t *testing.T) {
	var gotUserAgent, gotTenant string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotTenant = r.Header.Get("X-Tenant")
		_, _ = w.Write([]byte(`{"url":"http://api.example.com"}`))
	}))
	defer srv.Close()

	cfg := &Config{
		PageURL:    srv.URL + "/login?next=/principal#top",
		DefaultURL: "http://localhost:9000",
		UserAgent:  "phishintel-test",
		Headers:    map[string]string{"X-Tenant": "acme"},
	}

	b, settings, err := NewBootstrapperFromConfig(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", settings.BackendURL())

	b.Init(context.Background())

	assert.Equal(t, "http://api.example.com", settings.BackendURL())
	assert.Equal(t, "phishintel-test", gotUserAgent)
	assert.Equal(t, "acme", gotTenant)
}

func TestNewBootstrapperFromConfig_ClientCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"worker-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc(types.ConfigURLPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer worker-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"url":"https://api.phishintel.com"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := &Config{
		PageURL: srv.URL,
		AuthConfig: AuthConfig{
			Enable:       true,
			TokenURL:     srv.URL + "/token",
			ClientID:     "worker",
			ClientSecret: "secret",
		},
	}

	b, settings, err := NewBootstrapperFromConfig(cfg, zap.NewNop())
	require.NoError(t, err)

	result := b.Init(context.Background())

	assert.Equal(t, OutcomeUpdated, result.Outcome)
	assert.Equal(t, "https://api.phishintel.com", settings.BackendURL())
}

func TestNewBootstrapperFromConfig_Errors(t *testing.T) {
	_, _, err := NewBootstrapperFromConfig(nil, zap.NewNop())
	assert.Error(t, err)

	_, _, err = NewBootstrapperFromConfig(&Config{PageURL: "not a url"}, zap.NewNop())
	assert.Error(t, err)
}
