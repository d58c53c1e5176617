package otel

import (
	"context"
	"fmt"

	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	prometheus "go.opentelemetry.io/otel/exporters/prometheus"
	metric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	zap "go.uber.org/zap"
)

//go:generate go tool counterfeiter -o ../mocks/fake_opentelemetry.go . OpenTelemetry

// OpenTelemetry defines the operations for telemetry
type OpenTelemetry interface {
	// HTTP level metrics
	RecordRequestCount(ctx context.Context, attrs TelemetryAttributes, requestMethod string)
	RecordResponseStatus(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, statusCode int)
	RecordRequestDuration(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, durationMs float64)

	// Backend URL resolution
	RecordSourceLookup(ctx context.Context, attrs TelemetryAttributes, success bool)
	RecordBootstrapOutcome(ctx context.Context, outcome, reason string, durationMs float64)

	// Shutdown the telemetry system
	ShutDown(ctx context.Context) error
}

type OpenTelemetryImpl struct {
	logger        *zap.Logger
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter

	// Metrics
	requestCounter             metric.Int64Counter
	responseStatusCounter      metric.Int64Counter
	requestDurationHistogram   metric.Float64Histogram
	sourceLookupCounter        metric.Int64Counter
	bootstrapOutcomeCounter    metric.Int64Counter
	bootstrapDurationHistogram metric.Float64Histogram
}

type TelemetryAttributes struct {
	Provider string
	Route    string
}

// NewOpenTelemetry creates a new OpenTelemetry implementation exporting to the
// default prometheus registry
func NewOpenTelemetry(serviceName, serviceVersion string, logger *zap.Logger) (OpenTelemetry, error) {
	if serviceName == "" {
		return nil, fmt.Errorf("service name cannot be empty")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	o := &OpenTelemetryImpl{
		logger: logger,
	}

	if err := o.initialize(serviceName, serviceVersion); err != nil {
		return nil, fmt.Errorf("failed to initialize opentelemetry: %w", err)
	}

	return o, nil
}

func (o *OpenTelemetryImpl) initialize(serviceName, serviceVersion string) error {
	o.logger.Info("initializing opentelemetry",
		zap.String("service_name", serviceName),
		zap.String("version", serviceVersion))

	exporter, err := prometheus.New()
	if err != nil {
		o.logger.Error("failed to create prometheus exporter", zap.Error(err))
		return err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	)

	histogramBoundaries := []float64{1, 5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000}

	latencyView := sdkmetric.NewView(
		sdkmetric.Instrument{
			Kind: sdkmetric.InstrumentKindHistogram,
		},
		sdkmetric.Stream{
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: histogramBoundaries,
			},
		},
	)

	o.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
		sdkmetric.WithView(latencyView),
	)
	otel.SetMeterProvider(o.meterProvider)

	o.meter = o.meterProvider.Meter(serviceName)

	if err := o.initializeMetrics(); err != nil {
		o.logger.Error("failed to initialize metrics", zap.Error(err))
		return err
	}

	o.logger.Info("opentelemetry initialized successfully")
	return nil
}

func (o *OpenTelemetryImpl) RecordRequestCount(ctx context.Context, attrs TelemetryAttributes, requestMethod string) {
	attributes := []attribute.KeyValue{
		attribute.String("route", attrs.Route),
		attribute.String("request_method", requestMethod),
	}

	o.requestCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordResponseStatus(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, statusCode int) {
	attributes := []attribute.KeyValue{
		attribute.String("route", attrs.Route),
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
		attribute.Int("status_code", statusCode),
	}

	o.responseStatusCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordRequestDuration(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, durationMs float64) {
	attributes := []attribute.KeyValue{
		attribute.String("route", attrs.Route),
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
	}

	o.requestDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordSourceLookup(ctx context.Context, attrs TelemetryAttributes, success bool) {
	attributes := []attribute.KeyValue{
		attribute.String("provider", attrs.Provider),
		attribute.Bool("success", success),
	}

	o.sourceLookupCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordBootstrapOutcome(ctx context.Context, outcome, reason string, durationMs float64) {
	attributes := []attribute.KeyValue{
		attribute.String("outcome", outcome),
	}
	if reason != "" {
		attributes = append(attributes, attribute.String("reason", reason))
	}

	o.bootstrapOutcomeCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
	o.bootstrapDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) ShutDown(ctx context.Context) error {
	return o.meterProvider.Shutdown(ctx)
}

// initializeMetrics initializes all the OpenTelemetry metrics
func (o *OpenTelemetryImpl) initializeMetrics() error {
	var err error

	o.requestCounter, err = o.meter.Int64Counter(
		"phishintel.requests.total",
		metric.WithDescription("Total number of HTTP requests processed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request counter: %w", err)
	}

	o.responseStatusCounter, err = o.meter.Int64Counter(
		"phishintel.response_status.total",
		metric.WithDescription("Total number of responses by status code"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create response status counter: %w", err)
	}

	o.requestDurationHistogram, err = o.meter.Float64Histogram(
		"phishintel.request_duration",
		metric.WithDescription("Duration of HTTP request processing"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	o.sourceLookupCounter, err = o.meter.Int64Counter(
		"phishintel.url_source.lookups.total",
		metric.WithDescription("Total number of backend url source lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create source lookup counter: %w", err)
	}

	o.bootstrapOutcomeCounter, err = o.meter.Int64Counter(
		"phishintel.bootstrap.outcomes.total",
		metric.WithDescription("Total number of backend url bootstrap runs by outcome"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create bootstrap outcome counter: %w", err)
	}

	o.bootstrapDurationHistogram, err = o.meter.Float64Histogram(
		"phishintel.bootstrap.duration",
		metric.WithDescription("Time taken to resolve the backend url at startup"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create bootstrap duration histogram: %w", err)
	}

	o.logger.Debug("all opentelemetry metrics initialized successfully")
	return nil
}
