package types

import (
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	uuid "github.com/google/uuid"
)

const eventSource = "phishintel/bootstrap"

// Event types emitted during startup.
const (
	EventBackendURLResolved = "phishintel.bootstrap.backend_url.resolved"
	EventStepStarted        = "phishintel.bootstrap.step.started"
	EventStepCompleted      = "phishintel.bootstrap.step.completed"
	EventStepFailed         = "phishintel.bootstrap.step.failed"
	EventStartupReady       = "phishintel.bootstrap.ready"
)

// NewBootstrapEvent creates a CloudEvent for startup lifecycle events
func NewBootstrapEvent(eventType string, data map[string]any) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetID(uuid.New().String())
	event.SetType(eventType)
	event.SetSource(eventSource)
	event.SetTime(time.Now())
	_ = event.SetData(cloudevents.ApplicationJSON, data)

	return event
}

// NewStepEvent creates a CloudEvent describing a single startup step
func NewStepEvent(eventType, step string, data map[string]any) cloudevents.Event {
	event := NewBootstrapEvent(eventType, data)
	event.SetExtension("step", step)

	return event
}
