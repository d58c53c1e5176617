package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	types "github.com/ipiloni/phishintel/types"
	zap "go.uber.org/zap"
)

// Step is a unit of startup work that must finish before dependent code runs
type Step interface {
	Name() string
	Run(ctx context.Context) error
}

type funcStep struct {
	name string
	fn   func(ctx context.Context) error
}

func (s *funcStep) Name() string                  { return s.name }
func (s *funcStep) Run(ctx context.Context) error { return s.fn(ctx) }

// NewStep wraps a function as a named startup step
func NewStep(name string, fn func(ctx context.Context) error) Step {
	return &funcStep{name: name, fn: fn}
}

// Sequencer runs startup steps in registration order on its own goroutine
// and releases waiters once every step has finished. A failing step stops
// the sequence; waiters are still released and observe the error.
type Sequencer struct {
	logger *zap.Logger
	events chan<- cloudevents.Event

	mu      sync.Mutex
	steps   []Step
	started bool

	ready chan struct{}
	err   error
}

// NewSequencer creates an empty startup sequencer
func NewSequencer(logger *zap.Logger) *Sequencer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Sequencer{
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// WithEvents publishes step lifecycle events on the channel without blocking
func (s *Sequencer) WithEvents(events chan<- cloudevents.Event) *Sequencer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = events
	return s
}

// Add registers steps. Steps added after Start are ignored.
func (s *Sequencer) Add(steps ...Step) *Sequencer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		s.logger.Warn("sequencer already started, ignoring steps", zap.Int("count", len(steps)))
		return s
	}

	for _, step := range steps {
		if step != nil {
			s.steps = append(s.steps, step)
		}
	}
	return s
}

// Start launches the steps in the background. Calling it again is a no-op.
func (s *Sequencer) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)
	s.mu.Unlock()

	go s.run(ctx, steps)
}

// Run starts the sequence and waits for it to finish
func (s *Sequencer) Run(ctx context.Context) error {
	s.Start(ctx)
	return s.Wait(ctx)
}

// Ready is closed once every step has finished or one has failed
func (s *Sequencer) Ready() <-chan struct{} {
	return s.ready
}

// Wait blocks until the sequence is done or ctx ends
func (s *Sequencer) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Go runs fn on a new goroutine once startup has completed successfully.
// If startup fails or ctx ends first, fn is not run.
func (s *Sequencer) Go(ctx context.Context, fn func(ctx context.Context)) {
	go func() {
		if err := s.Wait(ctx); err != nil {
			s.logger.Warn("startup did not complete, dependent not started", zap.Error(err))
			return
		}
		fn(ctx)
	}()
}

func (s *Sequencer) run(ctx context.Context, steps []Step) {
	defer close(s.ready)

	start := time.Now()
	s.logger.Info("starting startup sequence", zap.Int("steps", len(steps)))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			s.err = fmt.Errorf("startup cancelled before step %s: %w", step.Name(), err)
			s.logger.Warn("startup sequence cancelled", zap.String("step", step.Name()), zap.Error(err))
			return
		}

		s.publish(types.NewStepEvent(types.EventStepStarted, step.Name(), map[string]any{}))
		stepStart := time.Now()

		if err := step.Run(ctx); err != nil {
			s.err = fmt.Errorf("startup step %s failed: %w", step.Name(), err)
			s.logger.Error("startup step failed", zap.String("step", step.Name()), zap.Error(err))
			s.publish(types.NewStepEvent(types.EventStepFailed, step.Name(), map[string]any{"error": err.Error()}))
			return
		}

		s.logger.Debug("startup step completed",
			zap.String("step", step.Name()),
			zap.Duration("duration", time.Since(stepStart)))
		s.publish(types.NewStepEvent(types.EventStepCompleted, step.Name(), map[string]any{}))
	}

	s.logger.Info("startup sequence completed", zap.Duration("duration", time.Since(start)))
	s.publish(types.NewBootstrapEvent(types.EventStartupReady, map[string]any{"steps": len(steps)}))
}

func (s *Sequencer) publish(event cloudevents.Event) {
	s.mu.Lock()
	events := s.events
	s.mu.Unlock()

	if events == nil {
		return
	}

	select {
	case events <- event:
	default:
		s.logger.Debug("event channel full, dropping event", zap.String("type", event.Type()))
	}
}
