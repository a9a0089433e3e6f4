package intake

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lumora-app/intake/internal/runtime"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/ports"
)

// Flow is the high-level entry point for one onboarding questionnaire
// instance. It wraps the internal runtime controller and provides a
// simplified API for hosts (CLI, HTTP, embedding applications).
type Flow struct {
	ctrl    *runtime.Controller
	opts    []runtime.Option
	logger  *slog.Logger
	initial map[string]any
}

// Option defines a functional option for configuring the Flow.
type Option func(*Flow)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(f *Flow) {
		f.opts = append(f.opts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithLogger sets a custom structured logger for the flow.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Flow) {
		f.logger = logger
		f.opts = append(f.opts, runtime.WithLogger(logger))
	}
}

// WithProfileService injects the persistence service called on Submit.
func WithProfileService(svc ports.ProfileService) Option {
	return func(f *Flow) {
		f.opts = append(f.opts, runtime.WithProfileService(svc))
	}
}

// WithAutoAdvanceDelay configures the debounce delay between answering a
// choice step and moving forward. Zero disables the delay (synchronous
// advance), which hosts with their own pacing use.
func WithAutoAdvanceDelay(d time.Duration) Option {
	return func(f *Flow) {
		f.opts = append(f.opts, runtime.WithAutoAdvanceDelay(d))
	}
}

// WithInitialAnswers seeds the flow from a loosely-typed answer map, e.g.
// answers recovered from an earlier partial run. Unknown keys are rejected.
func WithInitialAnswers(answers map[string]any) Option {
	return func(f *Flow) {
		f.initial = answers
	}
}

// New initializes a flow at the first universal step.
func New(opts ...Option) (*Flow, error) {
	f := &Flow{}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if f.initial != nil {
		seeded, err := domain.AnswersFromMap(f.initial)
		if err != nil {
			return nil, err
		}
		f.opts = append(f.opts, runtime.WithAnswers(seeded))
	}

	f.ctrl = runtime.NewController(f.opts...)
	return f, nil
}

// View returns the render contract for the current step: definition,
// progress, gate result, answer snapshot, and the derived summary when the
// terminal step is showing.
func (f *Flow) View() domain.View {
	return f.ctrl.View()
}

// Steps returns the current ordered step list.
func (f *Flow) Steps() []domain.StepID {
	return f.ctrl.Steps()
}

// Position returns the current navigation position.
func (f *Flow) Position() int {
	return f.ctrl.Position()
}

// Answers returns a read-only snapshot of the answer state.
func (f *Flow) Answers() map[domain.Field]string {
	return f.ctrl.Answers()
}

// Answer records a field value and, for a completed choice step, schedules
// the auto-advance. The most recent action always supersedes a pending one.
func (f *Flow) Answer(ctx context.Context, field domain.Field, value string) error {
	return f.ctrl.Answer(ctx, field, value)
}

// Back moves one step backwards, cancelling any pending auto-advance.
func (f *Flow) Back() {
	f.ctrl.Back()
}

// Next moves forward manually; fails with domain.ErrStepIncomplete when the
// current step's validation gate does not pass.
func (f *Flow) Next() error {
	return f.ctrl.Next()
}

// Submit sends the normalized payload to the profile service exactly once.
func (f *Flow) Submit(ctx context.Context) error {
	return f.ctrl.Submit(ctx)
}

// Completed reports whether the flow submitted successfully.
func (f *Flow) Completed() bool {
	return f.ctrl.Completed()
}

// Restore loads a persisted session into the flow.
func (f *Flow) Restore(sess *domain.Session) {
	f.ctrl.Restore(sess)
}

// Session exports the flow state as a persistable session record.
func (f *Flow) Session(id string) *domain.Session {
	return f.ctrl.Session(id)
}
