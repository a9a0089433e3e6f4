package runtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/lumora-app/intake/internal/logging"
	"github.com/lumora-app/intake/pkg/catalog"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/ports"
	"github.com/lumora-app/intake/pkg/profile"
)

// DefaultAutoAdvanceDelay is the UI feedback window between answering a
// choice and moving to the next step.
const DefaultAutoAdvanceDelay = 400 * time.Millisecond

// Controller owns one flow instance: the answer record, the position in the
// derived step list, the single cancellable auto-advance timer, and the
// submission guard. All methods are safe for concurrent use, though the
// intended model is one caller plus the timer callback.
type Controller struct {
	mu         sync.Mutex
	answers    *domain.Answers
	position   int
	delay      time.Duration
	pending    *time.Timer
	pendingGen int
	submitting bool
	completed  bool

	profileSvc ports.ProfileService
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
}

// Option configures the Controller.
type Option func(*Controller)

// WithLogger sets a structured logger for internal events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithProfileService sets the persistence service used by Submit.
func WithProfileService(svc ports.ProfileService) Option {
	return func(c *Controller) {
		c.profileSvc = svc
	}
}

// WithAutoAdvanceDelay overrides the auto-advance delay. Zero or negative
// means choice answers advance synchronously; hosts that own their own
// pacing (the HTTP adapter) use that mode.
func WithAutoAdvanceDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.delay = d
	}
}

// WithAnswers seeds the controller with an existing answer record.
func WithAnswers(a *domain.Answers) Option {
	return func(c *Controller) {
		if a != nil {
			c.answers = a
		}
	}
}

// NewController creates a flow controller at position 0 with empty answers.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		answers: domain.NewAnswers(),
		delay:   DefaultAutoAdvanceDelay,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Steps returns the current step list derived from the answers.
func (c *Controller) Steps() []domain.StepID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return BuildSteps(c.answers)
}

// Position returns the current navigation position.
func (c *Controller) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Completed reports whether the flow submitted successfully.
func (c *Controller) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

// Answers returns a read-only snapshot of the answer state.
func (c *Controller) Answers() map[domain.Field]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers.Snapshot()
}

// View assembles the render contract for the presentation layer.
func (c *Controller) View() domain.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	steps := BuildSteps(c.answers)
	id := steps[c.position]

	view := domain.View{
		Position:   c.position,
		Total:      len(steps),
		CanAdvance: CanAdvance(id, c.answers),
		AtEnd:      c.position == len(steps)-1,
		Answers:    c.answers.Snapshot(),
	}

	if id == domain.StepCommitment {
		summary := profile.Derive(c.answers)
		view.Summary = &summary
		view.Step = domain.StepDefinition{
			ID:     domain.StepCommitment,
			Kind:   domain.StepTerminal,
			Prompt: catalog.TerminalPrompt,
			Field:  domain.FieldCommitment,
		}
		return view
	}

	def, _ := catalog.Get(id)
	view.Step = def
	return view
}

// Back moves one step backwards, cancelling any pending auto-advance.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()
	if c.position > 0 {
		c.position--
		c.emitStepEnterLocked()
	}
}

// Next moves one step forward manually. It fails with ErrStepIncomplete when
// the current step's gate does not pass.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()
	steps := BuildSteps(c.answers)
	if !CanAdvance(steps[c.position], c.answers) {
		return domain.ErrStepIncomplete
	}
	if c.position < len(steps)-1 {
		c.position++
		c.emitStepEnterLocked()
	}
	return nil
}

// Answer writes a field value, rebuilds the step graph, and clamps the
// position into the new bounds. When the answer completes the current choice
// step it schedules the debounced auto-advance. A newer action always cancels
// and supersedes a pending advance; at most one is ever scheduled.
func (c *Controller) Answer(ctx context.Context, field domain.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return domain.ErrFlowCompleted
	}

	c.cancelPendingLocked()
	if err := c.answers.Set(field, value); err != nil {
		return err
	}

	steps := BuildSteps(c.answers)
	if c.position > len(steps)-1 {
		// Graph shrank below the current position: clamp immediately,
		// no transition is scheduled for this case.
		c.position = len(steps) - 1
		c.emitStepEnterLocked()
	}

	if c.hooks.OnAnswer != nil {
		c.hooks.OnAnswer(ctx, &domain.AnswerEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAnswer},
			Field:     field,
			Value:     value,
		})
	}

	current := steps[c.position]
	def, ok := catalog.Get(current)
	if !ok || def.Kind != domain.StepChoice || def.Field != field {
		return nil
	}
	if !CanAdvance(current, c.answers) || c.position == len(steps)-1 {
		return nil
	}

	if c.delay <= 0 {
		c.advanceLocked()
		return nil
	}

	gen := c.pendingGen
	c.pending = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A later action superseded this timer while it was firing.
		if gen != c.pendingGen || c.pending == nil {
			return
		}
		c.pending = nil
		c.advanceLocked()
	})
	return nil
}

// Submit maps the answers into the backend payload and invokes the profile
// service exactly once. Re-entrant calls while a submission is pending are
// rejected; on failure the answers are retained so the user may resubmit.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.completed {
		c.mu.Unlock()
		return domain.ErrFlowCompleted
	}
	if c.submitting {
		c.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	if c.profileSvc == nil {
		c.mu.Unlock()
		return errors.New("no profile service configured")
	}
	if !c.answers.Committed || !CanAdvance(domain.StepPersonalDetails, c.answers) {
		c.mu.Unlock()
		return domain.ErrStepIncomplete
	}

	// Advancing into submission cancels any pending auto-advance; the timer
	// and the in-flight call are mutually exclusive from here on.
	c.cancelPendingLocked()
	c.submitting = true
	payload := profile.ToPayload(c.answers, c.answers.Committed)
	c.mu.Unlock()

	started := time.Now()
	err := c.profileSvc.UpdateProfile(ctx, payload)

	c.mu.Lock()
	c.submitting = false
	if err == nil {
		c.completed = true
	}
	hooks := c.hooks
	c.mu.Unlock()

	if hooks.OnSubmit != nil {
		hooks.OnSubmit(ctx, &domain.SubmitEvent{
			EventBase: domain.EventBase{Timestamp: started, Type: domain.EventSubmit},
			Duration:  time.Since(started),
			Err:       err,
		})
	}

	if err != nil {
		c.logger.Warn("profile submission failed", "err", err)
		var subErr *domain.SubmissionError
		if errors.As(err, &subErr) {
			return err
		}
		return &domain.SubmissionError{Message: "persistence service rejected the profile", Err: err}
	}
	return nil
}

// Restore loads a persisted session into the controller, clamping the saved
// position into the bounds of the rebuilt graph.
func (c *Controller) Restore(sess *domain.Session) {
	if sess == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()
	c.answers = sess.Answers.Clone()
	c.completed = sess.Completed

	steps := BuildSteps(c.answers)
	c.position = sess.Position
	if c.position > len(steps)-1 {
		c.position = len(steps) - 1
	}
	if c.position < 0 {
		c.position = 0
	}
}

// Session exports the controller state as a persistable session record.
func (c *Controller) Session(id string) *domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &domain.Session{
		ID:        id,
		Answers:   c.answers.Clone(),
		Position:  c.position,
		Completed: c.completed,
		UpdatedAt: time.Now().UTC(),
	}
}

func (c *Controller) advanceLocked() {
	steps := BuildSteps(c.answers)
	if c.position < len(steps)-1 {
		c.position++
		c.emitStepEnterLocked()
	}
}

// cancelPendingLocked stops any scheduled advance. Bumping the generation
// invalidates a callback that already fired and is waiting on the mutex.
func (c *Controller) cancelPendingLocked() {
	c.pendingGen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) emitStepEnterLocked() {
	if c.hooks.OnStepEnter == nil {
		return
	}
	steps := BuildSteps(c.answers)
	c.hooks.OnStepEnter(context.Background(), &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepEnter},
		StepID:    steps[c.position],
		Position:  c.position,
		Total:     len(steps),
	})
}
