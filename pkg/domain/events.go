package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStepEnter EventType = "step_enter"
	EventAnswer    EventType = "answer"
	EventSubmit    EventType = "submit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent fires when the flow lands on a step, whether via auto-advance,
// manual navigation, or a graph-shape clamp.
type StepEvent struct {
	EventBase
	StepID   StepID `json:"step_id"`
	Position int    `json:"position"`
	Total    int    `json:"total"`
}

// AnswerEvent fires when a field is written.
type AnswerEvent struct {
	EventBase
	Field Field  `json:"field"`
	Value string `json:"value"`
}

// SubmitEvent fires once per submission attempt.
type SubmitEvent struct {
	EventBase
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for flow observability. All hooks are
// optional and invoked synchronously; keep them fast.
type LifecycleHooks struct {
	OnStepEnter func(context.Context, *StepEvent)
	OnAnswer    func(context.Context, *AnswerEvent)
	OnSubmit    func(context.Context, *SubmitEvent)
}
