package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumora-app/intake/pkg/domain"
)

// Metrics holds the Prometheus collectors for the intake flow.
type Metrics struct {
	stepViews      *prometheus.CounterVec
	answers        *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	submitDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg. Pass
// prometheus.DefaultRegisterer to use the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stepViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_step_views_total",
				Help: "Total number of step views, by step.",
			},
			[]string{"step_id"},
		),
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_answers_total",
				Help: "Total number of answers recorded, by field.",
			},
			[]string{"field"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_submissions_total",
				Help: "Total number of submission attempts, by outcome.",
			},
			[]string{"outcome"},
		),
		submitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "intake_submit_duration_seconds",
				Help:    "Duration of profile submission calls.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.stepViews, m.answers, m.submissions, m.submitDuration)
	return m
}

// Hooks exposes the collectors as lifecycle hooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(_ context.Context, e *domain.StepEvent) {
			m.stepViews.WithLabelValues(string(e.StepID)).Inc()
		},
		OnAnswer: func(_ context.Context, e *domain.AnswerEvent) {
			m.answers.WithLabelValues(string(e.Field)).Inc()
		},
		OnSubmit: func(_ context.Context, e *domain.SubmitEvent) {
			outcome := "success"
			if e.Err != nil {
				outcome = "failure"
			}
			m.submissions.WithLabelValues(outcome).Inc()
			m.submitDuration.Observe(e.Duration.Seconds())
		},
	}
}

// Merge combines two hook sets; both callbacks fire for each event.
func Merge(a, b domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			if a.OnStepEnter != nil {
				a.OnStepEnter(ctx, e)
			}
			if b.OnStepEnter != nil {
				b.OnStepEnter(ctx, e)
			}
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			if a.OnAnswer != nil {
				a.OnAnswer(ctx, e)
			}
			if b.OnAnswer != nil {
				b.OnAnswer(ctx, e)
			}
		},
		OnSubmit: func(ctx context.Context, e *domain.SubmitEvent) {
			if a.OnSubmit != nil {
				a.OnSubmit(ctx, e)
			}
			if b.OnSubmit != nil {
				b.OnSubmit(ctx, e)
			}
		},
	}
}
