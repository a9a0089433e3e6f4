package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake"
	"github.com/lumora-app/intake/pkg/domain"
)

func TestBuildOverlayMarksAnsweredAndCurrent(t *testing.T) {
	flow, err := intake.New(intake.WithInitialAnswers(map[string]any{
		"motivation": "clear_goal",
		"readiness":  "all_in",
		"life_stage": domain.StageSchool,
	}))
	require.NoError(t, err)

	overlay := buildOverlay(flow.Steps(), flow.Answers())

	assert.Equal(t, []domain.StepID{
		domain.StepMotivation,
		domain.StepReadiness,
		domain.StepLifeStage,
	}, overlay.AnsweredSteps)
	assert.Equal(t, domain.StepSchoolClass, overlay.CurrentStep)
}

func TestBuildOverlayEmptyAnswers(t *testing.T) {
	flow, err := intake.New()
	require.NoError(t, err)

	overlay := buildOverlay(flow.Steps(), flow.Answers())
	assert.Empty(t, overlay.AnsweredSteps)
	assert.Equal(t, domain.StepMotivation, overlay.CurrentStep)
}
