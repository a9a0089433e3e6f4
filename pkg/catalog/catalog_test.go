package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/catalog"
	"github.com/lumora-app/intake/pkg/domain"
)

var catalogSteps = []domain.StepID{
	domain.StepMotivation,
	domain.StepReadiness,
	domain.StepLifeStage,
	domain.StepSchoolClass,
	domain.StepSchoolStream,
	domain.StepCompetitiveIntent,
	domain.StepJEEPrepLevel,
	domain.StepMockTestResponse,
	domain.StepDropYear,
	domain.StepAlternativeFocus,
	domain.StepCollegeYear,
	domain.StepCollegeFocus,
	domain.StepPlacementPrep,
	domain.StepCodingConfidence,
	domain.StepInterviewExperience,
	domain.StepHigherStudyGoal,
	domain.StepEntranceExamPrep,
	domain.StepCareerGoal,
	domain.StepTransitionTimeline,
	domain.StepDailyTime,
	domain.StepAmbitionEffort,
	domain.StepStressResponse,
	domain.StepPersonalDetails,
}

func TestEveryStepIsWellFormed(t *testing.T) {
	for _, id := range catalogSteps {
		def, ok := catalog.Get(id)
		require.True(t, ok, id)
		assert.Equal(t, id, def.ID)
		assert.NotEmpty(t, def.Prompt, id)

		switch def.Kind {
		case domain.StepChoice:
			assert.NotEmpty(t, def.Field, id)
			require.GreaterOrEqual(t, len(def.Options), 2, id)
			seen := make(map[string]bool)
			for _, opt := range def.Options {
				assert.NotEmpty(t, opt.Value, id)
				assert.NotEmpty(t, opt.Label, id)
				assert.False(t, seen[opt.Value], "duplicate option %s in %s", opt.Value, id)
				seen[opt.Value] = true
			}
		case domain.StepForm:
			require.NotEmpty(t, def.Inputs, id)
			for _, in := range def.Inputs {
				assert.NotEmpty(t, in.Field, id)
				assert.NotEmpty(t, in.Label, id)
			}
		default:
			t.Errorf("unexpected kind %q for %s", def.Kind, id)
		}
	}
}

func TestCommitmentHasNoCatalogEntry(t *testing.T) {
	_, ok := catalog.Get(domain.StepCommitment)
	assert.False(t, ok)
}

func TestGetUnknownStep(t *testing.T) {
	_, ok := catalog.Get("no_such_step")
	assert.False(t, ok)
}

func TestFieldOf(t *testing.T) {
	assert.Equal(t, domain.FieldMotivation, catalog.FieldOf(domain.StepMotivation))
	assert.Equal(t, domain.FieldCommitment, catalog.FieldOf(domain.StepCommitment))
	assert.Equal(t, domain.FieldName, catalog.FieldOf(domain.StepPersonalDetails))
	assert.Equal(t, domain.Field(""), catalog.FieldOf("no_such_step"))
}
