package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/domain"
)

func set(t *testing.T, a *domain.Answers, pairs ...string) {
	t.Helper()
	require.Equal(t, 0, len(pairs)%2)
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, a.Set(domain.Field(pairs[i]), pairs[i+1]))
	}
}

func TestSetRejectsUnknownField(t *testing.T) {
	a := domain.NewAnswers()
	err := a.Set("favorite_color", "blue")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestSetTrimsWhitespace(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a, "name", "  Asha Rao  ")
	assert.Equal(t, "Asha Rao", a.Get(domain.FieldName))
}

func TestLifeStageSwitchDropsBranchAnswers(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"life_stage", domain.StageSchool,
		"school_class", "12",
		"school_stream", "science",
		"competitive_intent", domain.IntentSerious,
		"jee_prep_level", "halfway",
	)
	require.Equal(t, "12", a.Get(domain.FieldSchoolClass))

	set(t, a, "life_stage", domain.StageCollege)

	assert.Empty(t, a.Get(domain.FieldSchoolClass))
	assert.Empty(t, a.Get(domain.FieldSchoolStream))
	assert.Empty(t, a.Get(domain.FieldCompetitiveIntent))
	assert.Empty(t, a.Get(domain.FieldJEEPrepLevel))
	assert.Nil(t, a.School)
	assert.NotNil(t, a.College)

	// Shared fields survive the switch.
	set(t, a, "motivation", "clear_goal")
	set(t, a, "life_stage", domain.StageWorking)
	assert.Equal(t, "clear_goal", a.Get(domain.FieldMotivation))
}

func TestLifeStageRepeatIsNoOp(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"life_stage", domain.StageSchool,
		"school_class", "10",
	)
	set(t, a, "life_stage", domain.StageSchool)
	assert.Equal(t, "10", a.Get(domain.FieldSchoolClass))
}

func TestSchoolClassDowngradeClearsStream(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"life_stage", domain.StageSchool,
		"school_class", "11",
		"school_stream", "commerce",
	)

	set(t, a, "school_class", "9")
	assert.Empty(t, a.Get(domain.FieldSchoolStream))
}

func TestSchoolClassSeniorSwitchKeepsStream(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"life_stage", domain.StageSchool,
		"school_class", "11",
		"school_stream", "science",
		"school_class", "12",
	)
	assert.Equal(t, "science", a.Get(domain.FieldSchoolStream))
}

func TestCompetitiveIntentChangeResetsDownstream(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"life_stage", domain.StageSchool,
		"school_class", "12",
		"competitive_intent", domain.IntentSerious,
		"jee_prep_level", "halfway",
		"mock_test_response", "analyze_mistakes",
		"drop_year", "maybe",
	)

	set(t, a, "competitive_intent", domain.IntentExploring)
	assert.Empty(t, a.Get(domain.FieldJEEPrepLevel))
	assert.Empty(t, a.Get(domain.FieldMockTestResponse))
	assert.Empty(t, a.Get(domain.FieldDropYear))

	set(t, a, "alternative_focus", "skills")
	set(t, a, "competitive_intent", domain.IntentSerious)
	assert.Empty(t, a.Get(domain.FieldAlternativeFocus))
}

func TestCollegeFocusChangeResetsDownstream(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"life_stage", domain.StageCollege,
		"college_year", "third",
		"college_focus", domain.FocusPlacements,
		"placement_prep", "structured",
		"coding_confidence", "confident",
	)

	set(t, a, "college_focus", domain.FocusHigherStudies)
	assert.Empty(t, a.Get(domain.FieldPlacementPrep))
	assert.Empty(t, a.Get(domain.FieldCodingConfidence))
	assert.Equal(t, "third", a.Get(domain.FieldCollegeYear))

	set(t, a, "higher_study_goal", "mba")
	set(t, a, "college_focus", domain.FocusPlacements)
	assert.Empty(t, a.Get(domain.FieldHigherStudyGoal))
}

func TestCommitmentParsing(t *testing.T) {
	a := domain.NewAnswers()
	for _, v := range []string{"y", "YES", "true", "1"} {
		set(t, a, "commitment", v)
		assert.True(t, a.Committed, v)
		set(t, a, "commitment", "no")
		assert.False(t, a.Committed)
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"life_stage", domain.StageSchool,
		"school_class", "10",
	)

	clone := a.Clone()
	set(t, clone, "school_class", "12")

	assert.Equal(t, "10", a.Get(domain.FieldSchoolClass))
	assert.Equal(t, "12", clone.Get(domain.FieldSchoolClass))
}

func TestCloneNilReceiver(t *testing.T) {
	var a *domain.Answers
	clone := a.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone.Snapshot())
}

func TestSnapshotContainsOnlySetFields(t *testing.T) {
	a := domain.NewAnswers()
	set(t, a,
		"motivation", "clear_goal",
		"life_stage", domain.StagePostgraduate,
		"career_goal", domain.CareerSwitchField,
		"commitment", "yes",
	)

	snap := a.Snapshot()
	assert.Equal(t, map[domain.Field]string{
		domain.FieldMotivation: "clear_goal",
		domain.FieldLifeStage:  domain.StagePostgraduate,
		domain.FieldCareerGoal: domain.CareerSwitchField,
		domain.FieldCommitment: "true",
	}, snap)
}
