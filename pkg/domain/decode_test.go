package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/domain"
)

func TestAnswersFromMap(t *testing.T) {
	a, err := domain.AnswersFromMap(map[string]any{
		"motivation":   "clear_goal",
		"life_stage":   domain.StageCollege,
		"college_year": "third",
		"commitment":   true, // weakly typed
	})
	require.NoError(t, err)

	assert.Equal(t, "clear_goal", a.Get(domain.FieldMotivation))
	assert.Equal(t, "third", a.Get(domain.FieldCollegeYear))
	assert.True(t, a.Committed)
}

func TestAnswersFromMapRejectsUnknownKeys(t *testing.T) {
	_, err := domain.AnswersFromMap(map[string]any{
		"favorite_color": "blue",
	})
	require.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Contains(t, err.Error(), "favorite_color")
}

func TestAnswersFromMapAppliesInvalidation(t *testing.T) {
	// Values apply in collection order through Set, so the branch sub-record
	// matches the life_stage tag.
	a, err := domain.AnswersFromMap(map[string]any{
		"life_stage":   domain.StageCollege,
		"college_year": "first",
	})
	require.NoError(t, err)
	assert.Nil(t, a.School)
	assert.NotNil(t, a.College)
	assert.Equal(t, "first", a.Get(domain.FieldCollegeYear))
}
