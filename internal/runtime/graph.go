package runtime

import "github.com/lumora-app/intake/pkg/domain"

// universalPrefix is the fixed opening sequence common to every branch.
var universalPrefix = []domain.StepID{
	domain.StepMotivation,
	domain.StepReadiness,
	domain.StepLifeStage,
}

// PrefixLen is the length of the universal prefix.
const PrefixLen = 3

// BuildSteps derives the ordered step list from the answer state alone.
// It is pure and deterministic: the whole graph is rebuilt from scratch on
// every call, so a stale branch step can never linger after a branch change.
// A step is appended only once its prerequisite field has been answered.
func BuildSteps(a *domain.Answers) []domain.StepID {
	steps := make([]domain.StepID, 0, 16)
	steps = append(steps, universalPrefix...)

	if a == nil || a.LifeStage == "" {
		return steps
	}

	switch a.LifeStage {
	case domain.StageSchool:
		steps = appendSchool(steps, a.School)
	case domain.StageCollege:
		steps = appendCollege(steps, a.College)
	case domain.StagePostgraduate, domain.StageWorking:
		steps = append(steps, domain.StepCareerGoal, domain.StepTransitionTimeline)
	}

	// Closing sequence, appended for every taken branch.
	steps = append(steps,
		domain.StepDailyTime,
		domain.StepAmbitionEffort,
		domain.StepStressResponse,
		domain.StepCommitment,
		domain.StepPersonalDetails,
	)
	return steps
}

func appendSchool(steps []domain.StepID, s *domain.SchoolAnswers) []domain.StepID {
	steps = append(steps, domain.StepSchoolClass)
	if s == nil || s.Class == "" {
		return steps
	}
	if domain.IsSeniorClass(s.Class) {
		steps = append(steps, domain.StepSchoolStream)
	}
	steps = append(steps, domain.StepCompetitiveIntent)
	switch {
	case s.CompetitiveIntent == domain.IntentSerious:
		steps = append(steps,
			domain.StepJEEPrepLevel,
			domain.StepMockTestResponse,
			domain.StepDropYear,
		)
	case s.CompetitiveIntent != "":
		steps = append(steps, domain.StepAlternativeFocus)
	}
	return steps
}

func appendCollege(steps []domain.StepID, c *domain.CollegeAnswers) []domain.StepID {
	steps = append(steps, domain.StepCollegeYear, domain.StepCollegeFocus)
	if c == nil {
		return steps
	}
	switch c.Focus {
	case domain.FocusPlacements:
		steps = append(steps,
			domain.StepPlacementPrep,
			domain.StepCodingConfidence,
			domain.StepInterviewExperience,
		)
	case domain.FocusHigherStudies:
		steps = append(steps,
			domain.StepHigherStudyGoal,
			domain.StepEntranceExamPrep,
		)
	}
	return steps
}
