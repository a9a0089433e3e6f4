package profile

import "github.com/lumora-app/intake/pkg/domain"

// weeklyHours maps the coarse daily-time choice to a weekly-hours estimate.
var weeklyHours = map[string]int{
	domain.TimeUnderOneHour: 5,
	domain.TimeOneToTwo:     10,
	domain.TimeTwoToFour:    20,
	domain.TimeFourPlus:     30,
}

// defaultWeeklyHours is used when daily_time is unanswered or unrecognized:
// the lowest bucket, never an error.
const defaultWeeklyHours = 5

// goalStatements maps the branch-specific direction answer to a
// human-readable goal. Exactly one direction field is populated per
// completed flow; the first populated one wins.
var goalStatements = map[string]string{
	domain.IntentSerious:        "Crack JEE with a structured preparation plan",
	domain.IntentExploring:      "Build strong fundamentals while keeping options open",
	domain.IntentNotInterested:  "Excel in school beyond the entrance-exam track",
	domain.FocusPlacements:      "Land a strong placement offer with a role-ready skill set",
	domain.FocusHigherStudies:   "Get into a strong higher-studies program",
	domain.FocusExploring:       "Explore directions and commit to one",
	domain.CareerSwitchField:    "Transition into a new field with a guided plan",
	domain.CareerGrowCurrent:    "Grow into the next level of the current role",
	domain.CareerStartSomething: "Build the foundation to start something of your own",
}

const defaultGoalStatement = "Make steady, measurable progress every week"

// contact fields and the commitment flag are hoisted out of the raw answer
// blob; everything else is copied verbatim for downstream analytics.
var blobExclusions = map[domain.Field]struct{}{
	domain.FieldName:        {},
	domain.FieldPhoneNumber: {},
	domain.FieldDateOfBirth: {},
	domain.FieldCommitment:  {},
}

// ToPayload produces the normalized submission record. It is deterministic
// and total: missing fields default gracefully rather than failing, even
// though upstream validation should have filled them.
func ToPayload(a *domain.Answers, acceptedTerms bool) domain.SubmissionPayload {
	if a == nil {
		a = domain.NewAnswers()
	}
	return domain.SubmissionPayload{
		EducationStage:          educationStage(a),
		WeeklyHours:             hours(a.DailyTime),
		ValidationMode:          domain.ValidationModeAutomatic,
		OnboardingAcceptedTerms: acceptedTerms,
		OnboardingData:          rawBlob(a),
		GoalStatement:           goalStatement(a),
		Name:                    a.Name,
		PhoneNumber:             a.Phone,
		DateOfBirth:             a.DateOfBirth,
	}
}

// educationStage folds life stage plus school class into the four coarse
// backend buckets.
func educationStage(a *domain.Answers) string {
	switch a.LifeStage {
	case domain.StageSchool:
		if a.School != nil && domain.IsSeniorClass(a.School.Class) {
			return domain.StageClassElevenTwelve
		}
		return domain.StageUptoClassTen
	case domain.StageCollege:
		return domain.StageUndergraduate
	case domain.StagePostgraduate, domain.StageWorking:
		return domain.StagePostgrad
	}
	return domain.StageUptoClassTen
}

func hours(dailyTime string) int {
	if h, ok := weeklyHours[dailyTime]; ok {
		return h
	}
	return defaultWeeklyHours
}

func goalStatement(a *domain.Answers) string {
	var direction string
	switch {
	case a.School != nil && a.School.CompetitiveIntent != "":
		direction = a.School.CompetitiveIntent
	case a.College != nil && a.College.Focus != "":
		direction = a.College.Focus
	case a.Career != nil && a.Career.Goal != "":
		direction = a.Career.Goal
	}
	if stmt, ok := goalStatements[direction]; ok {
		return stmt
	}
	return defaultGoalStatement
}

func rawBlob(a *domain.Answers) map[string]string {
	blob := make(map[string]string)
	for field, value := range a.Snapshot() {
		if _, excluded := blobExclusions[field]; excluded {
			continue
		}
		blob[string(field)] = value
	}
	return blob
}
