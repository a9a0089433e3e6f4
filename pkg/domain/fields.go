package domain

// Field identifies a single answer slot in the flow.
// The set of fields is fixed at compile time; setting anything outside this
// set is a caller programming error, not a runtime condition.
type Field string

const (
	// Universal prefix fields, asked on every branch.
	FieldMotivation Field = "motivation"
	FieldReadiness  Field = "readiness"
	FieldLifeStage  Field = "life_stage"

	// School branch.
	FieldSchoolClass       Field = "school_class"
	FieldSchoolStream      Field = "school_stream"
	FieldCompetitiveIntent Field = "competitive_intent"
	FieldJEEPrepLevel      Field = "jee_prep_level"
	FieldMockTestResponse  Field = "mock_test_response"
	FieldDropYear          Field = "drop_year"
	FieldAlternativeFocus  Field = "alternative_focus"

	// College branch.
	FieldCollegeYear         Field = "college_year"
	FieldCollegeFocus        Field = "college_focus"
	FieldPlacementPrep       Field = "placement_prep"
	FieldCodingConfidence    Field = "coding_confidence"
	FieldInterviewExperience Field = "interview_experience"
	FieldHigherStudyGoal     Field = "higher_study_goal"
	FieldEntranceExamPrep    Field = "entrance_exam_prep"

	// Postgraduate / working branch.
	FieldCareerGoal         Field = "career_goal"
	FieldTransitionTimeline Field = "transition_timeline"

	// Closing sequence, shared by every branch.
	FieldDailyTime      Field = "daily_time"
	FieldAmbitionEffort Field = "ambition_effort"
	FieldStressResponse Field = "stress_response"
	FieldCommitment     Field = "commitment"

	// Personal details, collected on the final screen.
	FieldName        Field = "name"
	FieldPhoneNumber Field = "phone_number"
	FieldDateOfBirth Field = "date_of_birth"
)

// Life-stage values. LifeStage is the top-level branching field: changing it
// discards every branch-local answer.
const (
	StageSchool       = "school"
	StageCollege      = "college"
	StagePostgraduate = "postgraduate"
	StageWorking      = "working"
)

// School class values. ClassEleven and ClassTwelve are the senior values
// that unlock the stream question.
const (
	ClassEight  = "8"
	ClassNine   = "9"
	ClassTen    = "10"
	ClassEleven = "11"
	ClassTwelve = "12"
)

// Competitive-intent values. IntentSerious unlocks the exam-specific steps;
// any other answered value routes to the alternative-focus step.
const (
	IntentSerious       = "yes_serious"
	IntentExploring     = "exploring"
	IntentNotInterested = "not_interested"
)

// College-focus values.
const (
	FocusPlacements    = "placements"
	FocusHigherStudies = "higher_studies"
	FocusExploring     = "still_exploring"
)

// Career-goal values (postgraduate/working branch).
const (
	CareerSwitchField    = "switch_field"
	CareerGrowCurrent    = "grow_current"
	CareerStartSomething = "start_something"
)

// Daily-time commitment values, mapped to weekly hours by the backend mapper.
const (
	TimeUnderOneHour = "under_1hr"
	TimeOneToTwo     = "1_2hrs"
	TimeTwoToFour    = "2_4hrs"
	TimeFourPlus     = "4plus_hrs"
)

// IsSeniorClass reports whether a school class value unlocks the
// stream-choice step.
func IsSeniorClass(class string) bool {
	return class == ClassEleven || class == ClassTwelve
}
