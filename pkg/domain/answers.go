package domain

import (
	"strings"
)

// SchoolAnswers holds the fields that only exist on the school branch.
type SchoolAnswers struct {
	Class             string `json:"school_class,omitempty"`
	Stream            string `json:"school_stream,omitempty"`
	CompetitiveIntent string `json:"competitive_intent,omitempty"`
	JEEPrepLevel      string `json:"jee_prep_level,omitempty"`
	MockTestResponse  string `json:"mock_test_response,omitempty"`
	DropYear          string `json:"drop_year,omitempty"`
	AlternativeFocus  string `json:"alternative_focus,omitempty"`
}

// CollegeAnswers holds the fields that only exist on the college branch.
type CollegeAnswers struct {
	Year                string `json:"college_year,omitempty"`
	Focus               string `json:"college_focus,omitempty"`
	PlacementPrep       string `json:"placement_prep,omitempty"`
	CodingConfidence    string `json:"coding_confidence,omitempty"`
	InterviewExperience string `json:"interview_experience,omitempty"`
	HigherStudyGoal     string `json:"higher_study_goal,omitempty"`
	EntranceExamPrep    string `json:"entrance_exam_prep,omitempty"`
}

// CareerAnswers holds the fields shared by the postgraduate and working
// branches.
type CareerAnswers struct {
	Goal               string `json:"career_goal,omitempty"`
	TransitionTimeline string `json:"transition_timeline,omitempty"`
}

// Answers is the accumulated answer state of one onboarding flow.
//
// Branch-local fields live in optional sub-records keyed by the LifeStage
// tag. Switching the tag replaces the sub-record wholesale, so a stale
// branch answer cannot survive a branch change. All mutation goes through
// Set; consumers read via Get or Snapshot and never mutate directly.
type Answers struct {
	Motivation string `json:"motivation,omitempty"`
	Readiness  string `json:"readiness,omitempty"`
	LifeStage  string `json:"life_stage,omitempty"`

	School  *SchoolAnswers  `json:"school,omitempty"`
	College *CollegeAnswers `json:"college,omitempty"`
	Career  *CareerAnswers  `json:"career,omitempty"`

	DailyTime      string `json:"daily_time,omitempty"`
	AmbitionEffort string `json:"ambition_effort,omitempty"`
	StressResponse string `json:"stress_response,omitempty"`

	Committed bool `json:"committed,omitempty"`

	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone_number,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// NewAnswers returns an empty answer record.
func NewAnswers() *Answers {
	return &Answers{}
}

// Clone returns a deep copy. Sub-records are copied so the clone can be
// mutated without affecting the original.
func (a *Answers) Clone() *Answers {
	if a == nil {
		return NewAnswers()
	}
	next := *a
	if a.School != nil {
		s := *a.School
		next.School = &s
	}
	if a.College != nil {
		c := *a.College
		next.College = &c
	}
	if a.Career != nil {
		c := *a.Career
		next.Career = &c
	}
	return &next
}

// Set writes a field value and applies the invalidation rules for branching
// fields in the same update. It returns ErrUnknownField for a field outside
// the fixed set; every known field is accepted regardless of flow position.
func (a *Answers) Set(field Field, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldMotivation:
		a.Motivation = value
	case FieldReadiness:
		a.Readiness = value
	case FieldLifeStage:
		a.setLifeStage(value)
	case FieldSchoolClass:
		a.setSchoolClass(value)
	case FieldSchoolStream:
		a.school().Stream = value
	case FieldCompetitiveIntent:
		a.setCompetitiveIntent(value)
	case FieldJEEPrepLevel:
		a.school().JEEPrepLevel = value
	case FieldMockTestResponse:
		a.school().MockTestResponse = value
	case FieldDropYear:
		a.school().DropYear = value
	case FieldAlternativeFocus:
		a.school().AlternativeFocus = value
	case FieldCollegeYear:
		a.college().Year = value
	case FieldCollegeFocus:
		a.setCollegeFocus(value)
	case FieldPlacementPrep:
		a.college().PlacementPrep = value
	case FieldCodingConfidence:
		a.college().CodingConfidence = value
	case FieldInterviewExperience:
		a.college().InterviewExperience = value
	case FieldHigherStudyGoal:
		a.college().HigherStudyGoal = value
	case FieldEntranceExamPrep:
		a.college().EntranceExamPrep = value
	case FieldCareerGoal:
		a.career().Goal = value
	case FieldTransitionTimeline:
		a.career().TransitionTimeline = value
	case FieldDailyTime:
		a.DailyTime = value
	case FieldAmbitionEffort:
		a.AmbitionEffort = value
	case FieldStressResponse:
		a.StressResponse = value
	case FieldCommitment:
		a.Committed = isAffirmative(value)
	case FieldName:
		a.Name = value
	case FieldPhoneNumber:
		a.Phone = value
	case FieldDateOfBirth:
		a.DateOfBirth = value
	default:
		return ErrUnknownField
	}
	return nil
}

// setLifeStage is the top-level branch switch. A changed value drops every
// branch sub-record and allocates a fresh one for the new branch.
func (a *Answers) setLifeStage(value string) {
	if value == a.LifeStage {
		return
	}
	a.LifeStage = value
	a.School = nil
	a.College = nil
	a.Career = nil
	switch value {
	case StageSchool:
		a.School = &SchoolAnswers{}
	case StageCollege:
		a.College = &CollegeAnswers{}
	case StagePostgraduate, StageWorking:
		a.Career = &CareerAnswers{}
	}
}

func (a *Answers) setSchoolClass(value string) {
	s := a.school()
	if value == s.Class {
		return
	}
	s.Class = value
	// The stream question only exists for senior classes.
	if !IsSeniorClass(value) {
		s.Stream = ""
	}
}

func (a *Answers) setCompetitiveIntent(value string) {
	s := a.school()
	if value == s.CompetitiveIntent {
		return
	}
	// Reset whatever was downstream of the old answer.
	if s.CompetitiveIntent == IntentSerious {
		s.JEEPrepLevel = ""
		s.MockTestResponse = ""
		s.DropYear = ""
	} else if s.CompetitiveIntent != "" {
		s.AlternativeFocus = ""
	}
	s.CompetitiveIntent = value
}

func (a *Answers) setCollegeFocus(value string) {
	c := a.college()
	if value == c.Focus {
		return
	}
	if c.Focus == FocusPlacements {
		c.PlacementPrep = ""
		c.CodingConfidence = ""
		c.InterviewExperience = ""
	} else if c.Focus == FocusHigherStudies {
		c.HigherStudyGoal = ""
		c.EntranceExamPrep = ""
	}
	c.Focus = value
}

// school lazily allocates the sub-record so Set stays total even if the
// caller writes a branch field before the branch tag.
func (a *Answers) school() *SchoolAnswers {
	if a.School == nil {
		a.School = &SchoolAnswers{}
	}
	return a.School
}

func (a *Answers) college() *CollegeAnswers {
	if a.College == nil {
		a.College = &CollegeAnswers{}
	}
	return a.College
}

func (a *Answers) career() *CareerAnswers {
	if a.Career == nil {
		a.Career = &CareerAnswers{}
	}
	return a.Career
}

// Get returns the current value of a field, or "" when unset. The commitment
// flag reads as "true" when set to keep the return type uniform.
func (a *Answers) Get(field Field) string {
	switch field {
	case FieldMotivation:
		return a.Motivation
	case FieldReadiness:
		return a.Readiness
	case FieldLifeStage:
		return a.LifeStage
	case FieldSchoolClass:
		if a.School != nil {
			return a.School.Class
		}
	case FieldSchoolStream:
		if a.School != nil {
			return a.School.Stream
		}
	case FieldCompetitiveIntent:
		if a.School != nil {
			return a.School.CompetitiveIntent
		}
	case FieldJEEPrepLevel:
		if a.School != nil {
			return a.School.JEEPrepLevel
		}
	case FieldMockTestResponse:
		if a.School != nil {
			return a.School.MockTestResponse
		}
	case FieldDropYear:
		if a.School != nil {
			return a.School.DropYear
		}
	case FieldAlternativeFocus:
		if a.School != nil {
			return a.School.AlternativeFocus
		}
	case FieldCollegeYear:
		if a.College != nil {
			return a.College.Year
		}
	case FieldCollegeFocus:
		if a.College != nil {
			return a.College.Focus
		}
	case FieldPlacementPrep:
		if a.College != nil {
			return a.College.PlacementPrep
		}
	case FieldCodingConfidence:
		if a.College != nil {
			return a.College.CodingConfidence
		}
	case FieldInterviewExperience:
		if a.College != nil {
			return a.College.InterviewExperience
		}
	case FieldHigherStudyGoal:
		if a.College != nil {
			return a.College.HigherStudyGoal
		}
	case FieldEntranceExamPrep:
		if a.College != nil {
			return a.College.EntranceExamPrep
		}
	case FieldCareerGoal:
		if a.Career != nil {
			return a.Career.Goal
		}
	case FieldTransitionTimeline:
		if a.Career != nil {
			return a.Career.TransitionTimeline
		}
	case FieldDailyTime:
		return a.DailyTime
	case FieldAmbitionEffort:
		return a.AmbitionEffort
	case FieldStressResponse:
		return a.StressResponse
	case FieldCommitment:
		if a.Committed {
			return "true"
		}
	case FieldName:
		return a.Name
	case FieldPhoneNumber:
		return a.Phone
	case FieldDateOfBirth:
		return a.DateOfBirth
	}
	return ""
}

// Snapshot flattens the record into a field→value map containing only the
// fields currently set. The presentation layer uses it to pre-fill inputs.
func (a *Answers) Snapshot() map[Field]string {
	out := make(map[Field]string)
	for _, f := range AllFields {
		if v := a.Get(f); v != "" {
			out[f] = v
		}
	}
	return out
}

// AllFields enumerates the fixed field set in collection order.
var AllFields = []Field{
	FieldMotivation,
	FieldReadiness,
	FieldLifeStage,
	FieldSchoolClass,
	FieldSchoolStream,
	FieldCompetitiveIntent,
	FieldJEEPrepLevel,
	FieldMockTestResponse,
	FieldDropYear,
	FieldAlternativeFocus,
	FieldCollegeYear,
	FieldCollegeFocus,
	FieldPlacementPrep,
	FieldCodingConfidence,
	FieldInterviewExperience,
	FieldHigherStudyGoal,
	FieldEntranceExamPrep,
	FieldCareerGoal,
	FieldTransitionTimeline,
	FieldDailyTime,
	FieldAmbitionEffort,
	FieldStressResponse,
	FieldCommitment,
	FieldName,
	FieldPhoneNumber,
	FieldDateOfBirth,
}

func isAffirmative(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
