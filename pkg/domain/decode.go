package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// flatAnswers mirrors the flat field set for decoding loosely-typed maps
// (JSON bodies, recovered analytics blobs). Commitment arrives as a string
// or bool depending on the source, so it is decoded weakly.
type flatAnswers struct {
	Motivation          string `mapstructure:"motivation"`
	Readiness           string `mapstructure:"readiness"`
	LifeStage           string `mapstructure:"life_stage"`
	SchoolClass         string `mapstructure:"school_class"`
	SchoolStream        string `mapstructure:"school_stream"`
	CompetitiveIntent   string `mapstructure:"competitive_intent"`
	JEEPrepLevel        string `mapstructure:"jee_prep_level"`
	MockTestResponse    string `mapstructure:"mock_test_response"`
	DropYear            string `mapstructure:"drop_year"`
	AlternativeFocus    string `mapstructure:"alternative_focus"`
	CollegeYear         string `mapstructure:"college_year"`
	CollegeFocus        string `mapstructure:"college_focus"`
	PlacementPrep       string `mapstructure:"placement_prep"`
	CodingConfidence    string `mapstructure:"coding_confidence"`
	InterviewExperience string `mapstructure:"interview_experience"`
	HigherStudyGoal     string `mapstructure:"higher_study_goal"`
	EntranceExamPrep    string `mapstructure:"entrance_exam_prep"`
	CareerGoal          string `mapstructure:"career_goal"`
	TransitionTimeline  string `mapstructure:"transition_timeline"`
	DailyTime           string `mapstructure:"daily_time"`
	AmbitionEffort      string `mapstructure:"ambition_effort"`
	StressResponse      string `mapstructure:"stress_response"`
	Commitment          string `mapstructure:"commitment"`
	Name                string `mapstructure:"name"`
	PhoneNumber         string `mapstructure:"phone_number"`
	DateOfBirth         string `mapstructure:"date_of_birth"`
}

// AnswersFromMap decodes a flat field→value map into an answer record.
// Values are applied in collection order through Set, so the branching
// invalidation rules hold for the seeded state too. Unknown keys fail with
// ErrUnknownField.
func AnswersFromMap(raw map[string]any) (*Answers, error) {
	for key := range raw {
		if !isKnownField(Field(key)) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}

	var flat flatAnswers
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &flat,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build answer decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid answer map: %w", err)
	}

	values := map[Field]string{
		FieldMotivation:          flat.Motivation,
		FieldReadiness:           flat.Readiness,
		FieldLifeStage:           flat.LifeStage,
		FieldSchoolClass:         flat.SchoolClass,
		FieldSchoolStream:        flat.SchoolStream,
		FieldCompetitiveIntent:   flat.CompetitiveIntent,
		FieldJEEPrepLevel:        flat.JEEPrepLevel,
		FieldMockTestResponse:    flat.MockTestResponse,
		FieldDropYear:            flat.DropYear,
		FieldAlternativeFocus:    flat.AlternativeFocus,
		FieldCollegeYear:         flat.CollegeYear,
		FieldCollegeFocus:        flat.CollegeFocus,
		FieldPlacementPrep:       flat.PlacementPrep,
		FieldCodingConfidence:    flat.CodingConfidence,
		FieldInterviewExperience: flat.InterviewExperience,
		FieldHigherStudyGoal:     flat.HigherStudyGoal,
		FieldEntranceExamPrep:    flat.EntranceExamPrep,
		FieldCareerGoal:          flat.CareerGoal,
		FieldTransitionTimeline:  flat.TransitionTimeline,
		FieldDailyTime:           flat.DailyTime,
		FieldAmbitionEffort:      flat.AmbitionEffort,
		FieldStressResponse:      flat.StressResponse,
		FieldCommitment:          flat.Commitment,
		FieldName:                flat.Name,
		FieldPhoneNumber:         flat.PhoneNumber,
		FieldDateOfBirth:         flat.DateOfBirth,
	}

	a := NewAnswers()
	for _, f := range AllFields {
		if v := values[f]; v != "" {
			if err := a.Set(f, v); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

func isKnownField(f Field) bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}
