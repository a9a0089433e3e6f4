package domain

// StepID identifies a screen in the flow.
type StepID string

const (
	StepMotivation StepID = "motivation"
	StepReadiness  StepID = "readiness"
	StepLifeStage  StepID = "life_stage"

	StepSchoolClass       StepID = "school_class"
	StepSchoolStream      StepID = "school_stream"
	StepCompetitiveIntent StepID = "competitive_intent"
	StepJEEPrepLevel      StepID = "jee_prep_level"
	StepMockTestResponse  StepID = "mock_test_response"
	StepDropYear          StepID = "drop_year"
	StepAlternativeFocus  StepID = "alternative_focus"

	StepCollegeYear         StepID = "college_year"
	StepCollegeFocus        StepID = "college_focus"
	StepPlacementPrep       StepID = "placement_prep"
	StepCodingConfidence    StepID = "coding_confidence"
	StepInterviewExperience StepID = "interview_experience"
	StepHigherStudyGoal     StepID = "higher_study_goal"
	StepEntranceExamPrep    StepID = "entrance_exam_prep"

	StepCareerGoal         StepID = "career_goal"
	StepTransitionTimeline StepID = "transition_timeline"

	StepDailyTime      StepID = "daily_time"
	StepAmbitionEffort StepID = "ambition_effort"
	StepStressResponse StepID = "stress_response"

	// StepCommitment is the terminal summary/commitment screen. It has no
	// catalog entry; its definition is synthesized with the derived summary.
	StepCommitment StepID = "commitment"

	// StepPersonalDetails is the final free-form screen (name, phone, dob).
	StepPersonalDetails StepID = "personal_details"
)

// StepKind discriminates the step variants.
type StepKind string

const (
	// StepChoice presents a fixed option set bound to a single field.
	StepChoice StepKind = "choice"
	// StepForm presents one or more free-form inputs.
	StepForm StepKind = "form"
	// StepTerminal is the computed summary plus the commitment toggle.
	StepTerminal StepKind = "terminal"
)

// InputType describes a free-form input control.
type InputType string

const (
	InputText InputType = "text"
	InputDate InputType = "date"
	InputTel  InputType = "tel"
)

// ChoiceOption is one selectable (value, label) pair of a choice step.
type ChoiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormInput is one free-form input of a form step.
type FormInput struct {
	Field    Field     `json:"field"`
	Type     InputType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
}

// StepDefinition is the immutable description of a screen, drawn from the
// catalog (or synthesized, for the terminal step).
type StepDefinition struct {
	ID      StepID         `json:"id"`
	Kind    StepKind       `json:"kind"`
	Prompt  string         `json:"prompt"`
	Field   Field          `json:"field,omitempty"`   // choice and terminal steps
	Options []ChoiceOption `json:"options,omitempty"` // choice steps
	Inputs  []FormInput    `json:"inputs,omitempty"`  // form steps
}

// HasOption reports whether value is one of the step's option values.
func (d StepDefinition) HasOption(value string) bool {
	for _, opt := range d.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
