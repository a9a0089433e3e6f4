package domain

// Education-stage buckets for the submission payload.
const (
	StageUptoClassTen      = "upto_class_10"
	StageClassElevenTwelve = "class_11_12"
	StageUndergraduate     = "undergraduate"
	StagePostgrad          = "postgraduate"
)

// ValidationModeAutomatic is the only validation mode the engine submits.
const ValidationModeAutomatic = "automatic"

// SubmissionPayload is the normalized, backend-shaped record produced once
// per submission attempt. Contact fields are hoisted to the top level and
// excluded, along with the commitment flag, from the raw OnboardingData blob.
type SubmissionPayload struct {
	EducationStage          string            `json:"education_stage"`
	WeeklyHours             int               `json:"weekly_hours"`
	ValidationMode          string            `json:"validation_mode"`
	OnboardingAcceptedTerms bool              `json:"onboarding_accepted_terms"`
	OnboardingData          map[string]string `json:"onboarding_data"`
	GoalStatement           string            `json:"goal_statement"`
	Name                    string            `json:"name"`
	PhoneNumber             string            `json:"phone_number"`
	DateOfBirth             string            `json:"date_of_birth"`
}
