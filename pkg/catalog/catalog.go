// Package catalog holds the static screen catalog: the immutable question
// definitions keyed by step ID. Pure data, no behavior beyond lookup.
package catalog

import "github.com/lumora-app/intake/pkg/domain"

// TerminalPrompt is the heading of the synthesized terminal summary screen,
// which has no catalog entry of its own.
const TerminalPrompt = "Here's what we learned about you. Ready to commit?"

var steps = map[domain.StepID]domain.StepDefinition{
	domain.StepMotivation: {
		ID:     domain.StepMotivation,
		Kind:   domain.StepChoice,
		Prompt: "What brings you here today?",
		Field:  domain.FieldMotivation,
		Options: []domain.ChoiceOption{
			{Value: "clear_goal", Label: "I have a clear goal I'm chasing"},
			{Value: "need_direction", Label: "I need help finding direction"},
			{Value: "stay_sharp", Label: "I want to stay sharp and keep learning"},
		},
	},
	domain.StepReadiness: {
		ID:     domain.StepReadiness,
		Kind:   domain.StepChoice,
		Prompt: "How ready do you feel to start working on it?",
		Field:  domain.FieldReadiness,
		Options: []domain.ChoiceOption{
			{Value: "all_in", Label: "All in, starting today"},
			{Value: "warming_up", Label: "Warming up to it"},
			{Value: "just_looking", Label: "Just looking around for now"},
		},
	},
	domain.StepLifeStage: {
		ID:     domain.StepLifeStage,
		Kind:   domain.StepChoice,
		Prompt: "Where are you in life right now?",
		Field:  domain.FieldLifeStage,
		Options: []domain.ChoiceOption{
			{Value: domain.StageSchool, Label: "In school"},
			{Value: domain.StageCollege, Label: "In college"},
			{Value: domain.StagePostgraduate, Label: "Postgraduate studies"},
			{Value: domain.StageWorking, Label: "Working professional"},
		},
	},

	domain.StepSchoolClass: {
		ID:     domain.StepSchoolClass,
		Kind:   domain.StepChoice,
		Prompt: "Which class are you in?",
		Field:  domain.FieldSchoolClass,
		Options: []domain.ChoiceOption{
			{Value: domain.ClassEight, Label: "Class 8"},
			{Value: domain.ClassNine, Label: "Class 9"},
			{Value: domain.ClassTen, Label: "Class 10"},
			{Value: domain.ClassEleven, Label: "Class 11"},
			{Value: domain.ClassTwelve, Label: "Class 12"},
		},
	},
	domain.StepSchoolStream: {
		ID:     domain.StepSchoolStream,
		Kind:   domain.StepChoice,
		Prompt: "Which stream are you in?",
		Field:  domain.FieldSchoolStream,
		Options: []domain.ChoiceOption{
			{Value: "science", Label: "Science"},
			{Value: "commerce", Label: "Commerce"},
			{Value: "arts", Label: "Arts / Humanities"},
		},
	},
	domain.StepCompetitiveIntent: {
		ID:     domain.StepCompetitiveIntent,
		Kind:   domain.StepChoice,
		Prompt: "Are you preparing for a competitive exam like JEE?",
		Field:  domain.FieldCompetitiveIntent,
		Options: []domain.ChoiceOption{
			{Value: domain.IntentSerious, Label: "Yes, seriously preparing"},
			{Value: domain.IntentExploring, Label: "Exploring, not committed yet"},
			{Value: domain.IntentNotInterested, Label: "Not my path"},
		},
	},
	domain.StepJEEPrepLevel: {
		ID:     domain.StepJEEPrepLevel,
		Kind:   domain.StepChoice,
		Prompt: "How far along is your JEE preparation?",
		Field:  domain.FieldJEEPrepLevel,
		Options: []domain.ChoiceOption{
			{Value: "just_started", Label: "Just started"},
			{Value: "halfway", Label: "Roughly halfway through the syllabus"},
			{Value: "revision", Label: "Done with syllabus, revising"},
		},
	},
	domain.StepMockTestResponse: {
		ID:     domain.StepMockTestResponse,
		Kind:   domain.StepChoice,
		Prompt: "How do you feel after a bad mock test?",
		Field:  domain.FieldMockTestResponse,
		Options: []domain.ChoiceOption{
			{Value: "analyze_mistakes", Label: "I sit down and analyze my mistakes"},
			{Value: "feel_low", Label: "I feel low for a while, then recover"},
			{Value: "avoid_them", Label: "Honestly, I avoid mock tests"},
		},
	},
	domain.StepDropYear: {
		ID:     domain.StepDropYear,
		Kind:   domain.StepChoice,
		Prompt: "Would you consider a drop year if needed?",
		Field:  domain.FieldDropYear,
		Options: []domain.ChoiceOption{
			{Value: "yes", Label: "Yes, whatever it takes"},
			{Value: "maybe", Label: "Maybe, depends on the result"},
			{Value: "no", Label: "No, I'll move on"},
		},
	},
	domain.StepAlternativeFocus: {
		ID:     domain.StepAlternativeFocus,
		Kind:   domain.StepChoice,
		Prompt: "What would you rather focus on instead?",
		Field:  domain.FieldAlternativeFocus,
		Options: []domain.ChoiceOption{
			{Value: "board_exams", Label: "Doing great in board exams"},
			{Value: "skills", Label: "Building real-world skills"},
			{Value: "undecided", Label: "Still figuring it out"},
		},
	},

	domain.StepCollegeYear: {
		ID:     domain.StepCollegeYear,
		Kind:   domain.StepChoice,
		Prompt: "Which year of your program are you in?",
		Field:  domain.FieldCollegeYear,
		Options: []domain.ChoiceOption{
			{Value: "first", Label: "First year"},
			{Value: "second", Label: "Second year"},
			{Value: "third", Label: "Third year"},
			{Value: "final", Label: "Final year"},
		},
	},
	domain.StepCollegeFocus: {
		ID:     domain.StepCollegeFocus,
		Kind:   domain.StepChoice,
		Prompt: "What's your primary focus right now?",
		Field:  domain.FieldCollegeFocus,
		Options: []domain.ChoiceOption{
			{Value: domain.FocusPlacements, Label: "Cracking placements"},
			{Value: domain.FocusHigherStudies, Label: "Higher studies"},
			{Value: domain.FocusExploring, Label: "Still exploring"},
		},
	},
	domain.StepPlacementPrep: {
		ID:     domain.StepPlacementPrep,
		Kind:   domain.StepChoice,
		Prompt: "Have you started preparing for placements?",
		Field:  domain.FieldPlacementPrep,
		Options: []domain.ChoiceOption{
			{Value: "structured", Label: "Yes, with a structured plan"},
			{Value: "on_off", Label: "On and off"},
			{Value: "not_yet", Label: "Not yet"},
		},
	},
	domain.StepCodingConfidence: {
		ID:     domain.StepCodingConfidence,
		Kind:   domain.StepChoice,
		Prompt: "How confident are you in coding interviews?",
		Field:  domain.FieldCodingConfidence,
		Options: []domain.ChoiceOption{
			{Value: "confident", Label: "Confident, I practice regularly"},
			{Value: "shaky", Label: "Shaky, I freeze under pressure"},
			{Value: "beginner", Label: "Beginner, still learning basics"},
		},
	},
	domain.StepInterviewExperience: {
		ID:     domain.StepInterviewExperience,
		Kind:   domain.StepChoice,
		Prompt: "Have you faced any real interviews yet?",
		Field:  domain.FieldInterviewExperience,
		Options: []domain.ChoiceOption{
			{Value: "several", Label: "Several, with mixed results"},
			{Value: "one_two", Label: "One or two"},
			{Value: "none", Label: "None so far"},
		},
	},
	domain.StepHigherStudyGoal: {
		ID:     domain.StepHigherStudyGoal,
		Kind:   domain.StepChoice,
		Prompt: "What kind of higher studies are you aiming for?",
		Field:  domain.FieldHigherStudyGoal,
		Options: []domain.ChoiceOption{
			{Value: "masters_abroad", Label: "Master's abroad"},
			{Value: "masters_india", Label: "Master's in India"},
			{Value: "mba", Label: "MBA"},
		},
	},
	domain.StepEntranceExamPrep: {
		ID:     domain.StepEntranceExamPrep,
		Kind:   domain.StepChoice,
		Prompt: "Where are you with entrance exam prep (GRE/GATE/CAT)?",
		Field:  domain.FieldEntranceExamPrep,
		Options: []domain.ChoiceOption{
			{Value: "started", Label: "Already preparing"},
			{Value: "planning", Label: "Planning to start soon"},
			{Value: "not_started", Label: "Haven't started"},
		},
	},

	domain.StepCareerGoal: {
		ID:     domain.StepCareerGoal,
		Kind:   domain.StepChoice,
		Prompt: "What's the next move you're working toward?",
		Field:  domain.FieldCareerGoal,
		Options: []domain.ChoiceOption{
			{Value: domain.CareerSwitchField, Label: "Switching to a new field"},
			{Value: domain.CareerGrowCurrent, Label: "Growing in my current field"},
			{Value: domain.CareerStartSomething, Label: "Starting something of my own"},
		},
	},
	domain.StepTransitionTimeline: {
		ID:     domain.StepTransitionTimeline,
		Kind:   domain.StepChoice,
		Prompt: "What's your timeline for making it happen?",
		Field:  domain.FieldTransitionTimeline,
		Options: []domain.ChoiceOption{
			{Value: "three_months", Label: "Next three months"},
			{Value: "this_year", Label: "Within this year"},
			{Value: "no_rush", Label: "No fixed timeline"},
		},
	},

	domain.StepDailyTime: {
		ID:     domain.StepDailyTime,
		Kind:   domain.StepChoice,
		Prompt: "How much time can you give this daily?",
		Field:  domain.FieldDailyTime,
		Options: []domain.ChoiceOption{
			{Value: domain.TimeUnderOneHour, Label: "Under an hour"},
			{Value: domain.TimeOneToTwo, Label: "1-2 hours"},
			{Value: domain.TimeTwoToFour, Label: "2-4 hours"},
			{Value: domain.TimeFourPlus, Label: "4+ hours"},
		},
	},
	domain.StepAmbitionEffort: {
		ID:     domain.StepAmbitionEffort,
		Kind:   domain.StepChoice,
		Prompt: "Which of these sounds most like you?",
		Field:  domain.FieldAmbitionEffort,
		Options: []domain.ChoiceOption{
			{Value: "dream_big_do_big", Label: "Big dreams, and I put in the work"},
			{Value: "dream_big_do_little", Label: "Big dreams, effort comes and goes"},
			{Value: "steady_grinder", Label: "Modest goals, steady effort"},
		},
	},
	domain.StepStressResponse: {
		ID:     domain.StepStressResponse,
		Kind:   domain.StepChoice,
		Prompt: "When things pile up, what do you usually do?",
		Field:  domain.FieldStressResponse,
		Options: []domain.ChoiceOption{
			{Value: "make_plan", Label: "Make a plan and chip away"},
			{Value: "push_through", Label: "Put my head down and push through"},
			{Value: "panic", Label: "Panic first, sort it out later"},
		},
	},

	domain.StepPersonalDetails: {
		ID:     domain.StepPersonalDetails,
		Kind:   domain.StepForm,
		Prompt: "Last thing: tell us how to reach you.",
		Inputs: []domain.FormInput{
			{Field: domain.FieldName, Type: domain.InputText, Label: "Full name", Required: true},
			{Field: domain.FieldPhoneNumber, Type: domain.InputTel, Label: "Phone number", Required: true},
			{Field: domain.FieldDateOfBirth, Type: domain.InputDate, Label: "Date of birth", Required: true},
		},
	},
}

// Get returns the definition for a step ID. The terminal commitment step is
// not in the catalog; callers synthesize it with the derived summary.
func Get(id domain.StepID) (domain.StepDefinition, bool) {
	def, ok := steps[id]
	return def, ok
}

// FieldOf returns the answer field a step writes. For form steps it returns
// the first input's field; for the terminal step, the commitment flag.
func FieldOf(id domain.StepID) domain.Field {
	if id == domain.StepCommitment {
		return domain.FieldCommitment
	}
	def, ok := steps[id]
	if !ok {
		return ""
	}
	if def.Kind == domain.StepForm && len(def.Inputs) > 0 {
		return def.Inputs[0].Field
	}
	return def.Field
}
