// Package profile derives the narrative summary and the normalized backend
// payload from an accumulated answer record. Everything here is pure and
// total: empty or partial answers fall through to documented defaults, never
// to an error.
package profile

import "github.com/lumora-app/intake/pkg/domain"

// rule pairs a predicate over the answers with the label it produces.
// Tables are evaluated in order and the first match wins, so more specific,
// later-collected signals must appear before the generic ones.
type rule struct {
	when  func(*domain.Answers) bool
	label string
}

func pick(rules []rule, a *domain.Answers, fallback string) string {
	for _, r := range rules {
		if r.when(a) {
			return r.label
		}
	}
	return fallback
}

var strengthRules = []rule{
	{func(a *domain.Answers) bool {
		return a.School != nil && a.School.CompetitiveIntent == domain.IntentSerious
	}, "Serious commitment to a hard goal"},
	{func(a *domain.Answers) bool {
		return a.College != nil && a.College.Focus == domain.FocusPlacements
	}, "Career-focused drive"},
	{func(a *domain.Answers) bool {
		return a.College != nil && a.College.Focus == domain.FocusHigherStudies
	}, "Long-term academic vision"},
	{func(a *domain.Answers) bool {
		return a.Career != nil && a.Career.Goal != ""
	}, "Courage to change direction"},
	{func(a *domain.Answers) bool {
		return a.AmbitionEffort == "dream_big_do_big"
	}, "Ambition backed by real effort"},
	{func(a *domain.Answers) bool {
		return a.Readiness == "all_in"
	}, "High readiness to start"},
}

var growthRules = []rule{
	{func(a *domain.Answers) bool {
		return a.StressResponse == "panic"
	}, "Staying calm when things pile up"},
	{func(a *domain.Answers) bool {
		return a.School != nil && a.School.MockTestResponse == "avoid_them"
	}, "Facing test feedback head-on"},
	{func(a *domain.Answers) bool {
		return a.AmbitionEffort == "dream_big_do_little"
	}, "Turning ambition into daily action"},
	{func(a *domain.Answers) bool {
		return a.DailyTime == domain.TimeUnderOneHour
	}, "Carving out consistent study time"},
	{func(a *domain.Answers) bool {
		return a.Readiness == "just_looking"
	}, "Committing to a direction"},
}

var directionRules = []rule{
	{func(a *domain.Answers) bool {
		return a.School != nil && a.School.CompetitiveIntent == domain.IntentSerious
	}, "A structured JEE preparation path"},
	{func(a *domain.Answers) bool {
		return a.School != nil && a.School.CompetitiveIntent != ""
	}, "Strong fundamentals beyond entrance exams"},
	{func(a *domain.Answers) bool {
		return a.College != nil && a.College.Focus == domain.FocusPlacements
	}, "A placement-ready skill track"},
	{func(a *domain.Answers) bool {
		return a.College != nil && a.College.Focus == domain.FocusHigherStudies
	}, "A focused higher-studies runway"},
	{func(a *domain.Answers) bool {
		return a.Career != nil && a.Career.Goal == domain.CareerSwitchField
	}, "A guided transition into a new field"},
	{func(a *domain.Answers) bool {
		return a.Career != nil && a.Career.Goal != ""
	}, "Leveling up from where you stand"},
}

// Defaults used when no rule matches. The "no matching rule" case is
// intentionally absorbed here rather than surfaced.
const (
	defaultStrength  = "Willingness to show up"
	defaultGrowth    = "Building a steady routine"
	defaultDirection = "An exploratory learning path"
)

// Derive computes the three narrative fields for the terminal screen.
// It tolerates a fully empty record, returning all defaults.
func Derive(a *domain.Answers) domain.Summary {
	if a == nil {
		a = domain.NewAnswers()
	}
	return domain.Summary{
		Strength:   pick(strengthRules, a, defaultStrength),
		GrowthArea: pick(growthRules, a, defaultGrowth),
		Direction:  pick(directionRules, a, defaultDirection),
	}
}
