package runtime

import (
	"strings"

	"github.com/lumora-app/intake/pkg/catalog"
	"github.com/lumora-app/intake/pkg/domain"
)

// CanAdvance is the per-step validation gate: a pure, synchronous predicate
// deciding whether the current answers permit moving past the given step.
// A failed gate disables forward navigation; it is never an error.
func CanAdvance(id domain.StepID, a *domain.Answers) bool {
	if a == nil {
		return false
	}

	if id == domain.StepCommitment {
		return a.Committed
	}

	def, ok := catalog.Get(id)
	if !ok {
		return false
	}

	switch def.Kind {
	case domain.StepChoice:
		return def.HasOption(a.Get(def.Field))
	case domain.StepForm:
		for _, in := range def.Inputs {
			if in.Required && strings.TrimSpace(a.Get(in.Field)) == "" {
				return false
			}
		}
		return true
	}
	return false
}
