/*
Package intake is the adaptive branching questionnaire engine behind the
Lumora onboarding flow: a variable-length sequence of single-choice and
free-form screens whose contents, order, and length depend on the answers
already given, ending in a derived profile summary and a normalized payload
sent to the profile backend.

# Concept

The step graph is never stored: it is a pure function of the accumulated
answers, rebuilt from scratch on every change. Branch-local answers live in
sub-records keyed by the branch tag, so switching branches discards stale
answers structurally instead of by per-field bookkeeping. A single
cancellable timer implements the debounced auto-advance; the most recent
user action always wins.

# Usage

	flow, err := intake.New(
		intake.WithProfileService(client),
	)
	if err != nil {
		log.Fatal(err)
	}

	view := flow.View() // current step, progress, gate state
	_ = flow.Answer(ctx, domain.FieldLifeStage, domain.StageCollege)
	// ... drive the flow from your UI ...
	err = flow.Submit(ctx)

Hosts that need durability persist flow.Session(id) through a
ports.StateStore (in-memory and Redis adapters are provided) and restore it
with flow.Restore.
*/
package intake
