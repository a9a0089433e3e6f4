/*
Package runner implements the interactive terminal loop for the intake flow.

It acts as the bridge between the core flow controller and the outside world.
The runner renders one step at a time through a pluggable IOHandler, reads
answers, and drives navigation (answer, back, next, submit) until the flow
completes or the input stream ends.

# Usage

	flow, _ := intake.New(intake.WithAutoAdvanceDelay(0))
	r := runner.New(flow,
		runner.WithIO(os.Stdin, os.Stdout),
		runner.WithRenderer(tui.NewRenderer()),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
