package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lumora-app/intake"
	"github.com/lumora-app/intake/pkg/domain"
)

// errQuit signals a user-initiated exit, distinct from an IO failure.
var errQuit = errors.New("quit")

// OptionFormatter renders one choice line. index is 1-based; selected marks
// the option matching the recorded answer.
type OptionFormatter func(index int, opt domain.ChoiceOption, selected bool) string

// ProgressFormatter renders the position indicator shown above each step.
type ProgressFormatter func(position, total int) string

// Runner drives the intake flow over an IOHandler until the flow submits,
// the user quits, or the input stream ends.
type Runner struct {
	flow           *intake.Flow
	handler        IOHandler
	logger         *slog.Logger
	formatOption   OptionFormatter
	formatProgress ProgressFormatter
}

// New creates a Runner for the given flow with default Stdin/Stdout.
func New(flow *intake.Flow, opts ...Option) *Runner {
	r := &Runner{
		flow:   flow,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.handler == nil {
		r.handler = NewTextHandler(nil, nil)
	}
	if r.formatOption == nil {
		r.formatOption = func(index int, opt domain.ChoiceOption, selected bool) string {
			marker := " "
			if selected {
				marker = "✓"
			}
			return fmt.Sprintf("  %d) %s %s", index, opt.Label, marker)
		}
	}
	if r.formatProgress == nil {
		r.formatProgress = func(position, total int) string {
			return fmt.Sprintf("[%d/%d]", position+1, total)
		}
	}
	return r
}

// Run executes the interactive loop. It returns nil on a clean exit (submit,
// quit, or EOF) and an error on IO failure or context cancellation.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.flow.Completed() {
			r.handler.Say("**All set.** Your profile has been created.")
			return nil
		}

		v := r.flow.View()
		r.logger.Debug("step_render", "step_id", v.Step.ID, "position", v.Position)

		var err error
		switch v.Step.Kind {
		case domain.StepChoice:
			err = r.runChoice(ctx, v)
		case domain.StepTerminal:
			err = r.runTerminal(ctx, v)
		case domain.StepForm:
			err = r.runForm(ctx, v)
		default:
			return fmt.Errorf("unknown step kind %q", v.Step.Kind)
		}

		if err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (r *Runner) runChoice(ctx context.Context, v domain.View) error {
	r.handler.Printf("\n%s\n", r.formatProgress(v.Position, v.Total))
	r.handler.Say("## " + v.Step.Prompt)

	selected := v.Answers[v.Step.Field]
	for i, opt := range v.Step.Options {
		r.handler.Printf("%s\n", r.formatOption(i+1, opt, opt.Value == selected))
	}
	r.handler.Printf("(number to answer, b = back, q = quit)\n")

	line, err := r.handler.ReadLine(ctx)
	if err != nil {
		return err
	}

	switch strings.ToLower(line) {
	case "q", "quit":
		return errQuit
	case "b", "back":
		r.flow.Back()
		return nil
	case "", "n", "next":
		if err := r.flow.Next(); errors.Is(err, domain.ErrStepIncomplete) {
			r.handler.Printf("Pick an option first.\n")
		}
		return nil
	}

	n, convErr := strconv.Atoi(line)
	if convErr != nil || n < 1 || n > len(v.Step.Options) {
		r.handler.Printf("Please enter a number between 1 and %d.\n", len(v.Step.Options))
		return nil
	}
	return r.flow.Answer(ctx, v.Step.Field, v.Step.Options[n-1].Value)
}

func (r *Runner) runTerminal(ctx context.Context, v domain.View) error {
	r.handler.Printf("\n%s\n", r.formatProgress(v.Position, v.Total))

	var sb strings.Builder
	sb.WriteString("## " + v.Step.Prompt + "\n\n")
	if v.Summary != nil {
		sb.WriteString(fmt.Sprintf("- **Your strength:** %s\n", v.Summary.Strength))
		sb.WriteString(fmt.Sprintf("- **Growth area:** %s\n", v.Summary.GrowthArea))
		sb.WriteString(fmt.Sprintf("- **Direction:** %s\n", v.Summary.Direction))
	}
	r.handler.Say(sb.String())
	r.handler.Printf("(y = I'm in, b = back, q = quit)\n")

	line, err := r.handler.ReadLine(ctx)
	if err != nil {
		return err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		if err := r.flow.Answer(ctx, domain.FieldCommitment, "yes"); err != nil {
			return err
		}
		return r.flow.Next()
	case "b", "back":
		r.flow.Back()
		return nil
	case "q", "quit":
		return errQuit
	default:
		r.handler.Printf("Answer y to continue, b to go back.\n")
		return nil
	}
}

func (r *Runner) runForm(ctx context.Context, v domain.View) error {
	r.handler.Printf("\n%s\n", r.formatProgress(v.Position, v.Total))
	r.handler.Say("## " + v.Step.Prompt)

	for _, input := range v.Step.Inputs {
		existing := v.Answers[input.Field]
		for {
			if existing != "" {
				r.handler.Printf("%s [%s]: \n", input.Label, existing)
			} else {
				r.handler.Printf("%s: \n", input.Label)
			}
			line, err := r.handler.ReadLine(ctx)
			if err != nil {
				return err
			}
			if strings.EqualFold(line, "q") {
				return errQuit
			}
			if line == "" {
				if existing != "" || !input.Required {
					break
				}
				r.handler.Printf("This field is required.\n")
				continue
			}
			if err := r.flow.Answer(ctx, input.Field, line); err != nil {
				return err
			}
			break
		}
	}

	if !v.AtEnd {
		return r.flow.Next()
	}
	return r.submit(ctx)
}

func (r *Runner) submit(ctx context.Context) error {
	r.handler.Printf("\nSubmit your profile? (y = submit, q = quit)\n")
	line, err := r.handler.ReadLine(ctx)
	if err != nil {
		return err
	}
	if !strings.EqualFold(line, "y") && !strings.EqualFold(line, "yes") {
		return errQuit
	}

	if err := r.flow.Submit(ctx); err != nil {
		var subErr *domain.SubmissionError
		if errors.As(err, &subErr) {
			r.logger.Warn("submit_failed", "err", subErr)
			r.handler.Printf("Submission failed: %s. Your answers are kept; try again.\n", subErr.Message)
			return nil
		}
		return err
	}
	return nil
}
