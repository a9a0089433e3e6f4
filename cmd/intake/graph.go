package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumora-app/intake"
	"github.com/lumora-app/intake/internal/presentation/graph"
	"github.com/lumora-app/intake/pkg/catalog"
	"github.com/lumora-app/intake/pkg/domain"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [field=value ...]",
	Short: "Export the flow graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the step sequence. Because the
graph branches on answers, seed answers can be passed as field=value pairs,
e.g. "intake graph life_stage=school school_class=12".`,
	Run: func(cmd *cobra.Command, args []string) {
		seed := make(map[string]any, len(args))
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				fmt.Printf("Error: expected field=value, got %q\n", arg)
				os.Exit(1)
			}
			seed[key] = value
		}

		var opts []intake.Option
		if len(seed) > 0 {
			opts = append(opts, intake.WithInitialAnswers(seed))
		}
		flow, err := intake.New(opts...)
		if err != nil {
			fmt.Printf("Error initializing flow: %v\n", err)
			os.Exit(1)
		}

		ids := flow.Steps()
		steps := make([]domain.StepDefinition, 0, len(ids))
		for _, id := range ids {
			if def, ok := catalog.Get(id); ok {
				steps = append(steps, def)
				continue
			}
			steps = append(steps, domain.StepDefinition{
				ID:   id,
				Kind: domain.StepTerminal,
			})
		}

		// Seeded answers show up as progress on the diagram.
		var overlay *graph.Overlay
		if len(seed) > 0 {
			overlay = buildOverlay(ids, flow.Answers())
		}

		fmt.Print(graph.GenerateMermaid(steps, overlay))
	},
}

// buildOverlay highlights the steps already answered and marks the first
// unanswered one as current.
func buildOverlay(ids []domain.StepID, answers map[domain.Field]string) *graph.Overlay {
	overlay := &graph.Overlay{}
	for _, id := range ids {
		if field := catalog.FieldOf(id); field != "" && answers[field] != "" {
			overlay.AnsweredSteps = append(overlay.AnsweredSteps, id)
			continue
		}
		if overlay.CurrentStep == "" {
			overlay.CurrentStep = id
		}
	}
	return overlay
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
