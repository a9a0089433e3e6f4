package graph_test

import (
	"strings"
	"testing"

	"github.com/lumora-app/intake/internal/presentation/graph"
	"github.com/lumora-app/intake/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		steps    []domain.StepDefinition
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Choice Step Shape",
			steps: []domain.StepDefinition{
				{ID: "motivation", Kind: domain.StepChoice},
			},
			contains: []string{
				"motivation[/\"motivation\"/]",
			},
		},
		{
			name: "Form Step Shape",
			steps: []domain.StepDefinition{
				{ID: "personal_details", Kind: domain.StepForm},
			},
			contains: []string{
				"personal_details[\"personal_details\"]",
			},
		},
		{
			name: "Terminal Step Shape",
			steps: []domain.StepDefinition{
				{ID: "commitment", Kind: domain.StepTerminal},
			},
			contains: []string{
				"commitment((\"commitment\"))",
			},
		},
		{
			name: "Sequential Edges",
			steps: []domain.StepDefinition{
				{ID: "motivation", Kind: domain.StepChoice},
				{ID: "readiness", Kind: domain.StepChoice},
			},
			contains: []string{
				"motivation --> readiness",
			},
		},
		{
			name: "Overlay Styling",
			steps: []domain.StepDefinition{
				{ID: "motivation", Kind: domain.StepChoice},
				{ID: "readiness", Kind: domain.StepChoice},
			},
			overlay: &graph.Overlay{
				AnsweredSteps: []domain.StepID{"motivation", "motivation"},
				CurrentStep:   "readiness",
			},
			contains: []string{
				"class motivation answered;",
				"class readiness current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.steps, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}

	t.Run("Answered Deduplication", func(t *testing.T) {
		steps := []domain.StepDefinition{{ID: "motivation", Kind: domain.StepChoice}}
		got := graph.GenerateMermaid(steps, &graph.Overlay{
			AnsweredSteps: []domain.StepID{"motivation", "motivation"},
		})
		if strings.Count(got, "class motivation answered;") != 1 {
			t.Errorf("expected single answered class entry, got:\n%v", got)
		}
	})
}
