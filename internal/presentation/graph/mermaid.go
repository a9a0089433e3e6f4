package graph

import (
	"fmt"
	"strings"

	"github.com/lumora-app/intake/pkg/domain"
)

// Overlay contains dynamic state to visualize on the graph.
type Overlay struct {
	AnsweredSteps []domain.StepID
	CurrentStep   domain.StepID
}

// GenerateMermaid produces a Mermaid flowchart from the materialized step
// sequence. It applies semantic styling:
// - Choice: [/Parallelogram/] (input)
// - Form: [Rectangle]
// - Terminal: ((Circle))
// It also applies overlay styles (Answered/Current) if provided.
func GenerateMermaid(steps []domain.StepDefinition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, step := range steps {
		safeID := sanitizeMermaidID(string(step.ID))

		opener, closer := "[", "]"
		switch step.Kind {
		case domain.StepChoice:
			opener, closer = "[/", "/]"
		case domain.StepTerminal:
			opener, closer = "((", "))"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, step.ID, closer))

		if i+1 < len(steps) {
			safeTo := sanitizeMermaidID(string(steps[i+1].ID))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, safeTo))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high contrast regardless of theme.
		sb.WriteString("    classDef answered fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		answeredSet := make(map[string]bool)
		for _, id := range overlay.AnsweredSteps {
			safeID := sanitizeMermaidID(string(id))
			if !answeredSet[safeID] && safeID != "" {
				answeredSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s answered;\n", safeID))
			}
		}

		if overlay.CurrentStep != "" {
			safeCurrent := sanitizeMermaidID(string(overlay.CurrentStep))
			sb.WriteString(fmt.Sprintf("    class %s current;\n", safeCurrent))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
