package tui

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/lumora-app/intake/pkg/domain"
)

// FormatOption renders a single choice line. The previously selected option
// is highlighted so the user can see their answer when navigating back.
func FormatOption(index int, opt domain.ChoiceOption, selected bool) string {
	p := termenv.ColorProfile()
	line := fmt.Sprintf("  %d) %s", index, opt.Label)
	if selected {
		return termenv.String(line + "  ✓").Foreground(p.Color("#34d399")).Bold().String()
	}
	return line
}

// FormatProgress renders the "step x of y" indicator.
func FormatProgress(position, total int) string {
	p := termenv.ColorProfile()
	return termenv.String(fmt.Sprintf("[%d/%d]", position+1, total)).Foreground(p.Color("#818cf8")).String()
}
