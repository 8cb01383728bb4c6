package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/schoolofai/drillcore/internal/ui/theme"
)

// ProgressBar is a labeled horizontal bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// View renders the bar at its configured width.
func (p ProgressBar) View() string {
	var out string

	if p.Label != "" {
		out = theme.Body.Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6
	}
	barWidth := p.Width - lipgloss.Width(out) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	out += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	out += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		out += theme.Subtitle.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return out
}
