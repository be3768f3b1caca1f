package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/cli"
	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CategoryChart renders one horizontal bar per category, sized by goal
// count and colored by average completion. Categories without goals are
// skipped.
func CategoryChart(stats []model.CategoryStats, width int) string {
	t := theme.Active

	labelW := 0
	maxGoals := 0
	for _, s := range stats {
		if s.Goals == 0 {
			continue
		}
		if w := lipgloss.Width(s.Category.String()); w > labelW {
			labelW = w
		}
		if s.Goals > maxGoals {
			maxGoals = s.Goals
		}
	}
	if maxGoals == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No goals yet")
	}
	if labelW > 20 {
		labelW = 20
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	suffixW := 12 // " 99  100%"
	barMax := width - labelW - suffixW - 2
	if barMax < 4 {
		barMax = 4
	}

	var b strings.Builder
	for _, s := range stats {
		if s.Goals == 0 {
			continue
		}
		n := s.Goals * barMax / maxGoals
		if n < 1 {
			n = 1
		}
		barStyle := lipgloss.NewStyle().
			Foreground(CompletionColor(int(s.AverageCompletion))).
			Background(t.Surface)

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, cli.Truncate(s.Category.String(), labelW))))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(spaceStyle.Render(strings.Repeat(" ", barMax-n)))
		b.WriteString(countStyle.Render(fmt.Sprintf(" %3d", s.Goals)))
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %4s", cli.FormatPercent(float64(int(s.AverageCompletion))))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
