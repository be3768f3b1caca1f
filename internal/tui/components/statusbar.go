package components

import (
	"strings"

	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. notice is shown in the
// middle, highlighted as an error when isErr is set; right is right-aligned.
func RenderStatusBar(width int, notice string, isErr bool, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	noticeStyle := style.Foreground(t.Text)
	if isErr {
		noticeStyle = style.Foreground(t.Alert).Bold(true)
	}

	left := style.Render(" [?]help  [a]dd  [e]dit  [d]elete  [q]uit")
	if notice != "" {
		left += style.Render("  ") + noticeStyle.Render(notice)
	}
	rightR := ""
	if right != "" {
		rightR = style.Render(right + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(rightR)
	if padding < 0 {
		padding = 0
	}

	return left + style.Render(strings.Repeat(" ", padding)) + rightR
}
