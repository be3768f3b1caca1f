package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder  = lipgloss.Color("#282726")
	ColorTextDim = lipgloss.Color("#575653")
	ColorText    = lipgloss.Color("#FFFCF0")
	ColorAccent  = lipgloss.Color("#3AA99F")
	ColorGreen   = lipgloss.Color("#879A39")
	ColorOrange  = lipgloss.Color("#DA702C")
	ColorBlue    = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	doneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	activeStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	// RightAlign marks right-aligned columns. When nil, every column but
	// the first is right-aligned.
	RightAlign []bool
}

func (t Table) rightAligned(col int) bool {
	if t.RightAlign == nil {
		return col > 0
	}
	return col < len(t.RightAlign) && t.RightAlign[col]
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if n := lipgloss.Width(h); n > widths[i] {
				widths[i] = n
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if n := lipgloss.Width(cell); i < numCols && n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			b.WriteString(padCell(cell, w, t.rightAligned(i)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// padCell pads a cell to w visible columns. Cells may carry their own
// ANSI styling, so width is measured with lipgloss rather than fmt.
func padCell(cell string, w int, right bool) string {
	gap := w - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if !strings.Contains(cell, "\x1b[") {
		cell = valueStyle.Render(cell)
	}
	if right {
		return " " + strings.Repeat(" ", gap) + cell + " "
	}
	return " " + cell + strings.Repeat(" ", gap) + " "
}

// RenderStepProgress renders "done/total" steps behind a short bar that
// turns green once every step is done. Goals without steps render "-".
func RenderStepProgress(done, total, width int) string {
	if total <= 0 {
		return "-"
	}
	if width <= 0 {
		width = 5
	}
	done = max(0, min(done, total))
	filled := done * width / total

	style := activeStyle
	switch {
	case done == total:
		style = doneStyle
	case done == 0:
		style = dimStyle
	}
	bar := strings.Repeat("▪", filled) + strings.Repeat("·", width-filled)
	return style.Render(bar) + fmt.Sprintf(" %d/%d", done, total)
}

// RenderCompletion renders a goal's completion as a bar colored by bucket,
// followed by the percentage.
func RenderCompletion(completed, width int) string {
	if width <= 0 {
		width = 10
	}
	if completed < 0 {
		completed = 0
	}
	if completed > 100 {
		completed = 100
	}
	filled := completed * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return BucketStyle(model.Goal{Completed: completed}).Render(bar) + fmt.Sprintf(" %3d%%", completed)
}

// BucketStyle returns the style used for a goal's status.
func BucketStyle(g model.Goal) lipgloss.Style {
	switch {
	case g.IsComplete():
		return doneStyle
	case g.Completed == 0:
		return dimStyle
	default:
		return activeStyle
	}
}

// RenderOverdue highlights a due string for overdue goals.
func RenderOverdue(s string, overdue bool) string {
	if overdue {
		return warnStyle.Render(s)
	}
	return s
}

// RenderHorizontalBar renders a labelled horizontal bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return fmt.Sprintf("  %s", label)
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	bar := strings.Repeat("█", barLen)
	return fmt.Sprintf("  %s %s", label, activeStyle.Render(bar))
}
