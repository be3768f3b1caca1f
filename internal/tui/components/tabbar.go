package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// tabPadding is the horizontal padding applied on each side of a tab label.
const tabPadding = 1

// TabLabel returns the unstyled text of a tab: shortcut digit, name, count.
func TabLabel(tab model.Tab, count int) string {
	return fmt.Sprintf("%d %s (%d)", int(tab)+1, tab, count)
}

// TabVisualWidth returns the rendered width of a tab including padding.
// RenderTabBar and mouse hit-testing must agree on this.
func TabVisualWidth(tab model.Tab, count int) int {
	return lipgloss.Width(TabLabel(tab, count)) + 2*tabPadding
}

// RenderTabBar renders the single-row tab bar with the given active tab.
// Tabs are separated by a one-column divider.
func RenderTabBar(active model.Tab, counts [model.TabCount]int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Title).
		Background(t.Selected).
		Bold(true).
		Padding(0, tabPadding)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, tabPadding)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	var parts []string
	for tab := model.TabAll; tab < model.TabCount; tab++ {
		if tab == active {
			parts = append(parts, activeStyle.Render(TabLabel(tab, counts[tab])))
			continue
		}
		label := TabLabel(tab, counts[tab])
		digit, rest, _ := strings.Cut(label, " ")
		parts = append(parts, inactiveStyle.Render(keyStyle.Render(digit)+inactiveStyle.UnsetPadding().Render(" "+rest)))
	}

	row := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabAtX returns the tab under column x of the tab bar, or -1.
func TabAtX(x int, counts [model.TabCount]int) model.Tab {
	pos := 0
	for tab := model.TabAll; tab < model.TabCount; tab++ {
		w := TabVisualWidth(tab, counts[tab])
		if x >= pos && x < pos+w {
			return tab
		}
		pos += w + 1 // divider
	}
	return -1
}
