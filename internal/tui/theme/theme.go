// Package theme defines color themes for the goaltrack TUI dashboard.
package theme

import (
	"github.com/theirongolddev/goaltrack/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the dashboard's color roles to concrete colors.
type Theme struct {
	Name string

	Background lipgloss.Color
	Surface    lipgloss.Color // cards, panels, status bar
	Selected   lipgloss.Color // active tab, selected goal
	Border     lipgloss.Color
	Focus      lipgloss.Color // overlay borders

	Text      lipgloss.Color
	TextMuted lipgloss.Color
	TextDim   lipgloss.Color
	Accent    lipgloss.Color
	Title     lipgloss.Color
	Key       lipgloss.Color // key names in the help overlay

	Done       lipgloss.Color
	InProgress lipgloss.Color
	DueSoon    lipgloss.Color
	Alert      lipgloss.Color // overdue goals, errors
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:       "flexoki-dark",
	Background: "#100F0F",
	Surface:    "#1C1B1A",
	Selected:   "#282726",
	Border:     "#403E3C",
	Focus:      "#3AA99F",
	Text:       "#FFFCF0",
	TextMuted:  "#878580",
	TextDim:    "#575653",
	Accent:     "#3AA99F",
	Title:      "#5BC8BE",
	Key:        "#24837B",
	Done:       "#879A39",
	InProgress: "#4385BE",
	DueSoon:    "#DA702C",
	Alert:      "#D14D41",
}

var CatppuccinMocha = Theme{
	Name:       "catppuccin-mocha",
	Background: "#1E1E2E",
	Surface:    "#313244",
	Selected:   "#45475A",
	Border:     "#585B70",
	Focus:      "#89B4FA",
	Text:       "#CDD6F4",
	TextMuted:  "#A6ADC8",
	TextDim:    "#6C7086",
	Accent:     "#89B4FA",
	Title:      "#B4D0FB",
	Key:        "#94E2D5",
	Done:       "#A6E3A1",
	InProgress: "#89B4FA",
	DueSoon:    "#FAB387",
	Alert:      "#F38BA8",
}

var TokyoNight = Theme{
	Name:       "tokyo-night",
	Background: "#1A1B26",
	Surface:    "#24283B",
	Selected:   "#343A52",
	Border:     "#565F89",
	Focus:      "#7AA2F7",
	Text:       "#C0CAF5",
	TextMuted:  "#A9B1D6",
	TextDim:    "#565F89",
	Accent:     "#7AA2F7",
	Title:      "#A9C1FF",
	Key:        "#7DCFFF",
	Done:       "#9ECE6A",
	InProgress: "#7AA2F7",
	DueSoon:    "#FF9E64",
	Alert:      "#F7768E",
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:       "terminal",
	Background: "0",
	Surface:    "0",
	Selected:   "8",
	Border:     "8",
	Focus:      "6",
	Text:       "15",
	TextMuted:  "7",
	TextDim:    "8",
	Accent:     "6",
	Title:      "14",
	Key:        "6",
	Done:       "2",
	InProgress: "4",
	DueSoon:    "3",
	Alert:      "1",
}

// All lists the selectable themes in display order.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns the named theme, or FlexokiDark when none matches.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

func SetActive(name string) {
	Active = ByName(name)
}

func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ForBucket returns the color that marks goals in bucket b.
func (t Theme) ForBucket(b model.Bucket) lipgloss.Color {
	switch b {
	case model.BucketCompleted:
		return t.Done
	case model.BucketInProgress:
		return t.InProgress
	default:
		return t.TextMuted
	}
}
