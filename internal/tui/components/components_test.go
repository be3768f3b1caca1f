package components

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("Line %d has NO ANSI codes - will show as black squares", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("Line %d: width %d, want %d", i, w, want)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for total := 10; total < 40; total++ {
		for n := 1; n <= 5; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
}

func TestTabBarWidthsMatchHitTesting(t *testing.T) {
	counts := [model.TabCount]int{12, 3, 7, 2}
	for active := model.TabAll; active < model.TabCount; active++ {
		bar := RenderTabBar(active, counts, 200)
		plain := strings.TrimRight(stripANSI(bar), " ")

		pos := 0
		for tab := model.TabAll; tab < model.TabCount; tab++ {
			w := TabVisualWidth(tab, counts[tab])
			if got := TabAtX(pos+w/2, counts); got != tab {
				t.Fatalf("active=%v x=%d -> tab=%v, want %v", active, pos+w/2, got, tab)
			}
			label := TabLabel(tab, counts[tab])
			if !strings.Contains(plain, label) {
				t.Errorf("tab bar %q missing %q", plain, label)
			}
			pos += w + 1
		}
		if got := lipgloss.Width(plain); got != pos-1 {
			t.Errorf("active=%v: rendered width %d, hitboxes span %d", active, got, pos-1)
		}
	}
	if got := TabAtX(10_000, counts); got != -1 {
		t.Errorf("TabAtX past the end = %v, want -1", got)
	}
}

func TestGoalRowFitsWidth(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	g := model.Goal{
		ID: 1, Title: "Run a marathon before the end of the year",
		Category: model.CategoryHealthFitness, Completed: 40, EndDate: model.NewDate(2024, 5, 1),
	}
	row := GoalRow(g, true, 60, now)
	lines := strings.Split(row, "\n")
	if len(lines) != GoalRowHeight {
		t.Fatalf("row has %d lines, want %d", len(lines), GoalRowHeight)
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 60 {
			t.Errorf("line %d width = %d, want 60: %q", i, w, stripANSI(l))
		}
	}
	if !strings.Contains(stripANSI(row), "overdue") {
		t.Errorf("overdue goal should say so: %q", stripANSI(row))
	}
}

func TestGoalDetailListsSteps(t *testing.T) {
	g := model.Goal{
		Title: "Read", Category: model.CategoryEducation, Completed: 50,
		Steps: model.Steps{{Title: "Dune", Done: true}, {Title: "Foundation"}},
	}
	out := stripANSI(GoalDetail(g, 50, time.Now()))
	for _, want := range []string{"Education", "In Progress", "■□ 1/2", "✓ Dune", "○ Foundation"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestStepsBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "no steps"},
		{1, 3, 10, "■□□ 1/3"},
		{3, 3, 10, "■■■ 3/3"},
		{5, 20, 4, "■□□□ 5/20"},
		{9, 3, 10, "■■■ 3/3"},
	}
	for _, tt := range tests {
		if got := stripANSI(StepsBar(tt.done, tt.total, tt.width)); got != tt.want {
			t.Errorf("StepsBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestCompactBarWidth(t *testing.T) {
	out := CompactBar("avg", 0.5, 22)
	plain := stripANSI(out)
	if !strings.HasPrefix(plain, "avg ") || !strings.HasSuffix(plain, "50%") {
		t.Errorf("CompactBar = %q", plain)
	}
	if w := lipgloss.Width(out); w > 22 {
		t.Errorf("CompactBar width = %d, want at most 22", w)
	}
	full := CompactBar("avg", 3, 22)
	if got := stripANSI(full); !strings.HasSuffix(got, "100%") {
		t.Errorf("CompactBar should clamp, got %q", got)
	}
	if w := lipgloss.Width(full); w != 22 {
		t.Errorf("CompactBar width at 100%% = %d, want 22", w)
	}
}

func TestCategoryChartSkipsEmpty(t *testing.T) {
	out := stripANSI(CategoryChart([]model.CategoryStats{
		{Category: model.CategoryCareer, Goals: 4, AverageCompletion: 50},
		{Category: model.CategoryFinance, Goals: 0},
		{Category: model.CategoryEducation, Goals: 1, AverageCompletion: 100},
	}, 60))
	if strings.Contains(out, "Finance") {
		t.Errorf("empty category rendered:\n%s", out)
	}
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Errorf("chart has %d rows, want 2:\n%s", got, out)
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
