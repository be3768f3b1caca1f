// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/goaltrack/internal/model"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	if pct == float64(int(pct)) {
		return fmt.Sprintf("%d%%", int(pct))
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSteps renders step progress as "done/total", or "-" without steps.
func FormatSteps(s model.Steps) string {
	done, total := s.Progress()
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", done, total)
}

// FormatDue describes an end date relative to now.
// e.g., "2024-06-01 (in 3d)", "2024-06-01 (5d overdue)", "-"
func FormatDue(d model.Date, now time.Time) string {
	if d.IsZero() {
		return "-"
	}
	days := DaysUntil(d, now)
	switch {
	case days == 0:
		return d.String() + " (today)"
	case days > 0:
		return fmt.Sprintf("%s (in %dd)", d.String(), days)
	default:
		return fmt.Sprintf("%s (%dd overdue)", d.String(), -days)
	}
}

// DaysUntil returns the number of calendar days from now's date to d.
func DaysUntil(d model.Date, now time.Time) int {
	y, m, day := now.UTC().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	y, m, day = d.UTC().Date()
	due := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24)
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
