package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/shamimbinnur/jerd/internal/activity"
)

const (
	dotChar   = "●"
	emptyChar = "○"
)

var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// StreakChart draws the contribution grid for an oldest-first series:
// one row per weekday, one column per week, then month labels, the streak
// counters and a legend.
func (t *Theme) StreakChart(title string, days []activity.Day) string {
	var b strings.Builder
	b.WriteString(t.Header("📅 " + title))
	b.WriteString("\n")

	grid := activity.BuildGrid(days)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		b.WriteString(t.muted.Render(dayLabels[wd]) + " ")
		for _, week := range grid {
			switch day := week[wd]; {
			case day == nil:
				b.WriteString(t.padding.Render(emptyChar))
			case day.Exists:
				b.WriteString(t.active.Render(dotChar))
			default:
				b.WriteString(t.inactive.Render(emptyChar))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if len(days) > 0 {
		b.WriteString("\n")
		b.WriteString(t.monthRow(activity.MonthLabels(grid)))
		b.WriteString("\n")
	}

	stats := activity.Summarize(days)
	b.WriteString("\n" + t.muted.Render(strings.Repeat("─", 40)) + "\n\n")
	b.WriteString(t.StreakLine(stats) + "\n\n")
	b.WriteString(t.muted.Render("Less ") + t.inactive.Render(emptyChar) + " " + t.active.Render(dotChar) + t.muted.Render(" More") + "\n")
	return b.String()
}

// monthRow lines each label up under its week column. Columns are two
// cells wide, so a label that would run into the previous one is dropped.
func (t *Theme) monthRow(labels []string) string {
	var b strings.Builder
	b.WriteString("    ")
	col := 0
	for i, label := range labels {
		pos := i * 2
		if label == "" || pos < col {
			continue
		}
		b.WriteString(strings.Repeat(" ", pos-col))
		b.WriteString(t.label.Render(label))
		col = pos + len(label) + 1
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

// StreakLine formats the current, longest and coverage counters
func (t *Theme) StreakLine(s activity.Stats) string {
	return t.active.Render(fmt.Sprintf("🔥 %d", s.Current)) + t.muted.Render(" current") + "  " +
		t.warning.Render(fmt.Sprintf("⭐ %d", s.Longest)) + t.muted.Render(" longest") + "  " +
		t.info.Render(fmt.Sprintf("📝 %d", s.Entries)) + t.muted.Render(fmt.Sprintf(" entries (%d%%)", s.Percentage))
}
