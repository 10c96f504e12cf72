package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shamimbinnur/jerd/internal/mood"
)

const barMaxWidth = 25

func moodStyle(l mood.Label) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color()))
}

// WeeklyChart draws one vertical bar per day, heights 1 to 5
func (t *Theme) WeeklyChart(title string, days []mood.Day) string {
	var b strings.Builder
	b.WriteString(t.Header("📊 " + title))
	b.WriteString("\n")

	for level := 5; level >= 1; level-- {
		b.WriteString(t.muted.Render(fmt.Sprintf("%d │ ", level)))
		for _, d := range days {
			if d.HasMood() && d.Value() >= level {
				b.WriteString(moodStyle(d.Label).Render("██") + " ")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(t.muted.Render("  └─" + strings.Repeat("───", len(days))))
	b.WriteString("\n    ")
	for _, d := range days {
		b.WriteString(t.label.Render(fmt.Sprintf("%-3s", d.Date.Weekday().String()[:2])))
	}
	b.WriteString("\n")

	b.WriteString(t.MoodStats(mood.Summarize(days)))
	return b.String()
}

// MonthlyChart draws one horizontal bar per recorded mood, scaled so the
// most frequent mood spans the full width
func (t *Theme) MonthlyChart(title string, days []mood.Day) string {
	var b strings.Builder
	b.WriteString(t.Header("📊 " + title))
	b.WriteString("\n")

	counts := mood.Breakdown(days)
	if len(counts) == 0 {
		b.WriteString(t.muted.Render("No mood data found for this period.") + "\n")
		b.WriteString(t.Hint(`Add a "mood:" line (great, good, okay or low) to an entry's frontmatter`))
		return b.String()
	}

	max := counts[0].Count
	for _, c := range counts {
		width := int(math.Round(float64(c.Count) / float64(max) * barMaxWidth))
		style := moodStyle(c.Label)
		fmt.Fprintf(&b, "%s %s %s %d\n",
			c.Label.Glyph(),
			style.Render(fmt.Sprintf("%-6s", string(c.Label))),
			style.Render(strings.Repeat("█", width)),
			c.Count)
	}

	b.WriteString(t.MoodStats(mood.Summarize(days)))
	return b.String()
}

// MoodStats formats the lines printed under both charts. Lines with
// nothing to report are left out.
func (t *Theme) MoodStats(s mood.Summary) string {
	var lines []string
	for _, line := range StatsLines(s) {
		lines = append(lines, t.muted.Render(line))
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

// StatsLines is the unstyled text of MoodStats
func StatsLines(s mood.Summary) []string {
	var lines []string
	if s.HasAverage {
		lines = append(lines, fmt.Sprintf("Average mood: %.1f/5", s.Average))
	}
	if s.WithoutMood > 0 {
		lines = append(lines, fmt.Sprintf("%d entries had no mood data", s.WithoutMood))
	}
	if s.Missing > 0 {
		lines = append(lines, fmt.Sprintf("%d days without journal entries", s.Missing))
	}
	return lines
}
