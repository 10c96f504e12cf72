// Package mood collects the mood recorded in each day's entry and summarizes
// it for the weekly and monthly charts.
package mood

import (
	"sort"
	"strings"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/parallel"
)

// Label is a named mood. The zero value, None, means no mood was recorded.
type Label string

const (
	None  Label = ""
	Great Label = "great"
	Good  Label = "good"
	Okay  Label = "okay"
	Low   Label = "low"
)

// Labels lists every known mood, strongest first
var Labels = []Label{Great, Good, Okay, Low}

type meta struct {
	value int
	glyph string
	color string
}

var moods = map[Label]meta{
	Great: {5, "😊", "#10b981"},
	Good:  {4, "🙂", "#22c55e"},
	Okay:  {3, "😐", "#f59e0b"},
	Low:   {2, "😔", "#f97316"},
}

// Parse maps free text to a Label. Unknown text is None.
func Parse(s string) Label {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := moods[l]; ok {
		return l
	}
	return None
}

// Valid reports whether l is one of the known moods
func (l Label) Valid() bool {
	_, ok := moods[l]
	return ok
}

// Value is the mood's strength from 1 to 5, or 0 for None
func (l Label) Value() int {
	return moods[l].value
}

// Glyph returns the emoji shown next to the mood
func (l Label) Glyph() string {
	if m, ok := moods[l]; ok {
		return m.glyph
	}
	return "❓"
}

// Color returns the hex colour used to draw the mood
func (l Label) Color() string {
	if m, ok := moods[l]; ok {
		return m.color
	}
	return "#6b7280"
}

// Title is the capitalized label
func (l Label) Title() string {
	if l == None {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Func returns the mood recorded for a date. It must not fail: a missing
// entry, a missing field and a read error all return None.
type Func func(calendar.Date) Label

// ExistsFunc reports whether an entry exists for a date
type ExistsFunc func(calendar.Date) bool

// Day is one day of a mood series
type Day struct {
	Date   calendar.Date
	Exists bool
	Label  Label
}

// Value is the day's mood strength, 0 when there is none
func (d Day) Value() int {
	return d.Label.Value()
}

// HasMood reports whether the day carries a known mood
func (d Day) HasMood() bool {
	return d.Label.Valid()
}

// Collect builds the series for start..end inclusive, oldest first. The mood
// is only looked up for days that have an entry.
func Collect(start, end calendar.Date, moodFn Func, exists ExistsFunc) []Day {
	dates := calendar.Range(start, end)
	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, lookup(d, moodFn, exists))
	}
	return days
}

// CollectParallel is Collect with the per-day reads done on a worker pool
func CollectParallel(start, end calendar.Date, moodFn Func, exists ExistsFunc) []Day {
	days := parallel.Map(calendar.Range(start, end), func(d calendar.Date) Day {
		return lookup(d, moodFn, exists)
	})
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	if days == nil {
		days = []Day{}
	}
	return days
}

func lookup(d calendar.Date, moodFn Func, exists ExistsFunc) Day {
	day := Day{Date: d, Exists: exists(d)}
	if day.Exists {
		if l := moodFn(d); l.Valid() {
			day.Label = l
		}
	}
	return day
}

// Summary holds the statistics printed under both charts
type Summary struct {
	Average     float64 // only meaningful when HasAverage
	HasAverage  bool
	WithMood    int
	WithoutMood int // entries that exist but have no mood
	Missing     int // days without an entry
	Total       int
}

// Summarize computes the statistics for a series
func Summarize(days []Day) Summary {
	s := Summary{Total: len(days)}
	sum := 0
	for _, d := range days {
		switch {
		case d.HasMood():
			s.WithMood++
			sum += d.Value()
		case d.Exists:
			s.WithoutMood++
		}
		if !d.Exists {
			s.Missing++
		}
	}
	if s.WithMood > 0 {
		s.Average = float64(sum) / float64(s.WithMood)
		s.HasAverage = true
	}
	return s
}

// Count is the number of days recorded with one mood
type Count struct {
	Label Label
	Count int
}

// Breakdown counts days per mood. Moods that never occur are left out. The
// result is ordered by count, most frequent first, with ties going to the
// stronger mood.
func Breakdown(days []Day) []Count {
	counts := make(map[Label]int)
	for _, d := range days {
		if d.HasMood() {
			counts[d.Label]++
		}
	}

	out := make([]Count, 0, len(counts))
	for l, n := range counts {
		out = append(out, Count{Label: l, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label.Value() > out[j].Label.Value()
	})
	return out
}
