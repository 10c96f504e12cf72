// Package activity builds the day-by-day writing record used by the streak view:
// which days have an entry, streak counters and a GitHub-style week grid.
package activity

import (
	"math"
	"sort"
	"time"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/parallel"
)

// Day records whether an entry exists for a date
type Day struct {
	Date   calendar.Date
	Exists bool
}

// ExistsFunc reports whether an entry exists for a date. Implementations must
// not fail; I/O errors count as "no entry".
type ExistsFunc func(calendar.Date) bool

// Stats summarizes a day series
type Stats struct {
	Current    int // consecutive days with an entry, counting back from the last day
	Longest    int
	Entries    int
	Total      int
	Percentage int
}

// Week is one column of the grid, Sunday first. Nil slots are padding.
type Week [7]*Day

// Grid is the calendar layout of a day series, one Week per column
type Grid []Week

// Collect checks every day from start to end inclusive and returns the
// records oldest first. An end before start yields an empty series.
func Collect(start, end calendar.Date, exists ExistsFunc) []Day {
	dates := calendar.Range(start, end)
	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, Day{Date: d, Exists: exists(d)})
	}
	return days
}

// CollectParallel is Collect with the lookups spread over a worker pool.
// The result is in chronological order.
func CollectParallel(start, end calendar.Date, exists ExistsFunc) []Day {
	days := parallel.Map(calendar.Range(start, end), func(d calendar.Date) Day {
		return Day{Date: d, Exists: exists(d)}
	})
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	if days == nil {
		days = []Day{}
	}
	return days
}

// Summarize computes streaks and coverage for an oldest-first series
func Summarize(days []Day) Stats {
	s := Stats{Total: len(days)}

	run := 0
	for _, d := range days {
		if !d.Exists {
			run = 0
			continue
		}
		s.Entries++
		run++
		if run > s.Longest {
			s.Longest = run
		}
	}

	for i := len(days) - 1; i >= 0 && days[i].Exists; i-- {
		s.Current++
	}

	if s.Total > 0 {
		s.Percentage = int(math.Round(100 * float64(s.Entries) / float64(s.Total)))
	}
	return s
}

// BuildGrid lays an oldest-first series out in weeks. A new week starts on
// each Sunday; the first week is padded at the front and the last at the end.
func BuildGrid(days []Day) Grid {
	var grid Grid
	var week Week
	filled := false

	for i := range days {
		wd := days[i].Date.Weekday()
		if wd == time.Sunday && filled {
			grid = append(grid, week)
			week = Week{}
			filled = false
		}
		week[wd] = &days[i]
		filled = true
	}
	if filled {
		grid = append(grid, week)
	}
	return grid
}

// MonthLabels returns one label per grid column: the short month name when
// the week's Sunday falls in a month not labelled yet, otherwise "".
// Partial weeks that don't contain a Sunday get no label.
func MonthLabels(grid Grid) []string {
	labels := make([]string, len(grid))
	last := time.Month(0)
	for i, week := range grid {
		sunday := week[time.Sunday]
		if sunday == nil {
			continue
		}
		if m := sunday.Date.Month(); m != last {
			labels[i] = sunday.Date.Format("Jan")
			last = m
		}
	}
	return labels
}
