package mood

import (
	"math"
	"testing"

	"github.com/shamimbinnur/jerd/internal/calendar"
)

func date(s string) calendar.Date {
	d, err := calendar.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// journal is an in-memory stand-in for the entry files: present days map to
// their recorded mood text
type journal map[string]string

func (j journal) exists(d calendar.Date) bool {
	_, ok := j[d.String()]
	return ok
}

func (j journal) mood(d calendar.Date) Label {
	return Parse(j[d.String()])
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Label
	}{
		{"great", Great},
		{" Good ", Good},
		{"OKAY", Okay},
		{"low", Low},
		{"", None},
		{"meh", None},
	}

	for _, tt := range tests {
		if got := Parse(tt.input); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLabelMetadata(t *testing.T) {
	want := map[Label]int{Great: 5, Good: 4, Okay: 3, Low: 2, None: 0}
	for l, v := range want {
		if l.Value() != v {
			t.Errorf("%q.Value() = %d, want %d", l, l.Value(), v)
		}
	}

	if None.Valid() {
		t.Error("None should not be valid")
	}
	if None.Glyph() != "❓" || None.Color() != "#6b7280" {
		t.Error("None should use the fallback glyph and colour")
	}
	if Great.Title() != "Great" {
		t.Errorf("Great.Title() = %q", Great.Title())
	}

	for i := 1; i < len(Labels); i++ {
		if Labels[i-1].Value() <= Labels[i].Value() {
			t.Errorf("Labels not strongest first at %d", i)
		}
	}
}

func TestCollect(t *testing.T) {
	j := journal{
		"2025-06-10": "great",
		"2025-06-11": "",
		"2025-06-13": "low",
		"2025-06-14": "unknown",
	}

	days := Collect(date("2025-06-09"), date("2025-06-15"), j.mood, j.exists)
	if len(days) != 7 {
		t.Fatalf("Collect returned %d days, want 7", len(days))
	}

	want := []struct {
		exists bool
		label  Label
	}{
		{false, None},
		{true, Great},
		{true, None},
		{false, None},
		{true, Low},
		{true, None},
		{false, None},
	}
	for i, w := range want {
		if days[i].Exists != w.exists || days[i].Label != w.label {
			t.Errorf("day %s = {%v %q}, want {%v %q}", days[i].Date, days[i].Exists, days[i].Label, w.exists, w.label)
		}
	}

	par := CollectParallel(date("2025-06-09"), date("2025-06-15"), j.mood, j.exists)
	for i := range days {
		if par[i] != days[i] {
			t.Errorf("parallel day %d = %+v, want %+v", i, par[i], days[i])
		}
	}
}

func TestCollectSkipsMoodLookupForMissingDays(t *testing.T) {
	calls := 0
	moodFn := func(calendar.Date) Label {
		calls++
		return Good
	}
	never := func(calendar.Date) bool { return false }

	days := Collect(date("2025-06-01"), date("2025-06-30"), moodFn, never)
	if calls != 0 {
		t.Errorf("mood looked up %d times for days without entries", calls)
	}
	for _, d := range days {
		if d.HasMood() {
			t.Errorf("%s has a mood without an entry", d.Date)
		}
	}
}

func TestSummarizeNoEntries(t *testing.T) {
	days := Collect(date("2025-06-01"), date("2025-06-07"), func(calendar.Date) Label { return None }, func(calendar.Date) bool { return false })
	s := Summarize(days)

	if s.HasAverage {
		t.Errorf("average should be undefined, got %v", s.Average)
	}
	if s.Missing != s.Total || s.Total != 7 {
		t.Errorf("missing = %d, total = %d, want both 7", s.Missing, s.Total)
	}
}

func TestSummarize(t *testing.T) {
	j := journal{
		"2025-06-01": "great",
		"2025-06-02": "good",
		"2025-06-03": "",
		"2025-06-05": "low",
		"2025-06-06": "good",
	}
	days := Collect(date("2025-06-01"), date("2025-06-07"), j.mood, j.exists)
	s := Summarize(days)

	if !s.HasAverage || math.Abs(s.Average-3.75) > 1e-9 {
		t.Errorf("average = %v (%v), want 3.75", s.Average, s.HasAverage)
	}
	if s.WithMood != 4 {
		t.Errorf("WithMood = %d, want 4", s.WithMood)
	}
	if s.WithoutMood != 1 {
		t.Errorf("WithoutMood = %d, want 1", s.WithoutMood)
	}
	if s.Missing != 2 {
		t.Errorf("Missing = %d, want 2", s.Missing)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.HasAverage || s.Total != 0 || s.Missing != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestBreakdown(t *testing.T) {
	var days []Day
	add := func(l Label, n int) {
		for i := 0; i < n; i++ {
			days = append(days, Day{Date: date("2025-01-01").AddDays(len(days)), Exists: true, Label: l})
		}
	}
	add(Low, 3)
	add(Okay, 2)
	add(Great, 2)
	add(Good, 3)
	add(None, 4)

	got := Breakdown(days)
	want := []Count{{Good, 3}, {Low, 3}, {Great, 2}, {Okay, 2}}
	if len(got) != len(want) {
		t.Fatalf("Breakdown = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Breakdown[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if len(Breakdown(nil)) != 0 {
		t.Error("Breakdown of nothing should be empty")
	}
}
