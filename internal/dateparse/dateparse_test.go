package dateparse

import (
	"errors"
	"testing"
	"time"

	"github.com/shamimbinnur/jerd/internal/calendar"
)

// 2025-06-15 is a Sunday
var sunday = calendar.MustNew(2025, time.June, 15)

func TestParseKeywords(t *testing.T) {
	p := NewWithToday(sunday)

	tests := []struct {
		input string
		want  string
	}{
		{"", "2025-06-15"},
		{"today", "2025-06-15"},
		{"now", "2025-06-15"},
		{"  TODAY  ", "2025-06-15"},
		{"yesterday", "2025-06-14"},
		{"tomorrow", "2025-06-16"},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseISORoundTrip(t *testing.T) {
	p := NewWithToday(sunday)

	for _, s := range []string{"2025-12-25", "2024-02-29", "1999-01-01", "2030-07-04"} {
		got, err := p.Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", s, err)
			continue
		}
		if got.String() != s {
			t.Errorf("Parse(%q) = %s, want identity", s, got)
		}
	}

	got, err := p.Parse("2025/12/25")
	if err != nil || got.String() != "2025-12-25" {
		t.Errorf("Parse(2025/12/25) = %v, %v; want 2025-12-25", got, err)
	}
}

func TestParseISORejectsLooseForms(t *testing.T) {
	p := NewWithToday(sunday)

	for _, s := range []string{"2025-2-5", "2025-02-30", "2025-13-01", "2025-02-05x", "20250205", "2025-02/05"} {
		if got, err := p.Parse(s); err == nil {
			t.Errorf("Parse(%q) = %s, want failure", s, got)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	p := NewWithToday(sunday)

	tests := []struct {
		input string
		want  string
	}{
		{"sunday", "2025-06-15"},
		{"sun", "2025-06-15"},
		{"monday", "2025-06-09"},
		{"last monday", "2025-06-09"},
		{"mon", "2025-06-09"},
		{"saturday", "2025-06-14"},
		{"Last   Fri", "2025-06-13"},
		{"wednesday", "2025-06-11"},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseWeekdayMidWeek(t *testing.T) {
	// Wednesday
	p := NewWithToday(calendar.MustNew(2025, time.June, 18))

	got, _ := p.Parse("wed")
	if got.String() != "2025-06-18" {
		t.Errorf("Parse(wed) = %s, want today", got)
	}
	got, _ = p.Parse("thursday")
	if got.String() != "2025-06-12" {
		t.Errorf("Parse(thursday) = %s, want 2025-06-12", got)
	}
}

func TestParseDayMonthYear(t *testing.T) {
	p := NewWithToday(sunday)

	tests := []struct {
		input string
		want  string
	}{
		{"25 dec 24", "2024-12-25"},
		{"25th December 2024", "2024-12-25"},
		{"1 jan 45", "2045-01-01"},
		{"1 jan 46", "1946-01-01"},
		{"12 sept 99", "1999-09-12"},
		{"29 feb 2024", "2024-02-29"},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	for _, s := range []string{"29 feb 2025", "31 apr 24", "5 foo 2024", "5 jan 123"} {
		if got, err := p.Parse(s); err == nil {
			t.Errorf("Parse(%q) = %s, want failure", s, got)
		}
	}
}

func TestParseDayMonth(t *testing.T) {
	p := NewWithToday(sunday)

	tests := []struct {
		input string
		want  string
	}{
		{"25 dec", "2025-12-25"},
		{"25th December", "2025-12-25"},
		{"23 sept", "2025-09-23"},
		{"1st   MAY", "2025-05-01"},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseRejectsOverflow(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025} {
		p := NewWithToday(calendar.MustNew(year, time.March, 10))
		for _, s := range []string{"31 feb", "30 feb", "31 feb 24", "29 feb 23"} {
			if got, err := p.Parse(s); err == nil {
				t.Errorf("year %d: Parse(%q) = %s, want failure", year, s, got)
			}
		}
	}
}

func TestParseMonthDay(t *testing.T) {
	p := NewWithToday(sunday)

	tests := []struct {
		input string
		want  string
	}{
		{"jan 23", "2025-01-23"},
		{"january 23rd", "2025-01-23"},
		{"feb 2", "2025-02-02"},
		{"feb 24", "2025-02-24"},
		{"feb", "2025-02-01"},
		{"December", "2025-12-01"},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseMonthYear(t *testing.T) {
	p := NewWithToday(sunday)

	tests := []struct {
		input string
		want  string
	}{
		{"dec 2025", "2025-12-01"},
		{"December 2024", "2024-12-01"},
		{"feb 32", "2032-02-01"},
		{"mar 99", "1999-03-01"},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseDayOnly(t *testing.T) {
	p := NewWithToday(sunday)

	got, err := p.Parse("25th")
	if err != nil || got.String() != "2025-06-25" {
		t.Errorf("Parse(25th) = %v, %v; want 2025-06-25", got, err)
	}
	got, err = p.Parse("1")
	if err != nil || got.String() != "2025-06-01" {
		t.Errorf("Parse(1) = %v, %v; want 2025-06-01", got, err)
	}

	// June has 30 days
	for _, s := range []string{"31", "0", "32"} {
		if got, err := p.Parse(s); err == nil {
			t.Errorf("Parse(%q) = %s, want failure", s, got)
		}
	}
}

func TestParseUnicodeSpaces(t *testing.T) {
	p := NewWithToday(sunday)

	tests := []struct {
		input string
		want  string
	}{
		{"25\tdec", "2025-12-25"},
		{"25\u00a0dec", "2025-12-25"},
		{"last\u00a0monday", "2025-06-09"},
		{"25\u2009 dec\u3000 2024", "2024-12-25"},
		{"\u00a0yesterday\u00a0", "2025-06-14"},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseFailures(t *testing.T) {
	p := NewWithToday(sunday)

	for _, s := range []string{"   ", "someday", "next week", "last", "123", "dec 32 2025", "jan 5 2025"} {
		_, err := p.Parse(s)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want failure", s)
			continue
		}
		if !errors.Is(err, ErrUnrecognized) {
			t.Errorf("Parse(%q) error = %v, want ErrUnrecognized", s, err)
		}
	}
}

func TestInferYear(t *testing.T) {
	tests := []struct {
		input   string
		current int
		want    int
	}{
		{"24", 2025, 2024},
		{"45", 2025, 2045},
		{"46", 2025, 1946},
		{"00", 2025, 2000},
		{"2031", 2025, 2031},
		{"99", 2090, 2099},
		{"05", 2090, 2005},
	}

	for _, tt := range tests {
		got, ok := inferYear(tt.input, tt.current)
		if !ok || got != tt.want {
			t.Errorf("inferYear(%q, %d) = %d, %v; want %d", tt.input, tt.current, got, ok, tt.want)
		}
	}

	if _, ok := inferYear("123", 2025); ok {
		t.Error("three digit years should be rejected")
	}
}

func TestMonthNumber(t *testing.T) {
	if m, ok := MonthNumber("Sept"); !ok || m != time.September {
		t.Errorf("MonthNumber(Sept) = %v, %v", m, ok)
	}
	if _, ok := MonthNumber("smarch"); ok {
		t.Error("MonthNumber(smarch) should fail")
	}
}

func TestZeroParserUsesClock(t *testing.T) {
	var p Parser
	got, err := p.Parse("today")
	if err != nil {
		t.Fatalf("Parse(today) error: %v", err)
	}
	if !got.Equal(calendar.Today()) {
		t.Errorf("zero Parser today = %s, want %s", got, calendar.Today())
	}
}
