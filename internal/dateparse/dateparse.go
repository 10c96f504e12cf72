// Package dateparse turns loose human date expressions ("today", "25 dec",
// "last monday", "25th") into a calendar date.
//
// Expressions are tried against a fixed list of matchers in priority order and
// the first one that produces a valid date wins. Every matcher that assembles a
// date from separate components validates it, so "31 feb" is rejected rather
// than rolling over into March.
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shamimbinnur/jerd/internal/calendar"
)

// ErrUnrecognized is returned when no matcher accepts the expression
var ErrUnrecognized = errors.New("unrecognized date")

// Usage lists the accepted formats. Commands print it after a parse failure.
const Usage = `Supported formats:
  - Keywords: today, yesterday, tomorrow, now
  - ISO: 2025-12-25, 2025/12/25
  - Day: 25, 25th
  - Day + Month: 25 dec, 25th December
  - Day + Month + Year: 25 dec 24, 25th December 2024
  - Month: dec, December (defaults to 1st)
  - Month + Day: dec 25, December 25th
  - Month + Year: dec 2025, December 2025
  - Weekday: monday, mon, last monday (finds most recent)`

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July,
	"aug": time.August, "sep": time.September, "sept": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday, "friday": time.Friday,
	"saturday": time.Saturday,
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

var (
	ordinalRe      = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)\b`)
	spaceRe        = regexp.MustCompile(`[\s\p{Zs}]+`)
	isoDashRe      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	isoSlashRe     = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})$`)
	lastRe         = regexp.MustCompile(`^last\s+`)
	dayMonthYearRe = regexp.MustCompile(`^(\d{1,2})\s+([a-z]+)\s+(\d{2,4})$`)
	dayMonthRe     = regexp.MustCompile(`^(\d{1,2})\s+([a-z]+)$`)
	monthDayRe     = regexp.MustCompile(`^([a-z]+)(?:\s+(\d{1,2}))?$`)
	monthYearRe    = regexp.MustCompile(`^([a-z]+)\s+(\d{2,4})$`)
	dayOnlyRe      = regexp.MustCompile(`^(\d{1,2})$`)
)

// MonthNumber resolves a full or abbreviated month name, case-insensitively
func MonthNumber(name string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Parser resolves expressions relative to a reference "today"
type Parser struct {
	Today func() calendar.Date
}

// New returns a parser that uses the local clock
func New() *Parser {
	return &Parser{Today: calendar.Today}
}

// NewWithToday returns a parser pinned to a fixed reference date
func NewWithToday(today calendar.Date) *Parser {
	return &Parser{Today: func() calendar.Date { return today }}
}

// Parse converts expr into a date. The empty string means "no date given"
// and resolves to today.
func (p *Parser) Parse(expr string) (calendar.Date, error) {
	today := p.today()
	if expr == "" {
		return today, nil
	}

	input := normalize(expr)
	if input == "" {
		return calendar.Date{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
	}

	for _, m := range p.matchers(today) {
		if d, ok := m.match(input); ok {
			return d, nil
		}
	}
	return calendar.Date{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

// Reference returns the date relative expressions resolve against
func (p *Parser) Reference() calendar.Date {
	return p.today()
}

func (p *Parser) today() calendar.Date {
	if p == nil || p.Today == nil {
		return calendar.Today()
	}
	return p.Today()
}

type matcher struct {
	name  string
	match func(input string) (calendar.Date, bool)
}

// matchers returns the matchers in priority order. Month+day must come
// before month+year so that "jan 23" is January 23rd, not January 2023.
func (p *Parser) matchers(today calendar.Date) []matcher {
	return []matcher{
		{"keyword", func(s string) (calendar.Date, bool) { return matchKeyword(s, today) }},
		{"iso", matchISO},
		{"weekday", func(s string) (calendar.Date, bool) { return matchWeekday(s, today) }},
		{"day-month-year", func(s string) (calendar.Date, bool) { return matchDayMonthYear(s, today) }},
		{"day-month", func(s string) (calendar.Date, bool) { return matchDayMonth(s, today) }},
		{"month-day", func(s string) (calendar.Date, bool) { return matchMonthDay(s, today) }},
		{"month-year", func(s string) (calendar.Date, bool) { return matchMonthYear(s, today) }},
		{"day", func(s string) (calendar.Date, bool) { return matchDay(s, today) }},
	}
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = ordinalRe.ReplaceAllString(s, "$1")
	return spaceRe.ReplaceAllString(s, " ")
}

func matchKeyword(s string, today calendar.Date) (calendar.Date, bool) {
	switch s {
	case "today", "now":
		return today, true
	case "yesterday":
		return today.AddDays(-1), true
	case "tomorrow":
		return today.AddDays(1), true
	}
	return calendar.Date{}, false
}

func matchISO(s string) (calendar.Date, bool) {
	for _, re := range []*regexp.Regexp{isoDashRe, isoSlashRe} {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if d, err := calendar.New(year, time.Month(month), day); err == nil {
			return d, true
		}
	}
	return calendar.Date{}, false
}

// matchWeekday resolves a weekday name to its most recent occurrence on or
// before today. A leading "last" changes nothing.
func matchWeekday(s string, today calendar.Date) (calendar.Date, bool) {
	target, ok := weekdayNames[lastRe.ReplaceAllString(s, "")]
	if !ok {
		return calendar.Date{}, false
	}
	back := (int(today.Weekday()) - int(target) + 7) % 7
	return today.AddDays(-back), true
}

func matchDayMonthYear(s string, today calendar.Date) (calendar.Date, bool) {
	m := dayMonthYearRe.FindStringSubmatch(s)
	if m == nil {
		return calendar.Date{}, false
	}
	month, ok := monthNames[m[2]]
	if !ok {
		return calendar.Date{}, false
	}
	year, ok := inferYear(m[3], today.Year())
	if !ok {
		return calendar.Date{}, false
	}
	day, _ := strconv.Atoi(m[1])
	return build(year, month, day)
}

func matchDayMonth(s string, today calendar.Date) (calendar.Date, bool) {
	m := dayMonthRe.FindStringSubmatch(s)
	if m == nil {
		return calendar.Date{}, false
	}
	month, ok := monthNames[m[2]]
	if !ok {
		return calendar.Date{}, false
	}
	day, _ := strconv.Atoi(m[1])
	if day < 1 || day > 31 {
		return calendar.Date{}, false
	}
	return build(today.Year(), month, day)
}

func matchMonthDay(s string, today calendar.Date) (calendar.Date, bool) {
	m := monthDayRe.FindStringSubmatch(s)
	if m == nil {
		return calendar.Date{}, false
	}
	month, ok := monthNames[m[1]]
	if !ok {
		return calendar.Date{}, false
	}
	day := 1
	if m[2] != "" {
		day, _ = strconv.Atoi(m[2])
	}
	if day < 1 || day > 31 {
		return calendar.Date{}, false
	}
	return build(today.Year(), month, day)
}

// matchMonthYear only sees "<month> <number>" inputs that month-day declined,
// in practice numbers above 31 or four digit years.
func matchMonthYear(s string, today calendar.Date) (calendar.Date, bool) {
	m := monthYearRe.FindStringSubmatch(s)
	if m == nil {
		return calendar.Date{}, false
	}
	month, ok := monthNames[m[1]]
	if !ok {
		return calendar.Date{}, false
	}
	year, ok := inferYear(m[2], today.Year())
	if !ok {
		return calendar.Date{}, false
	}
	return build(year, month, 1)
}

func matchDay(s string, today calendar.Date) (calendar.Date, bool) {
	m := dayOnlyRe.FindStringSubmatch(s)
	if m == nil {
		return calendar.Date{}, false
	}
	day, _ := strconv.Atoi(m[1])
	if day < 1 || day > 31 {
		return calendar.Date{}, false
	}
	return build(today.Year(), today.Month(), day)
}

// inferYear expands a two digit year with an 80/20 window around the current
// year: up to 20 years ahead stays in this century, anything further back
// goes to the previous one. Four digit years pass through.
func inferYear(s string, currentYear int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if n >= 1000 {
		return n, true
	}
	if n < 0 || n > 99 {
		return 0, false
	}
	century := currentYear / 100 * 100
	if n <= currentYear%100+20 {
		return century + n, true
	}
	return century - 100 + n, true
}

func build(year int, month time.Month, day int) (calendar.Date, bool) {
	d, err := calendar.New(year, month, day)
	if err != nil {
		return calendar.Date{}, false
	}
	return d, true
}
