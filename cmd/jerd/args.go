package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/dateparse"
	"github.com/shamimbinnur/jerd/internal/journal"
)

var yearRe = regexp.MustCompile(`^\d{4}$`)

// flagSet maps every spelling of a flag to its name
type flagSet struct {
	values map[string]string // flags followed by a value
	bools  map[string]string
}

type parsedArgs struct {
	flags map[string]string
	args  []string
}

func (p parsedArgs) has(name string) bool {
	_, ok := p.flags[name]
	return ok
}

func (p parsedArgs) value(name string) string {
	return p.flags[name]
}

// joined is the positional arguments as one expression, so that
// "jerd new 25 dec" reads the date "25 dec".
func (p parsedArgs) joined() string {
	return strings.Join(p.args, " ")
}

// parse splits args into flags and positional arguments. "--name=value" and
// "--name value" are both accepted.
func (fs flagSet) parse(args []string) (parsedArgs, error) {
	out := parsedArgs{flags: map[string]string{}}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			out.args = append(out.args, arg)
			continue
		}

		flag, inline, hasInline := strings.Cut(arg, "=")
		if name, ok := fs.bools[flag]; ok && !hasInline {
			out.flags[name] = ""
			continue
		}
		name, ok := fs.values[flag]
		if !ok {
			return parsedArgs{}, fmt.Errorf("unknown flag: %s", flag)
		}
		if hasInline {
			out.flags[name] = inline
			continue
		}
		if i+1 >= len(args) {
			return parsedArgs{}, fmt.Errorf("flag %s needs a value", flag)
		}
		i++
		out.flags[name] = args[i]
	}
	return out, nil
}

var (
	entryFlags = flagSet{
		values: map[string]string{"-t": "template", "--template": "template", "-e": "editor", "--editor": "editor"},
		bools:  map[string]string{"-y": "yes", "--yes": "yes"},
	}
	periodFlags = flagSet{
		bools: map[string]string{
			"-w": "week", "--week": "week",
			"-m": "month", "--month": "month",
			"-y": "year", "--year": "year",
		},
	}
	listFlags = flagSet{
		bools: map[string]string{"-a": "all", "--all": "all"},
	}
	configFlags = flagSet{
		bools: map[string]string{"-e": "editor", "--editor": "editor", "-t": "template", "--template": "template"},
	}
)

// period is a date range and how to chart it
type period struct {
	start, end calendar.Date
	title      string
	weekly     bool
}

// moodPeriod picks the range for "jerd mood": the last 7 days by default,
// 30 or 365 days with --month or --year, or a calendar month by name.
func moodPeriod(p parsedArgs, today calendar.Date) (period, error) {
	const prefix = "Mood Graph - "
	switch {
	case p.has("week"), !p.has("month") && !p.has("year") && len(p.args) == 0:
		start, end := journal.LastDays(today, 7)
		return period{start: start, end: end, title: prefix + "Last 7 Days", weekly: true}, nil
	case p.has("month"):
		start, end := journal.LastDays(today, 30)
		return period{start: start, end: end, title: prefix + "Last 30 Days"}, nil
	case p.has("year"):
		start, end := journal.LastDays(today, 365)
		return period{start: start, end: end, title: prefix + "Last Year"}, nil
	}

	month, year, err := monthYear(p.args, today)
	if err != nil {
		return period{}, err
	}
	start, end := journal.MonthRange(year, month)
	return period{start: start, end: end, title: fmt.Sprintf("%s%s %d", prefix, month, year)}, nil
}

// streakPeriod picks the range for "jerd streak", about three months by default
func streakPeriod(p parsedArgs, today calendar.Date) period {
	const prefix = "Journal Activity - "
	days, title := 90, "Last 3 Months"
	switch {
	case p.has("week"):
		days, title = 7, "Last 7 Days"
	case p.has("month"):
		days, title = 30, "Last 30 Days"
	case p.has("year"):
		days, title = 365, "Last Year"
	}
	start, end := journal.LastDays(today, days)
	return period{start: start, end: end, title: prefix + title}
}

// listQuery is what "jerd list" shows: everything, one year, or one month
type listQuery struct {
	all   bool
	year  int
	month time.Month
}

func parseList(p parsedArgs, today calendar.Date) (listQuery, error) {
	if p.has("all") || len(p.args) == 0 {
		return listQuery{all: true}, nil
	}
	if yearRe.MatchString(p.args[0]) {
		if len(p.args) > 1 {
			return listQuery{}, fmt.Errorf("unexpected argument: %s", p.args[1])
		}
		year, _ := strconv.Atoi(p.args[0])
		return listQuery{year: year}, nil
	}
	month, year, err := monthYear(p.args, today)
	if err != nil {
		return listQuery{}, err
	}
	return listQuery{year: year, month: month}, nil
}

// monthYear reads "<month> [year]"; the year defaults to today's
func monthYear(args []string, today calendar.Date) (time.Month, int, error) {
	month, ok := dateparse.MonthNumber(args[0])
	if !ok {
		return 0, 0, fmt.Errorf("invalid month: %s", args[0])
	}
	year := today.Year()
	if len(args) > 1 {
		if !yearRe.MatchString(args[1]) {
			return 0, 0, fmt.Errorf("invalid year: %s (use a 4-digit year such as 2024)", args[1])
		}
		year, _ = strconv.Atoi(args[1])
	}
	if len(args) > 2 {
		return 0, 0, fmt.Errorf("unexpected argument: %s", args[2])
	}
	return month, year, nil
}
