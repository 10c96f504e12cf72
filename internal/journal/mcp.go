package journal

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shamimbinnur/jerd/internal/activity"
	"github.com/shamimbinnur/jerd/internal/calendar"
	"github.com/shamimbinnur/jerd/internal/dateparse"
	"github.com/shamimbinnur/jerd/internal/frontmatter"
	"github.com/shamimbinnur/jerd/internal/mood"
)

// MCP Tool Input/Output types

type ParseDateArgs struct {
	Expression string `json:"expression" jsonschema:"natural language date such as 'yesterday', '25th dec' or 'last monday' (empty means today)"`
}

type ParseDateResult struct {
	Date    string `json:"date" jsonschema:"the resolved date as YYYY-MM-DD"`
	Weekday string `json:"weekday" jsonschema:"day of the week"`
	Exists  bool   `json:"exists" jsonschema:"whether an entry exists for the date"`
}

type GetEntryArgs struct {
	Date string `json:"date,omitempty" jsonschema:"date expression for the entry (default: today)"`
}

type GetEntryResult struct {
	Date    string   `json:"date" jsonschema:"entry date as YYYY-MM-DD"`
	Mood    string   `json:"mood,omitempty" jsonschema:"recorded mood, if any"`
	Tags    []string `json:"tags,omitempty" jsonschema:"tags from the frontmatter"`
	Content string   `json:"content" jsonschema:"full content of the entry"`
	Path    string   `json:"path" jsonschema:"file path to the entry"`
}

type WriteEntryArgs struct {
	Date     string `json:"date,omitempty" jsonschema:"date expression for the entry (default: today)"`
	Content  string `json:"content,omitempty" jsonschema:"full replacement content; when empty a missing entry is created from a template"`
	Template string `json:"template,omitempty" jsonschema:"template name used when creating from a template (default: the journal's default template)"`
}

type WriteEntryResult struct {
	Date    string `json:"date" jsonschema:"entry date as YYYY-MM-DD"`
	Path    string `json:"path" jsonschema:"file path to the entry"`
	Message string `json:"message" jsonschema:"status message"`
}

type ListEntriesArgs struct {
	Year  int `json:"year,omitempty" jsonschema:"only list entries of this year"`
	Month int `json:"month,omitempty" jsonschema:"only list entries of this month (1-12), requires year"`
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return, newest first (default: all)"`
}

type ListEntriesResult struct {
	Entries []EntryInfo `json:"entries" jsonschema:"list of entries, newest first"`
	Count   int         `json:"count" jsonschema:"number of entries returned"`
}

type EntryInfo struct {
	Date string `json:"date" jsonschema:"entry date as YYYY-MM-DD"`
	Mood string `json:"mood,omitempty" jsonschema:"recorded mood, if any"`
	Path string `json:"path" jsonschema:"file path to the entry"`
}

type StreakArgs struct {
	Days int `json:"days,omitempty" jsonschema:"number of days ending today to analyse, 1-3660 (default: 90)"`
}

type StreakResult struct {
	Start      string `json:"start" jsonschema:"first day of the range"`
	End        string `json:"end" jsonschema:"last day of the range"`
	Current    int    `json:"current_streak" jsonschema:"consecutive days with an entry ending today"`
	Longest    int    `json:"longest_streak" jsonschema:"longest run of consecutive days with an entry"`
	Entries    int    `json:"entries" jsonschema:"days with an entry"`
	Total      int    `json:"total_days" jsonschema:"days in the range"`
	Percentage int    `json:"percentage" jsonschema:"share of days with an entry, rounded"`
}

type MoodArgs struct {
	Days  int `json:"days,omitempty" jsonschema:"number of days ending today, 1-3660 (default: 7); ignored when month is set"`
	Year  int `json:"year,omitempty" jsonschema:"year of the month to summarise (default: current year)"`
	Month int `json:"month,omitempty" jsonschema:"calendar month (1-12) to summarise"`
}

type MoodResult struct {
	Start       string      `json:"start" jsonschema:"first day of the range"`
	End         string      `json:"end" jsonschema:"last day of the range"`
	Average     float64     `json:"average,omitempty" jsonschema:"average mood from 2 (low) to 5 (great); absent when no mood was recorded"`
	WithMood    int         `json:"with_mood" jsonschema:"entries with a mood"`
	WithoutMood int         `json:"without_mood" jsonschema:"entries without a mood"`
	Missing     int         `json:"missing" jsonschema:"days without an entry"`
	Breakdown   []MoodCount `json:"breakdown" jsonschema:"days per mood, most frequent first"`
}

type MoodCount struct {
	Mood  string `json:"mood" jsonschema:"mood label"`
	Count int    `json:"count" jsonschema:"number of days"`
}

// MCPServer exposes a journal over the Model Context Protocol
type MCPServer struct {
	journal *Journal
	parser  *dateparse.Parser
	server  *mcp.Server
}

// NewMCPServer creates a new MCP server for the journal
func NewMCPServer(j *Journal, parser *dateparse.Parser) *MCPServer {
	s := &MCPServer{
		journal: j,
		parser:  parser,
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "jerd",
		Version: "1.0.0",
	}, &mcp.ServerOptions{
		Instructions: "Read and write daily journal entries, and report writing streaks and mood trends. Dates accept natural language such as 'yesterday' or '25th dec'.",
	})

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport
func (s *MCPServer) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *MCPServer) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_date",
		Description: "Resolve a natural language date expression to a calendar date and report whether the journal has an entry for it.",
	}, s.parseDate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_entry",
		Description: "Read the journal entry for a date, with its mood and tags.",
	}, s.getEntry)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "write_entry",
		Description: "Write the journal entry for a date. With content, replaces the entry; use get_entry first to keep what is there. Without content, creates the entry from a template if it does not exist.",
	}, s.writeEntry)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List journal entries, newest first, optionally for one year or month.",
	}, s.listEntries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "journal_streak",
		Description: "Report the current and longest writing streak over the last N days.",
	}, s.streak)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "journal_mood",
		Description: "Summarise recorded moods over the last N days or a calendar month.",
	}, s.moodTrend)
}

func (s *MCPServer) resolve(expr string) (calendar.Date, error) {
	d, err := s.parser.Parse(strings.TrimSpace(expr))
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w\n%s", err, dateparse.Usage)
	}
	return d, nil
}

func (s *MCPServer) parseDate(ctx context.Context, req *mcp.CallToolRequest, args ParseDateArgs) (*mcp.CallToolResult, ParseDateResult, error) {
	d, err := s.resolve(args.Expression)
	if err != nil {
		return nil, ParseDateResult{}, err
	}
	return nil, ParseDateResult{
		Date:    d.String(),
		Weekday: d.Weekday().String(),
		Exists:  s.journal.Exists(d),
	}, nil
}

func (s *MCPServer) getEntry(ctx context.Context, req *mcp.CallToolRequest, args GetEntryArgs) (*mcp.CallToolResult, GetEntryResult, error) {
	d, err := s.resolve(args.Date)
	if err != nil {
		return nil, GetEntryResult{}, err
	}
	content, err := s.journal.Read(d)
	if err != nil {
		return nil, GetEntryResult{}, fmt.Errorf("failed to read entry: %w", err)
	}
	fm, _ := frontmatter.Parse([]byte(content))
	return nil, GetEntryResult{
		Date:    d.String(),
		Mood:    string(mood.Parse(fm.String("mood"))),
		Tags:    fm.List("tags"),
		Content: content,
		Path:    s.journal.EntryPath(d),
	}, nil
}

func (s *MCPServer) writeEntry(ctx context.Context, req *mcp.CallToolRequest, args WriteEntryArgs) (*mcp.CallToolResult, WriteEntryResult, error) {
	d, err := s.resolve(args.Date)
	if err != nil {
		return nil, WriteEntryResult{}, err
	}

	var path, message string
	if args.Content == "" {
		content, err := s.journal.Draft(d, args.Template)
		if err != nil {
			return nil, WriteEntryResult{}, err
		}
		var created bool
		path, created, err = s.journal.Create(d, content)
		if err != nil {
			return nil, WriteEntryResult{}, fmt.Errorf("failed to create entry: %w", err)
		}
		if !created {
			return nil, WriteEntryResult{Date: d.String(), Path: path, Message: "Entry already exists"}, nil
		}
		message = fmt.Sprintf("Created entry for %s", d)
	} else {
		path, err = s.journal.Write(d, args.Content)
		if err != nil {
			return nil, WriteEntryResult{}, fmt.Errorf("failed to write entry: %w", err)
		}
		message = fmt.Sprintf("Updated entry for %s", d)
	}

	if err := s.journal.Commit(message, path); err != nil {
		log.Printf("Warning: git commit failed: %v", err)
	}
	return nil, WriteEntryResult{Date: d.String(), Path: path, Message: message}, nil
}

func (s *MCPServer) listEntries(ctx context.Context, req *mcp.CallToolRequest, args ListEntriesArgs) (*mcp.CallToolResult, ListEntriesResult, error) {
	var dates []calendar.Date
	var err error
	switch {
	case args.Month != 0:
		if args.Year == 0 || args.Month < 1 || args.Month > 12 {
			return nil, ListEntriesResult{}, fmt.Errorf("month needs a year and must be 1-12")
		}
		start, _ := MonthRange(args.Year, time.Month(args.Month))
		dates, err = s.journal.Entries(start.Year(), start.Month())
	case args.Year != 0:
		for _, m := range monthsOf(s.journal, args.Year) {
			month, merr := s.journal.Entries(args.Year, m)
			if merr != nil {
				err = merr
				break
			}
			dates = append(dates, month...)
		}
	default:
		dates, err = s.journal.All()
	}
	if err != nil {
		return nil, ListEntriesResult{}, fmt.Errorf("failed to list entries: %w", err)
	}

	limit := len(dates)
	if args.Limit > 0 && args.Limit < limit {
		limit = args.Limit
	}

	infos := make([]EntryInfo, limit)
	for i := 0; i < limit; i++ {
		d := dates[len(dates)-1-i]
		infos[i] = EntryInfo{
			Date: d.String(),
			Mood: string(s.journal.Mood(d)),
			Path: s.journal.EntryPath(d),
		}
	}

	return nil, ListEntriesResult{
		Entries: infos,
		Count:   len(infos),
	}, nil
}

// maxDays bounds the ranges a client may ask for, about ten years
const maxDays = 3660

// dayCount applies def when days is unset and rejects out-of-range counts
func dayCount(days, def int) (int, error) {
	if days == 0 {
		return def, nil
	}
	if days < 1 || days > maxDays {
		return 0, fmt.Errorf("days must be 1-%d", maxDays)
	}
	return days, nil
}

func (s *MCPServer) streak(ctx context.Context, req *mcp.CallToolRequest, args StreakArgs) (*mcp.CallToolResult, StreakResult, error) {
	days, err := dayCount(args.Days, 90)
	if err != nil {
		return nil, StreakResult{}, err
	}
	start, end := LastDays(s.parser.Reference(), days)
	stats := activity.Summarize(s.journal.Activity(start, end))

	return nil, StreakResult{
		Start:      start.String(),
		End:        end.String(),
		Current:    stats.Current,
		Longest:    stats.Longest,
		Entries:    stats.Entries,
		Total:      stats.Total,
		Percentage: stats.Percentage,
	}, nil
}

func (s *MCPServer) moodTrend(ctx context.Context, req *mcp.CallToolRequest, args MoodArgs) (*mcp.CallToolResult, MoodResult, error) {
	today := s.parser.Reference()
	var start, end calendar.Date
	if args.Month != 0 {
		if args.Month < 1 || args.Month > 12 {
			return nil, MoodResult{}, fmt.Errorf("month must be 1-12")
		}
		year := args.Year
		if year == 0 {
			year = today.Year()
		}
		start, end = MonthRange(year, time.Month(args.Month))
	} else {
		days, err := dayCount(args.Days, 7)
		if err != nil {
			return nil, MoodResult{}, err
		}
		start, end = LastDays(today, days)
	}

	series := s.journal.Moods(start, end)
	summary := mood.Summarize(series)

	breakdown := []MoodCount{}
	for _, c := range mood.Breakdown(series) {
		breakdown = append(breakdown, MoodCount{Mood: string(c.Label), Count: c.Count})
	}

	return nil, MoodResult{
		Start:       start.String(),
		End:         end.String(),
		Average:     summary.Average,
		WithMood:    summary.WithMood,
		WithoutMood: summary.WithoutMood,
		Missing:     summary.Missing,
		Breakdown:   breakdown,
	}, nil
}

func monthsOf(j *Journal, year int) []time.Month {
	months, err := j.Months(year)
	if err != nil {
		log.Printf("Warning: failed to list months of %d: %v", year, err)
	}
	return months
}
